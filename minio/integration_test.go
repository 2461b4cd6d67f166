package minio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/fstest"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestMinIO starts a MinIO container and returns a client for it.
func setupTestMinIO(t *testing.T) *minio.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start MinIO container")
	t.Cleanup(func() { _ = minioC.Terminate(ctx) })

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get container endpoint")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create MinIO client")

	return client
}

// newBucketFS creates a fresh bucket and a backend over it.
func newBucketFS(t *testing.T, client *minio.Client, name, prefix string) *MinioFS {
	t.Helper()

	err := client.MakeBucket(context.Background(), name, minio.MakeBucketOptions{})
	require.NoError(t, err, "failed to create bucket %s", name)

	m, err := NewMinIO(Config{Client: client, Bucket: name, Prefix: prefix})
	require.NoError(t, err, "failed to create MinioFS")
	return m
}

func TestMinioConformance(t *testing.T) {
	client := setupTestMinIO(t)

	var n atomic.Int32
	fstest.TestSuiteWithConfig(t, func() core.MutableBackend {
		return newBucketFS(t, client, fmt.Sprintf("conformance-%d", n.Add(1)), "")
	}, fstest.S3TestConfig())
}

func TestMinioPrefixIsolation(t *testing.T) {
	client := setupTestMinIO(t)

	a := newBucketFS(t, client, "shared", "tenant-a")
	b, err := NewMinIO(Config{Client: client, Bucket: "shared", Prefix: "tenant-b"})
	require.NoError(t, err)

	require.NoError(t, a.WriteFile("/only-a.txt", []byte("a"), 0o644))
	require.NoError(t, b.WriteFile("/only-b.txt", []byte("b"), 0o644))

	s, err := a.OpenDir("/")
	require.NoError(t, err)
	names, err := fstest.ReadNames(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"only-a.txt"}, names)

	_, err = b.Status("/only-a.txt")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMinioManyObjectsListing(t *testing.T) {
	client := setupTestMinIO(t)
	m := newBucketFS(t, client, "many", "")

	var want []string
	for i := range 1200 {
		name := fmt.Sprintf("obj-%04d", i)
		want = append(want, name)
		require.NoError(t, m.WriteFile("/many/"+name, []byte{byte(i)}, 0o644))
	}

	s, err := m.OpenDir("/many")
	require.NoError(t, err)
	got, err := fstest.ReadNames(s)
	require.NoError(t, err)

	slices.Sort(got)
	assert.Equal(t, want, got)
}

func TestMinioRemove(t *testing.T) {
	client := setupTestMinIO(t)
	m := newBucketFS(t, client, "remove", "")

	require.NoError(t, m.MkdirAll("/dir", 0o755))
	require.NoError(t, m.WriteFile("/dir/file.txt", []byte("x"), 0o644))

	err := m.Remove("/dir")
	assert.True(t, errors.Is(err, core.ErrNotEmpty), "got %v", err)

	require.NoError(t, m.Remove("/dir/file.txt"))
	require.NoError(t, m.Remove("/dir"))

	st, err := m.Status("/dir")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, st.Exists())
}

func TestMinioSessionCloseEarly(t *testing.T) {
	client := setupTestMinIO(t)
	m := newBucketFS(t, client, "early", "")

	require.NoError(t, fstest.BuildTree(m, "/d", "a", "b", "c"))

	s, err := m.OpenDir("/d")
	require.NoError(t, err)
	e, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", e.Name)

	require.NoError(t, s.Close())
	_, err = s.Next()
	assert.True(t, errors.Is(err, core.ErrClosed))
}
