package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/internal/logging"
	"github.com/jmgilman/go/pathfs/minio/internal/errs"
	"github.com/jmgilman/go/pathfs/minio/internal/pathutil"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioFS implements core.Backend for MinIO/S3-compatible storage.
//
// Directories are virtual: a directory exists when at least one key lives
// below it, or when MkdirAll left a "dir/" marker object. The bucket root
// always exists. Symbolic links are not supported, so SymlinkStatus is
// Status.
//
//nolint:revive // MinioFS name is intentional to match LocalFS and MemoryFS
type MinioFS struct {
	client  *minio.Client
	bucket  string
	prefix  string
	timeout time.Duration
	logger  *logging.Logger
}

// NewMinIO creates a MinIO-backed filesystem.
// Returns error if configuration is invalid or the client cannot be built.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &MinioFS{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  pathutil.NormalizePrefix(cfg.Prefix),
		timeout: timeout,
		logger:  logger.With("bucket", cfg.Bucket),
	}, nil
}

// Client returns the underlying MinIO client.
func (m *MinioFS) Client() *minio.Client {
	return m.client
}

// Type returns core.FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

func (m *MinioFS) joinPath(name string) string {
	return pathutil.JoinPath(m.prefix, name)
}

func (m *MinioFS) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

// kind reports what key refers to: a regular object, a directory prefix, or
// nothing. size is set for objects.
func (m *MinioFS) kind(ctx context.Context, key string) (core.FileType, int64, error) {
	if key == m.prefix {
		return core.FileTypeDirectory, 0, nil
	}

	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return core.FileTypeRegular, info.Size, nil
	}
	if err = errs.Translate(err); !errors.Is(err, fs.ErrNotExist) {
		return core.FileTypeNone, 0, err
	}

	found, err := m.probe(ctx, pathutil.DirPrefix(key))
	switch {
	case err != nil:
		return core.FileTypeNone, 0, err
	case found:
		return core.FileTypeDirectory, 0, nil
	default:
		return core.FileTypeNotFound, 0, fs.ErrNotExist
	}
}

// probe reports whether any object exists below dirPrefix.
func (m *MinioFS) probe(ctx context.Context, dirPrefix string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range m.client.ListObjectsIter(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:  dirPrefix,
		MaxKeys: 1,
	}) {
		if object.Err != nil {
			return false, errs.Translate(object.Err)
		}
		return true, nil
	}
	return false, nil
}

// OpenDir starts a lazy listing of the named directory. Objects are fetched
// page by page as the session advances.
func (m *MinioFS) OpenDir(name string) (core.Session, error) {
	key := m.joinPath(name)

	ctx, cancel := m.requestContext()
	kind, _, err := m.kind(ctx, key)
	cancel()
	if err != nil {
		return nil, errs.PathError("open", name, err)
	}
	if kind != core.FileTypeDirectory {
		return nil, errs.PathError("open", name, core.ErrNotDir)
	}

	dirPrefix := pathutil.DirPrefix(key)
	m.logger.Debug(context.Background(), "listing prefix", "prefix", dirPrefix)
	return newListSession(m.client, m.bucket, dirPrefix), nil
}

// Status returns the status of name.
func (m *MinioFS) Status(name string) (core.FileStatus, error) {
	ctx, cancel := m.requestContext()
	defer cancel()

	kind, _, err := m.kind(ctx, m.joinPath(name))
	switch {
	case kind == core.FileTypeNotFound:
		return core.NotFoundStatus(), errs.PathError("stat", name, err)
	case err != nil:
		return core.FileStatus{}, errs.PathError("stat", name, err)
	case kind == core.FileTypeDirectory:
		return core.FileStatus{Type: kind, Perm: 0o755}, nil
	default:
		return core.FileStatus{Type: kind, Perm: 0o644}, nil
	}
}

// SymlinkStatus is Status; object storage has no symbolic links.
func (m *MinioFS) SymlinkStatus(name string) (core.FileStatus, error) {
	return m.Status(name)
}

// FileSize returns the size of the named object.
func (m *MinioFS) FileSize(name string) (int64, error) {
	ctx, cancel := m.requestContext()
	defer cancel()

	kind, size, err := m.kind(ctx, m.joinPath(name))
	if err != nil {
		return 0, errs.PathError("size", name, err)
	}
	if kind == core.FileTypeDirectory {
		return 0, errs.PathError("size", name, core.ErrIsDir)
	}
	return size, nil
}

// MkdirAll writes a "dir/" marker object so the directory exists while empty.
// Parents are implied by the marker's key.
func (m *MinioFS) MkdirAll(name string, _ fs.FileMode) error {
	key := m.joinPath(name)
	if key == m.prefix {
		return nil
	}

	ctx, cancel := m.requestContext()
	defer cancel()

	_, err := m.client.PutObject(ctx, m.bucket, pathutil.DirPrefix(key), bytes.NewReader(nil), 0,
		minio.PutObjectOptions{})
	return errs.PathError("mkdir", name, errs.Translate(err))
}

// WriteFile uploads data as the named object.
func (m *MinioFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	key := m.joinPath(name)
	if key == m.prefix {
		return errs.PathError("writefile", name, core.ErrIsDir)
	}

	ctx, cancel := m.requestContext()
	defer cancel()

	m.logger.Debug(ctx, "put object", "key", key, "size", len(data))
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	return errs.PathError("writefile", name, errs.Translate(err))
}

// Remove removes the named object, or the marker of an empty directory.
func (m *MinioFS) Remove(name string) error {
	key := m.joinPath(name)

	ctx, cancel := m.requestContext()
	defer cancel()

	kind, _, err := m.kind(ctx, key)
	if err != nil {
		return errs.PathError("remove", name, err)
	}
	if kind == core.FileTypeRegular {
		err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
		return errs.PathError("remove", name, errs.Translate(err))
	}
	if key == m.prefix {
		return errs.PathError("remove", name, core.ErrPermission)
	}

	dirPrefix := pathutil.DirPrefix(key)
	for object := range m.client.ListObjectsIter(ctx, m.bucket, minio.ListObjectsOptions{Prefix: dirPrefix}) {
		if object.Err != nil {
			return errs.PathError("remove", name, errs.Translate(object.Err))
		}
		if object.Key != dirPrefix {
			return errs.PathError("remove", name, core.ErrNotEmpty)
		}
	}

	err = m.client.RemoveObject(ctx, m.bucket, dirPrefix, minio.RemoveObjectOptions{})
	return errs.PathError("remove", name, errs.Translate(err))
}

var _ core.MutableBackend = (*MinioFS)(nil)
