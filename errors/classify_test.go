package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"nil", nil, errors.CodeUnknown},
		{"not exist sentinel", fs.ErrNotExist, errors.CodeNotFound},
		{"enoent path error", &fs.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}, errors.CodeNotFound},
		{"exist", fs.ErrExist, errors.CodeAlreadyExists},
		{"permission", fs.ErrPermission, errors.CodePermissionDenied},
		{"eacces", syscall.EACCES, errors.CodePermissionDenied},
		{"enotdir", &fs.PathError{Op: "readdirent", Path: "/f", Err: syscall.ENOTDIR}, errors.CodeNotADirectory},
		{"eisdir", syscall.EISDIR, errors.CodeIsADirectory},
		{"eloop", syscall.ELOOP, errors.CodeTooManySymlinks},
		{"enotempty before exist", syscall.ENOTEMPTY, errors.CodeDirectoryNotEmpty},
		{"unsupported", stderrors.ErrUnsupported, errors.CodeUnsupported},
		{"deadline", fmt.Errorf("list: %w", context.DeadlineExceeded), errors.CodeTimeout},
		{"other errno", syscall.EIO, errors.CodeOSError},
		{"plain", stderrors.New("boom"), errors.CodeOSError},
		{"structured keeps code", errors.New(errors.CodeNetwork, "down"), errors.CodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Classify(tt.err))
		})
	}
}

func TestPathError(t *testing.T) {
	raw := &fs.PathError{Op: "open", Path: "/data/missing", Err: syscall.ENOENT}

	err := errors.PathError("open directory", raw, "/data/missing")
	require.NotNil(t, err)

	assert.Equal(t, errors.CodeNotFound, err.Code())
	assert.Equal(t, errors.ClassificationPermanent, err.Classification())
	assert.Equal(t, "open directory", err.Message())
	assert.Equal(t, "/data/missing", err.Path1())
	assert.Empty(t, err.Path2())
	assert.Equal(t, int(syscall.ENOENT), err.Context()["errno"])

	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.True(t, os.IsNotExist(stderrors.Unwrap(err)))
	assert.Equal(t, `[NOT_FOUND] open directory "/data/missing": open /data/missing: no such file or directory`, err.Error())
}

func TestPathError_TwoPaths(t *testing.T) {
	err := errors.PathError("rename", fs.ErrExist, "/a", "/b")

	assert.Equal(t, errors.CodeAlreadyExists, err.Code())
	assert.Equal(t, "/a", err.Path1())
	assert.Equal(t, "/b", err.Path2())
	assert.Nil(t, err.Context())
	assert.Equal(t, `[ALREADY_EXISTS] rename "/a", "/b": file already exists`, err.Error())
}

func TestPathError_Nil(t *testing.T) {
	assert.Nil(t, errors.PathError("stat", nil, "/x"))
}

func TestPathError_PreservesClassification(t *testing.T) {
	remote := errors.New(errors.CodeUnavailable, "bucket offline")

	err := errors.PathError("open directory", remote, "//<bucket>/logs")
	assert.Equal(t, errors.CodeUnavailable, err.Code())
	assert.True(t, errors.IsRetryable(err))
}

func TestHasCode(t *testing.T) {
	assert.True(t, errors.HasCode(syscall.EACCES, errors.CodePermissionDenied))
	assert.True(t, errors.HasCode(errors.PathError("open", syscall.EACCES, "/x"), errors.CodePermissionDenied))
	assert.False(t, errors.HasCode(nil, errors.CodeUnknown))
	assert.False(t, errors.HasCode(fs.ErrNotExist, errors.CodePermissionDenied))
}
