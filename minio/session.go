package minio

import (
	"context"
	"io"
	"iter"

	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/minio/internal/errs"
	"github.com/jmgilman/go/pathfs/minio/internal/pathutil"
	"github.com/minio/minio-go/v7"
)

// listSession walks one level of a prefix without loading it all at once.
type listSession struct {
	dirPrefix string
	next      func() (minio.ObjectInfo, bool)
	stop      func()
	cancel    context.CancelFunc
	err       error
	done      bool
	closed    bool
}

func newListSession(client *minio.Client, bucket, dirPrefix string) *listSession {
	ctx, cancel := context.WithCancel(context.Background())
	seq := client.ListObjectsIter(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    dirPrefix,
		Recursive: false,
	})
	next, stop := iter.Pull(seq)
	return &listSession{dirPrefix: dirPrefix, next: next, stop: stop, cancel: cancel}
}

// Next returns the next child of the directory. Subdirectories arrive as
// common prefixes and are reported by name without their trailing slash.
// A listing failure is returned again by every later call.
func (s *listSession) Next() (core.DirEntry, error) {
	if s.closed {
		return core.DirEntry{}, core.ErrClosed
	}
	if s.err != nil {
		return core.DirEntry{}, s.err
	}
	for !s.done {
		object, ok := s.next()
		if !ok {
			s.done = true
			break
		}
		if object.Err != nil {
			s.err = errs.PathError("readdir", s.dirPrefix, errs.Translate(object.Err))
			return core.DirEntry{}, s.err
		}

		name, ok := pathutil.ChildName(s.dirPrefix, object.Key)
		if !ok {
			continue
		}
		e := core.DirEntry{Name: name}
		if object.Key[len(object.Key)-1] != '/' {
			e.Size, e.HasSize = object.Size, true
		}
		return e, nil
	}
	return core.DirEntry{}, io.EOF
}

// Close stops the listing. It is safe to call more than once.
func (s *listSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.cancel()
	s.stop()
	return nil
}
