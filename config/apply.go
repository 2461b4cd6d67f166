package config

import (
	"context"
	"path"
	"strings"

	"github.com/jmgilman/go/pathfs/aferofs"
	"github.com/jmgilman/go/pathfs/billy"
	"github.com/jmgilman/go/pathfs/core"
	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/internal/logging"
	"github.com/jmgilman/go/pathfs/minio"
	"github.com/jmgilman/go/pathfs/router"
)

// Apply builds every mount and registers it on r. If any mount fails, the
// mounts registered so far are removed again.
func (c *Config) Apply(r *router.Router, logger *logging.Logger) error {
	var done []string
	for _, m := range c.Mounts {
		b, err := m.Build(logger)
		if err == nil {
			err = r.Register(m.Name, b)
		}
		if err != nil {
			for _, name := range done {
				r.Unregister(name)
			}
			return errors.WithContext(err, "mount", m.Name)
		}
		done = append(done, m.Name)
		logger.Debug(context.Background(), "mount ready", "mount", m.Name, "kind", string(m.Kind))
	}
	return nil
}

// Build constructs the backend described by m.
func (m Mount) Build(logger *logging.Logger) (core.Backend, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	switch m.Kind {
	case KindMemory:
		b := billy.NewMemory()
		return b, seed(b, m.Seed)
	case KindAferoMemory:
		b := aferofs.NewMemory()
		return b, seed(b, m.Seed)
	case KindLocal:
		if m.Root == "" {
			return billy.NewLocal(), nil
		}
		return billy.NewLocal(billy.WithRoot(m.Root)), nil
	case KindAferoOS:
		if m.Root == "" {
			return aferofs.NewOS(), nil
		}
		return aferofs.NewBasePath(m.Root), nil
	default:
		timeout, _ := m.MinIO.timeout()
		b, err := minio.NewMinIO(minio.Config{
			Endpoint:  m.MinIO.Endpoint,
			Bucket:    m.MinIO.Bucket,
			AccessKey: m.MinIO.AccessKey,
			SecretKey: m.MinIO.SecretKey,
			UseSSL:    m.MinIO.UseSSL,
			Prefix:    m.MinIO.Prefix,
			Timeout:   timeout,
			Logger:    logger.WithMount(m.Name),
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to create minio backend")
		}
		return b, nil
	}
}

func seed(b core.MutableBackend, entries []string) error {
	for _, e := range entries {
		name := path.Join("/", e)
		var err error
		if strings.HasSuffix(e, "/") {
			err = b.MkdirAll(name, 0o755)
		} else {
			err = b.WriteFile(name, nil, 0o644)
		}
		if err != nil {
			return errors.PathError("seed", err, name)
		}
	}
	return nil
}
