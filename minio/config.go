// Package minio provides a MinIO/S3-compatible core.Backend.
package minio

import (
	"fmt"
	"time"

	"github.com/jmgilman/go/pathfs/internal/logging"
	"github.com/minio/minio-go/v7"
)

// DefaultTimeout bounds every request except directory listings.
const DefaultTimeout = 30 * time.Second

// Config describes the bucket a MinioFS serves.
type Config struct {
	// Endpoint is the server address, host:port without a scheme.
	Endpoint string

	// Bucket holds every object of the filesystem. It must already exist.
	Bucket string

	// AccessKey and SecretKey are static V4 credentials.
	AccessKey string
	SecretKey string

	// UseSSL selects https.
	UseSSL bool

	// Prefix roots the filesystem at a key prefix inside the bucket.
	Prefix string

	// Client replaces Endpoint, AccessKey, SecretKey and UseSSL when set.
	Client *minio.Client

	// Timeout bounds single requests. Default: DefaultTimeout.
	Timeout time.Duration

	// Logger receives request-level debug logs. Default: discard.
	Logger *logging.Logger
}

// validate requires a bucket and either a client or a full set of
// connection settings.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.Client != nil {
		return nil
	}

	switch {
	case c.Endpoint == "":
		return fmt.Errorf("endpoint is required when client is not provided")
	case c.AccessKey == "":
		return fmt.Errorf("access key is required when client is not provided")
	case c.SecretKey == "":
		return fmt.Errorf("secret key is required when client is not provided")
	}
	return nil
}
