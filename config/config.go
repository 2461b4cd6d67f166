// Package config loads the mount table that tells a router which virtual
// roots exist and which backend serves each one.
//
// A mount table is a YAML document:
//
//	log:
//	  level: debug
//	mounts:
//	  - name: "//<scratch>"
//	    kind: memory
//	    seed: [docs/, docs/readme.md]
//	  - name: "//<assets>"
//	    kind: minio
//	    minio:
//	      endpoint: localhost:9000
//	      bucket: assets
//	      access_key: ${MINIO_ACCESS_KEY}
//	      secret_key: ${MINIO_SECRET_KEY}
//
// ${VAR} references are expanded from the environment after the optional
// dotenv files have been loaded.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/internal/logging"
	"github.com/jmgilman/go/pathfs/router"
)

// FileName is the mount table looked up when no path is given.
const FileName = "pathfs.yaml"

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = stderrors.New("config file not found")

// MountKind selects the backend serving a mount.
type MountKind string

const (
	// KindMemory is a go-billy in-memory filesystem.
	KindMemory MountKind = "memory"
	// KindLocal is a go-billy view of the host filesystem below Root.
	KindLocal MountKind = "local"
	// KindAferoMemory is an afero in-memory filesystem.
	KindAferoMemory MountKind = "afero-memory"
	// KindAferoOS is an afero view of the host filesystem, below Root if set.
	KindAferoOS MountKind = "afero-os"
	// KindMinIO is a bucket on a MinIO or S3-compatible server.
	KindMinIO MountKind = "minio"
)

// Config is a parsed mount table.
type Config struct {
	Log    Log     `yaml:"log"`
	Mounts []Mount `yaml:"mounts"`
}

// Log configures the logger the CLI installs.
type Log struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // text or json
}

// Mount binds a virtual root name to a backend.
type Mount struct {
	Name string    `yaml:"name"`
	Kind MountKind `yaml:"kind"`

	// Root is the host directory for local and afero-os mounts.
	Root string `yaml:"root,omitempty"`

	// Seed lists entries created in memory mounts when they are built.
	// Entries ending in "/" are directories, the rest empty files.
	Seed []string `yaml:"seed,omitempty"`

	MinIO *MinIOMount `yaml:"minio,omitempty"`
}

// MinIOMount holds the connection settings of a minio mount.
type MinIOMount struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"`
}

// Load reads the mount table at path.
//
// The named dotenv files are loaded first; without any, a .env file in the
// working directory is loaded if present. Variables already set in the
// environment win over dotenv values.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to load env file"),
				"files", envFiles,
			)
		}
	} else {
		_ = godotenv.Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, errors.PathError("read config", err, path)
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes and validates a mount table. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks mount names and the fields each kind requires.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Mounts))
	for i, m := range c.Mounts {
		if err := m.validate(); err != nil {
			return errors.WithContextMap(err, map[string]interface{}{
				"mount": m.Name,
				"index": i,
			})
		}
		if seen[m.Name] {
			return errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "duplicate mount name"),
				"mount", m.Name,
			)
		}
		seen[m.Name] = true
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unknown log format %q", c.Log.Format)
	}
	return nil
}

func (m Mount) validate() error {
	if !router.IsVirtualRootName(m.Name) {
		return errors.Newf(errors.CodeInvalidConfig, "mount name %q is not of the form //<name>", m.Name)
	}

	switch m.Kind {
	case KindMemory, KindAferoMemory:
		if m.Root != "" {
			return errors.New(errors.CodeInvalidConfig, "root is not supported by memory mounts")
		}
	case KindLocal, KindAferoOS:
		if len(m.Seed) > 0 {
			return errors.New(errors.CodeInvalidConfig, "seed is only supported by memory mounts")
		}
	case KindMinIO:
		return m.MinIO.validate()
	case "":
		return errors.New(errors.CodeInvalidConfig, "mount kind is required")
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unknown mount kind %q", m.Kind)
	}

	if m.MinIO != nil {
		return errors.New(errors.CodeInvalidConfig, "minio settings on a non-minio mount")
	}
	return nil
}

func (m *MinIOMount) validate() error {
	if m == nil {
		return errors.New(errors.CodeInvalidConfig, "minio settings are required")
	}
	if m.Endpoint == "" {
		return errors.New(errors.CodeInvalidConfig, "minio endpoint is required")
	}
	if m.Bucket == "" {
		return errors.New(errors.CodeInvalidConfig, "minio bucket is required")
	}
	if m.AccessKey == "" || m.SecretKey == "" {
		return errors.New(errors.CodeInvalidConfig, "minio credentials are required")
	}
	if _, err := m.timeout(); err != nil {
		return err
	}
	return nil
}

func (m *MinIOMount) timeout() (time.Duration, error) {
	if m.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(m.Timeout)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInvalidConfig, "invalid minio timeout")
	}
	if d < 0 {
		return 0, errors.New(errors.CodeInvalidConfig, "minio timeout must not be negative")
	}
	return d, nil
}

// Logger builds the logger described by the log section. verbose forces
// debug level.
func (l Log) Logger(out io.Writer, verbose bool) *logging.Logger {
	level := logging.ParseLevel(l.Level)
	if l.Level == "" {
		level = logging.LogLevelWarn
	}
	if verbose {
		level = logging.LogLevelDebug
	}
	return logging.New(logging.Config{
		Level:  level,
		Output: out,
		JSON:   l.Format == "json",
	})
}
