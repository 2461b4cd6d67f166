// Package fstest provides a conformance test suite for validating storage
// backends against the core.Backend contracts.
//
// Backend packages import it from their tests and hand it a constructor that
// returns a fresh, empty backend:
//
//	func TestMemoryFS_Conformance(t *testing.T) {
//	    fstest.TestSuite(t, func() core.MutableBackend {
//	        return billy.NewMemory()
//	    })
//	}
//
// The suite checks interface contracts, not backend-specific behavior.
// FSTestConfig describes the documented differences (virtual directories on
// object stores, for example) so every backend can run the same tests.
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/pathfs/core"
)

// FSTestConfig configures the test suite to match backend behavior.
type FSTestConfig struct {
	// VirtualDirectories indicates directories are virtual (e.g., S3 prefixes).
	// When true, an empty directory may not exist after MkdirAll and the
	// backend's root always exists.
	VirtualDirectories bool

	// SkipTests lists test groups to skip (e.g., "Symlink").
	SkipTests []string
}

// POSIXTestConfig returns configuration for POSIX-like backends (local, memory).
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{}
}

// S3TestConfig returns configuration for S3-like backends (MinIO, S3).
func S3TestConfig() FSTestConfig {
	return FSTestConfig{
		VirtualDirectories: true,
		SkipTests:          []string{"Symlink"},
	}
}

// TestSuite runs all conformance tests against a backend.
// newBackend is called once per test group and must return an empty backend.
// Uses POSIXTestConfig() by default.
func TestSuite(t *testing.T, newBackend func() core.MutableBackend) {
	TestSuiteWithConfig(t, newBackend, POSIXTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newBackend func() core.MutableBackend, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.MutableBackend, FSTestConfig)
	}{
		{"OpenDir", TestOpenDirWithConfig},
		{"Status", TestStatusWithConfig},
		{"FileSize", TestFileSizeWithConfig},
		{"Symlink", TestSymlinkWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newBackend(), config)
		})
	}
}
