// Package integration provides shared helpers for the end-to-end tests.
package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/antoniobassoesss-debug/wedboardpro-sub011/internal/sqlite"
	"github.com/antoniobassoesss-debug/wedboardpro-sub011/pkg/types"
)

var (
	floorplanBin string
	buildErr     error
)

// SetFloorplanBin records the path of the binary built by TestMain.
func SetFloorplanBin(path string) { floorplanBin = path }

// SetBuildErr records a build failure so tests can skip with a message.
func SetBuildErr(err error) { buildErr = err }

// FloorplanBin returns the built binary path, failing the test if the
// build failed.
func FloorplanBin(t *testing.T) string {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("floorplan binary not available: %v", buildErr)
	}
	return floorplanBin
}

// FindProjectRoot walks up from the working directory to the directory
// containing go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// setupBackend creates a backend attached to an isolated temp directory.
// Each test gets its own database for isolation.
func setupBackend(t *testing.T) *sqlite.Backend {
	t.Helper()
	b := sqlite.NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b
}
