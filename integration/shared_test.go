//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

// buildDir is the temp directory the shared binary lands in; TestMain
// removes it after all tests finish.
var buildDir string

// bugtallyBinary compiles the CLI on first use and hands every test the
// same binary path. A build failure aborts the whole run.
var bugtallyBinary = sync.OnceValue(func() string {
	dir, err := os.MkdirTemp("", "bugtally-integration-*")
	if err != nil {
		panic(fmt.Sprintf("failed to create temp directory: %v", err))
	}
	buildDir = dir

	binPath := filepath.Join(dir, "bugtally")
	buildCmd := exec.Command("go", "build", "-o", binPath, ".")
	buildCmd.Dir = ".."
	if out, err := buildCmd.CombinedOutput(); err != nil {
		panic(fmt.Sprintf("failed to build bugtally: %v\n%s", err, out))
	}
	return binPath
})

func TestMain(m *testing.M) {
	code := m.Run()
	if buildDir != "" {
		_ = os.RemoveAll(buildDir)
	}
	os.Exit(code)
}
