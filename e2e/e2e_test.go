//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"
	"go.trai.ch/cacheprobe/internal/adapters/local"
	"go.trai.ch/cacheprobe/internal/core/domain"
)

var probeBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "cacheprobe-e2e-*")
	if err != nil {
		panic(err)
	}

	probeBinary = filepath.Join(tmpDir, "cacheprobe")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", probeBinary, "./cmd/cacheprobe")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build cacheprobe binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"seed": seedEntry,
		},
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(probeBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// seedEntry records a cache entry in a local store.
// Usage: seed <dir> <key> <path>...
func seedEntry(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! seed")
	}
	if len(args) < 3 {
		ts.Fatalf("usage: seed <dir> <key> <path>...")
	}

	store := local.NewStore(ts.MkAbs(args[0]))
	entry := domain.CacheEntry{
		Key:       args[1],
		Location:  "file://" + strings.Join(args[2:], ","),
		Size:      2048,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	ts.Check(store.Put(args[2:], entry))
}
