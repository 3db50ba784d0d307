package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// execute runs the root command with args and returns stdout and stderr.
// A presets path inside a fresh temp dir is passed unless args set one, so
// tests never read a spectrum.yaml from the working directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	full := append([]string{}, args...)
	if !hasFlag(args, "--presets") {
		full = append(full, "--presets", filepath.Join(t.TempDir(), "missing.yaml"))
	}

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(full)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
