package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageToStdout(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "page", "--preset", "midnight")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Preset midnight · dark mode")
}

func TestPageToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	out, _, err := execute(t, "page", "-o", path, "--radius", "24")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `name="radius"`)
	assert.Contains(t, string(data), "light mode")
}
