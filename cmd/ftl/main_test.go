package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. runFTL writes through charsink.Wrap(os.Stdout)
// directly, so this is the only way to observe a session's output from
// outside the package.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunDashCExecutesAndEchoes(t *testing.T) {
	out := captureStdout(t, func() {
		code := run([]string{"-c", "1+1"})
		assert.Equal(t, 0, code)
	})
	assert.Contains(t, out, "2")
}

func TestRunDashFExecutesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.ftl")
	require.NoError(t, os.WriteFile(path, []byte("set x 41; x+1\n"), 0o644))

	out := captureStdout(t, func() {
		code := run([]string{"-f", path})
		assert.Equal(t, 0, code)
	})
	assert.Contains(t, out, "42")
}

func TestRunDashFMissingFileReturnsNonZero(t *testing.T) {
	captureStdout(t, func() {
		code := run([]string{"-f", "/no/such/script.ftl"})
		assert.NotEqual(t, 0, code)
	})
}

func TestRunNoEchoSuppressesOutput(t *testing.T) {
	out := captureStdout(t, func() {
		code := run([]string{"-c", "1+1", "--ne"})
		assert.Equal(t, 0, code)
	})
	assert.NotContains(t, out, "2")
}

func TestRunScriptArgsExposedAsArgsVector(t *testing.T) {
	out := captureStdout(t, func() {
		code := run([]string{"-c", "args.0", "--", "hello", "world"})
		assert.Equal(t, 0, code)
	})
	assert.Contains(t, out, "hello")
}
