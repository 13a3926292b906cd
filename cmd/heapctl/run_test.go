package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.trace")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func Test_Run_ReplaysTrace(t *testing.T) {
	path := writeTrace(t, "# smoke\na 0 64\nr 0 128\nf 0\n")

	quiet = true
	variant = "explicit"
	heapSize = 1 << 16
	runValidateEvery = 1

	require.NoError(t, runRun([]string{path}))
}

func Test_Run_ImplicitVariant(t *testing.T) {
	path := writeTrace(t, "a 0 64\na 1 64\nf 0\nf 1\n")

	quiet = true
	variant = "implicit"
	heapSize = 1 << 16

	require.NoError(t, runRun([]string{path}))
}

func Test_Run_RejectsBadTrace(t *testing.T) {
	path := writeTrace(t, "z 0 64\n")

	quiet = true
	variant = "explicit"
	heapSize = 1 << 16

	require.Error(t, runRun([]string{path}))
}

func Test_NewHeap_RejectsUnknownVariant(t *testing.T) {
	variant = "buddy"
	heapSize = 1 << 16

	_, _, err := newHeap()
	require.Error(t, err)
}

func Test_Validate_CleanTrace(t *testing.T) {
	path := writeTrace(t, "a 0 32\na 1 32\nf 0\nr 1 96\nf 1\n")

	quiet = true
	variant = "explicit"
	heapSize = 1 << 16

	require.NoError(t, runValidate([]string{path}))
}
