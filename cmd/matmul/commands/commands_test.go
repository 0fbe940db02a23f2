package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with an isolated home and working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MATMUL_LOGGING_CONSOLE", "false")
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunSerial(t *testing.T) {
	out, err := execute(t, "run", "--kind", "serial", "--rows", "8", "--inner", "4", "--cols", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "kind:     serial")
	assert.Contains(t, out, "shape:    8x5")
	assert.Contains(t, out, "checksum:")
}

// TestRunChecksumStable: both kinds print the same checksum for the same seed.
func TestRunChecksumStable(t *testing.T) {
	args := []string{"--rows", "16", "--inner", "9", "--cols", "12", "--seed", "3"}

	serialOut, err := execute(t, append([]string{"run", "--kind", "serial"}, args...)...)
	require.NoError(t, err)
	parallelOut, err := execute(t, append([]string{"run", "--kind", "parallel", "--workers", "3"}, args...)...)
	require.NoError(t, err)

	assert.Equal(t, checksumLine(t, serialOut), checksumLine(t, parallelOut))
}

func TestRunRejectsBadKind(t *testing.T) {
	_, err := execute(t, "run", "--kind", "gpu", "--rows", "2", "--inner", "2", "--cols", "2")
	require.Error(t, err)
}

func TestRunRejectsBadShape(t *testing.T) {
	_, err := execute(t, "run", "--rows", "0")
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify", "--rows", "33", "--inner", "17", "--cols", "21", "--workers", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 33 rows identical")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "gomaxprocs:")
	assert.Contains(t, out, "workers (256 rows):")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "matmul v"+Version)
}

func checksumLine(t *testing.T, out string) string {
	t.Helper()
	for _, line := range bytes.Split([]byte(out), []byte("\n")) {
		if bytes.HasPrefix(line, []byte("checksum:")) {
			return string(line)
		}
	}
	t.Fatalf("no checksum line in %q", out)
	return ""
}
