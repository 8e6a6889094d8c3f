package main

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pretorin/pretorin/internal/codex"
)

func Test_runtimeInfoCmd(t *testing.T) {
	runner := newCmdRunner(t)
	result := runner.run("runtime", "info")
	result.assertStdOut(`(?s)version:   rust-v0\.88\.0-alpha\.3.*platform:  .*binary:    .*codex-rust-v0\.88\.0-alpha\.3.*installed: false`)
	assert.False(t, result.exited)
}

func Test_runtimeInfoCmd_pinnedVersion(t *testing.T) {
	runner := newCmdRunner(t)
	err := codex.WritePinState(runner.root, &codex.PinState{Version: "rust-v9.9.9"})
	require.NoError(t, err)
	result := runner.run("runtime", "info")
	result.assertStdOut(`version:   rust-v9\.9\.9`)
}

func Test_runtimeCleanCmd(t *testing.T) {
	runner := newCmdRunner(t)
	binDir := filepath.Join(runner.root, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	current := filepath.Join(binDir, "codex-"+codex.Version)
	stale := filepath.Join(binDir, "codex-rust-v0.1.0")
	require.NoError(t, os.WriteFile(current, []byte("x"), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o755))

	result := runner.run("runtime", "clean")
	result.assertState(resultState{
		stdout: regexp.QuoteMeta(stale),
		stderr: `removed old codex binary`,
	})
	require.FileExists(t, current)
	require.NoFileExists(t, stale)
}

func Test_runtimeCleanCmd_quiet(t *testing.T) {
	runner := newCmdRunner(t)
	binDir := filepath.Join(runner.root, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	stale := filepath.Join(binDir, "codex-rust-v0.1.0")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o755))

	result := runner.run("-q", "runtime", "clean")
	result.assertState(resultState{})
	require.NoFileExists(t, stale)
}
