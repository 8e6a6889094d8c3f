package codex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuntime_CleanOldVersions(t *testing.T) {
	t.Run("removes stale binaries only", func(t *testing.T) {
		rt := testRuntime(t, WithVersion("rust-v2.0.0"))
		require.NoError(t, os.MkdirAll(rt.BinDir(), 0o755))
		for _, name := range []string{
			"codex-rust-v2.0.0",
			"codex-rust-v1.0.0",
			"codex-rust-v1.5.0",
			"unrelated",
			".install.lock",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(rt.BinDir(), name), []byte("x"), 0o755))
		}

		removed, err := rt.CleanOldVersions()
		require.NoError(t, err)
		require.ElementsMatch(t, []string{
			filepath.Join(rt.BinDir(), "codex-rust-v1.0.0"),
			filepath.Join(rt.BinDir(), "codex-rust-v1.5.0"),
		}, removed)

		require.FileExists(t, rt.BinaryPath())
		require.FileExists(t, filepath.Join(rt.BinDir(), "unrelated"))
		require.FileExists(t, filepath.Join(rt.BinDir(), ".install.lock"))
		require.NoFileExists(t, filepath.Join(rt.BinDir(), "codex-rust-v1.0.0"))
	})

	t.Run("missing bin dir", func(t *testing.T) {
		rt := testRuntime(t)
		removed, err := rt.CleanOldVersions()
		require.NoError(t, err)
		require.Empty(t, removed)
	})

	t.Run("nothing stale", func(t *testing.T) {
		rt := testRuntime(t)
		require.NoError(t, os.MkdirAll(rt.BinDir(), 0o755))
		require.NoError(t, os.WriteFile(rt.BinaryPath(), []byte("x"), 0o755))
		removed, err := rt.CleanOldVersions()
		require.NoError(t, err)
		require.Empty(t, removed)
	})
}
