package codex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_detectPlatform(t *testing.T) {
	t.Run("darwin arm64", func(t *testing.T) {
		got, err := detectPlatform("darwin", "arm64")
		require.NoError(t, err)
		require.Equal(t, PlatformDarwinARM64, got)
	})

	t.Run("darwin amd64", func(t *testing.T) {
		got, err := detectPlatform("darwin", "amd64")
		require.NoError(t, err)
		require.Equal(t, PlatformDarwinX64, got)
	})

	t.Run("linux always maps to x64", func(t *testing.T) {
		for _, arch := range []string{"amd64", "arm64"} {
			got, err := detectPlatform("linux", arch)
			require.NoError(t, err)
			require.Equal(t, PlatformLinuxX64, got)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := detectPlatform("windows", "amd64")
		var platformErr *UnsupportedPlatformError
		require.True(t, errors.As(err, &platformErr))
		require.Equal(t, "windows", platformErr.OS)
		require.Equal(t, "amd64", platformErr.Arch)
		require.ErrorContains(t, err, "windows/amd64")
	})
}

func TestPlatform_Target(t *testing.T) {
	require.Equal(t, "aarch64-apple-darwin", PlatformDarwinARM64.Target())
	require.Equal(t, "x86_64-apple-darwin", PlatformDarwinX64.Target())
	require.Equal(t, "x86_64-unknown-linux-gnu", PlatformLinuxX64.Target())

	// unknown keys fall back to themselves like the upstream tooling does
	require.Equal(t, "freebsd-x64", Platform("freebsd-x64").Target())
}

func TestDownloadURL(t *testing.T) {
	require.Equal(t,
		"https://github.com/openai/codex/releases/download/v1.2.3/codex-x86_64-unknown-linux-gnu.tar.gz",
		DownloadURL("v1.2.3", PlatformLinuxX64),
	)
}
