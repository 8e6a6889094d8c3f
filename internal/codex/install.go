package codex

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rogpeppe/go-internal/lockedfile"
)

// EnsureInstalled makes sure the pinned binary is present and executable
// and returns its path. When it is already installed nothing is
// downloaded. The download, verify, extract, chmod sequence runs under an
// exclusive lock so concurrent invocations racing on the same destination
// serialize instead of clobbering each other.
func (r *Runtime) EnsureInstalled(ctx context.Context) (_ string, errOut error) {
	if r.Installed() {
		return r.BinaryPath(), nil
	}
	err := os.MkdirAll(r.BinDir(), 0o755)
	if err != nil {
		return "", err
	}
	lock, err := lockedfile.OpenFile(filepath.Join(r.BinDir(), ".install.lock"), os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return "", err
	}
	defer deferErr(&errOut, lock.Close)
	// another process may have finished the install while we waited
	if r.Installed() {
		return r.BinaryPath(), nil
	}
	platform, err := DetectPlatform()
	if err != nil {
		return "", err
	}
	archivePath, err := r.download(ctx, platform)
	if err != nil {
		return "", err
	}
	err = r.verifyChecksum(archivePath, platform)
	if err != nil {
		return "", err
	}
	err = r.extract(archivePath)
	if err != nil {
		return "", err
	}
	err = makeExecutable(r.BinaryPath())
	if err != nil {
		return "", err
	}
	return r.BinaryPath(), nil
}

// makeExecutable unions the executable bits into the file's mode, leaving
// the rest of the mode untouched.
func makeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode()|0o111)
}
