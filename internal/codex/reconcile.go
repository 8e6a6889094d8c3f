package codex

import (
	"os"
	"path/filepath"
	"strings"
)

// CleanOldVersions removes binaries in the bin dir that do not match the
// pinned version and returns the removed paths. Files that do not follow
// the codex binary naming convention are left alone.
func (r *Runtime) CleanOldVersions() ([]string, error) {
	entries, err := os.ReadDir(r.BinDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	current := filepath.Base(r.BinaryPath())
	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, binaryName+"-") || name == current {
			continue
		}
		path := filepath.Join(r.BinDir(), name)
		err = os.Remove(path)
		if err != nil {
			return removed, err
		}
		removed = append(removed, path)
		r.logger.Info("removed old codex binary", "path", path)
	}
	return removed, nil
}
