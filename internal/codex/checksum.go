package codex

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// verifyChecksum compares the archive's sha256 digest against the pinned
// digest for platform. Platforms with no pinned digest are allowed through
// with a warning unless the runtime requires checksums. A mismatched
// archive is deleted.
func (r *Runtime) verifyChecksum(archivePath string, platform Platform) error {
	want := r.checksums[platform]
	if want == "" {
		if r.requireChecksum {
			return errors.Join(
				fmt.Errorf("no checksum pinned for %s", platform),
				removeIfExists(archivePath),
			)
		}
		r.logger.Warn("no checksum pinned, skipping verification", "platform", platform)
		return nil
	}
	got, err := fileChecksum(archivePath)
	if err != nil {
		return err
	}
	if got != want {
		err = removeIfExists(archivePath)
		if err != nil {
			return err
		}
		return &ChecksumMismatchError{Platform: platform, Want: want, Got: got}
	}
	return nil
}

// fileChecksum returns the hex sha256 digest of a file, streaming it
// through the hasher rather than reading it into memory.
func fileChecksum(filename string) (_ string, errOut error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer deferErr(&errOut, file.Close)
	hasher := sha256.New()
	_, err = io.Copy(hasher, file)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
