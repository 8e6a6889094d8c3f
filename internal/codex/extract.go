package codex

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
)

// fallbackNames are the member names searched for when no member matches
// the binary name directly.
var fallbackNames = []string{"codex", "codex-cli"}

// extract installs the codex binary from the downloaded archive. It first
// scans the tar stream for a member whose base name is "codex" or starts
// with "codex-". When that fails it unpacks the whole archive to a temp
// directory and walks it for a known binary name. The archive is removed
// on every exit path.
func (r *Runtime) extract(archivePath string) (errOut error) {
	defer func() {
		errOut = errors.Join(errOut, removeIfExists(archivePath))
	}()
	found, err := extractNamedMember(archivePath, r.BinaryPath())
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	found, err = extractByWalking(archivePath, r.BinaryPath())
	if err != nil {
		return err
	}
	if !found {
		return &ExtractionError{Archive: archivePath}
	}
	return nil
}

// extractNamedMember stream-copies the first matching tar member to dest.
func extractNamedMember(archivePath, dest string) (_ bool, errOut error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return false, err
	}
	defer deferErr(&errOut, file.Close)
	gzr, err := gzip.NewReader(file)
	if err != nil {
		return false, err
	}
	defer deferErr(&errOut, gzr.Close)
	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		base := path.Base(header.Name)
		if base != binaryName && !strings.HasPrefix(base, binaryName+"-") {
			continue
		}
		return true, writeFileFrom(tr, dest)
	}
}

// extractByWalking unpacks the full archive and walks it for a member
// named after the binary or its CLI alias.
func extractByWalking(archivePath, dest string) (_ bool, errOut error) {
	extractDir, err := os.MkdirTemp("", "pretorin-extract")
	if err != nil {
		return false, err
	}
	defer deferErr(&errOut, func() error {
		return os.RemoveAll(extractDir)
	})
	err = archiver.Unarchive(archivePath, extractDir)
	if err != nil {
		return false, err
	}
	var foundPath string
	err = filepath.WalkDir(extractDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, name := range fallbackNames {
			if d.Name() == name {
				foundPath = p
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if foundPath == "" {
		return false, nil
	}
	return true, copyFile(foundPath, dest)
}

func writeFileFrom(rdr io.Reader, dest string) (errOut error) {
	out, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer deferErr(&errOut, out.Close)
	_, err = io.Copy(out, rdr)
	return err
}
