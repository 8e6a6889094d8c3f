package codex

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// deferErr is for deferring error-returning cleanup without losing its error.
func deferErr(errOut *error, fn func() error) {
	err := fn()
	if *errOut == nil {
		*errOut = err
	}
}

// removeIfExists deletes a file, tolerating it being already gone.
func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// copyFile copies a regular file from src to dst.
func copyFile(src, dst string) (errOut error) {
	srcStat, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcStat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}
	rdr, err := os.Open(src)
	if err != nil {
		return err
	}
	defer deferErr(&errOut, rdr.Close)
	writer, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, srcStat.Mode())
	if err != nil {
		return err
	}
	defer deferErr(&errOut, writer.Close)
	_, err = io.Copy(writer, rdr)
	return err
}
