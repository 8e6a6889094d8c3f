package codex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// download fetches the release archive for platform to a temp file and
// returns its path. The partial file is removed on any failure.
func (r *Runtime) download(ctx context.Context, platform Platform) (_ string, errOut error) {
	url := r.downloadURL(platform)
	r.logger.Info("downloading codex", "version", r.version, "platform", platform, "url", url)

	tmp, err := os.CreateTemp("", "pretorin-codex-*.tar.gz")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer func() {
		errOut = errors.Join(errOut, tmp.Close())
		if errOut != nil {
			errOut = errors.Join(errOut, removeIfExists(tmpPath))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	defer deferErr(&errOut, resp.Body.Close)
	if resp.StatusCode >= 300 {
		return "", &DownloadError{URL: url, Err: fmt.Errorf("unexpected response status %q", resp.Status)}
	}
	_, err = io.Copy(tmp, resp.Body)
	if err != nil {
		return "", &DownloadError{URL: url, Err: err}
	}
	return tmpPath, nil
}
