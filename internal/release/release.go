// Package release queries upstream codex releases and computes the
// archive checksums needed to pin a new version.
package release

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v52/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/pretorin/pretorin/internal/codex"
)

const (
	upstreamOwner = "openai"
	upstreamRepo  = "codex"
)

// Info describes one upstream release relative to the pinned version.
type Info struct {
	Tag string
	// Behind is true when the pinned version is older than Tag.
	Behind bool
	Assets []string
}

// Query fetches release metadata from the upstream repository. When tag is
// empty the latest release is used. token is an optional GitHub token for
// rate-limited environments.
func Query(ctx context.Context, pinned, tag, token string) (*Info, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		))
	}
	client := github.NewClient(httpClient)
	var rel *github.RepositoryRelease
	var err error
	if tag == "" {
		rel, _, err = client.Repositories.GetLatestRelease(ctx, upstreamOwner, upstreamRepo)
	} else {
		rel, _, err = client.Repositories.GetReleaseByTag(ctx, upstreamOwner, upstreamRepo, tag)
	}
	if err != nil {
		return nil, err
	}
	info := &Info{
		Tag:    rel.GetTagName(),
		Behind: isBehind(pinned, rel.GetTagName()),
	}
	for _, asset := range rel.Assets {
		info.Assets = append(info.Assets, asset.GetBrowserDownloadURL())
	}
	return info, nil
}

// isBehind reports whether the pinned tag is older than the candidate
// tag. When either tag does not parse, any difference counts as behind.
func isBehind(pinned, candidate string) bool {
	pinnedVersion := tagVersion(pinned)
	candidateVersion := tagVersion(candidate)
	if pinnedVersion == nil || candidateVersion == nil {
		return pinned != candidate
	}
	return pinnedVersion.LessThan(candidateVersion)
}

// tagVersion parses a release tag like "rust-v0.88.0-alpha.3" as semver.
func tagVersion(tag string) *semver.Version {
	trimmed := strings.TrimPrefix(tag, "rust-")
	trimmed = strings.TrimPrefix(trimmed, "v")
	version, err := semver.NewVersion(trimmed)
	if err != nil {
		return nil
	}
	return version
}

// ComputeChecksums downloads the release archive for every supported
// platform concurrently and returns their sha256 digests.
func ComputeChecksums(ctx context.Context, version string) (map[codex.Platform]string, error) {
	sums := make(map[codex.Platform]string, len(codex.Platforms()))
	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	for _, platform := range codex.Platforms() {
		platform := platform
		group.Go(func() error {
			sum, err := ChecksumForURL(ctx, codex.DownloadURL(version, platform))
			if err != nil {
				return fmt.Errorf("%s: %v", platform, err)
			}
			mu.Lock()
			sums[platform] = sum
			mu.Unlock()
			return nil
		})
	}
	err := group.Wait()
	if err != nil {
		return nil, err
	}
	return sums, nil
}

// ChecksumForURL streams the resource at url through sha256 and returns
// the hex digest.
func ChecksumForURL(ctx context.Context, url string) (_ string, errOut error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		closeErr := resp.Body.Close()
		if errOut == nil {
			errOut = closeErr
		}
	}()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed downloading %s: %s", url, resp.Status)
	}
	hasher := sha256.New()
	_, err = io.Copy(hasher, resp.Body)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
