package codex

import "fmt"

// UnsupportedPlatformError is returned when the host OS/arch has no
// published codex release.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s/%s", e.OS, e.Arch)
}

// DownloadError wraps a network or HTTP failure while fetching a release
// archive. The partial download is removed before it is returned.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download codex binary from %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ChecksumMismatchError reports a downloaded archive whose sha256 digest
// does not match the pinned digest for the platform.
type ChecksumMismatchError struct {
	Platform Platform
	Want     string
	Got      string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s:\n  expected: %s\n  actual:   %s", e.Platform, e.Want, e.Got)
}

// ExtractionError is returned when no codex binary can be located in a
// downloaded archive.
type ExtractionError struct {
	Archive string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not find codex binary in %s", e.Archive)
}

// InvalidKeyError is returned for provider or server names that are not
// safe to emit as bare TOML keys.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid toml key: %q", e.Key)
}
