package codex

import goruntime "runtime"

// Platform is a simplified platform key used to select release assets.
type Platform string

const (
	PlatformDarwinARM64 Platform = "darwin-arm64"
	PlatformDarwinX64   Platform = "darwin-x64"
	PlatformLinuxX64    Platform = "linux-x64"
)

// platformTargets maps platform keys to the Rust target triples used in
// upstream release asset names.
var platformTargets = map[Platform]string{
	PlatformDarwinARM64: "aarch64-apple-darwin",
	PlatformDarwinX64:   "x86_64-apple-darwin",
	PlatformLinuxX64:    "x86_64-unknown-linux-gnu",
}

// Target returns the platform's release target triple.
func (p Platform) Target() string {
	target, ok := platformTargets[p]
	if !ok {
		return string(p)
	}
	return target
}

// Platforms returns all platform keys with published release assets.
func Platforms() []Platform {
	return []Platform{PlatformDarwinARM64, PlatformDarwinX64, PlatformLinuxX64}
}

// DetectPlatform returns the platform key for the running system.
func DetectPlatform() (Platform, error) {
	return detectPlatform(goruntime.GOOS, goruntime.GOARCH)
}

func detectPlatform(goos, goarch string) (Platform, error) {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return PlatformDarwinARM64, nil
		}
		return PlatformDarwinX64, nil
	case "linux":
		return PlatformLinuxX64, nil
	}
	return "", &UnsupportedPlatformError{OS: goos, Arch: goarch}
}
