// Package codex manages the pinned codex binary and its isolated runtime.
//
// The binary lives under <root>/bin/codex-<version> and its configuration
// under <root>/codex/, so nothing here ever reads or writes the user's own
// ~/.codex directory.
package codex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Version is the pinned codex release this build manages.
const Version = "rust-v0.88.0-alpha.3"

const defaultURLTemplate = "https://github.com/openai/codex/releases/download/%s/codex-%s.tar.gz"

const binaryName = "codex"

// DownloadURL returns the release archive URL for a version and platform.
func DownloadURL(version string, platform Platform) string {
	return fmt.Sprintf(defaultURLTemplate, version, platform.Target())
}

// Runtime manages one pinned codex binary and its isolated home.
type Runtime struct {
	version         string
	root            string
	logger          *log.Logger
	checksums       map[Platform]string
	requireChecksum bool
	urlTemplate     string
	httpClient      *http.Client
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithVersion overrides the pinned version.
func WithVersion(version string) Option {
	return func(r *Runtime) { r.version = version }
}

// WithRoot overrides the default ~/.pretorin root directory.
func WithRoot(dir string) Option {
	return func(r *Runtime) { r.root = dir }
}

// WithLogger sets the logger used for download and cleanup messages.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// WithChecksums replaces the pinned checksum table.
func WithChecksums(checksums map[Platform]string) Option {
	return func(r *Runtime) { r.checksums = checksums }
}

// WithRequireChecksum makes installation fail when no checksum is pinned
// for the platform instead of proceeding with a warning.
func WithRequireChecksum() Option {
	return func(r *Runtime) { r.requireChecksum = true }
}

// New returns a Runtime for the pinned version. When no version override
// is given and a pin-state file exists under the root, the pinned version
// and checksums come from it.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		logger:      log.Default(),
		urlTemplate: defaultURLTemplate,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		r.root = filepath.Join(home, ".pretorin")
	}
	if r.version == "" {
		r.version = Version
		state, err := LoadPinState(r.root)
		if err != nil {
			return nil, err
		}
		if state != nil {
			r.version = state.Version
			if r.checksums == nil {
				r.checksums = state.Checksums
			}
		}
	}
	if r.checksums == nil {
		r.checksums = defaultChecksums
	}
	return r, nil
}

// Version returns the pinned version.
func (r *Runtime) Version() string { return r.version }

// Root returns the isolated root directory.
func (r *Runtime) Root() string { return r.root }

// BinDir returns the directory holding versioned binaries.
func (r *Runtime) BinDir() string { return filepath.Join(r.root, "bin") }

// CodexHome returns the isolated configuration home for the binary.
func (r *Runtime) CodexHome() string { return filepath.Join(r.root, "codex") }

// BinaryPath returns the deterministic path of the pinned binary.
func (r *Runtime) BinaryPath() string {
	return filepath.Join(r.BinDir(), binaryName+"-"+r.version)
}

// Installed reports whether the pinned binary exists and is executable.
// It always stats the filesystem so out-of-band removal is noticed.
func (r *Runtime) Installed() bool {
	info, err := os.Stat(r.BinaryPath())
	return err == nil && info.Mode().IsRegular() && info.Mode()&0o111 != 0
}

func (r *Runtime) downloadURL(platform Platform) string {
	return fmt.Sprintf(r.urlTemplate, r.version, platform.Target())
}
