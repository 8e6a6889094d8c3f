package codex

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultChecksums holds the sha256 digest of each release archive for the
// pinned Version. Maintainers update these when bumping Version.
var defaultChecksums = map[Platform]string{
	PlatformDarwinARM64: "a20463a19ed5dd7fe01cdd14cbdf11e7a1b23296135df61aba65944dc0ac5367",
	PlatformDarwinX64:   "ea5a1343cd1b7216ccf6085257217ef1819f54c237cb60e33a9f000f4456405d",
	PlatformLinuxX64:    "e3dd97f06ad09f7893e73d7ea091bdc5045ef7bd7ba306140d13a14d512cdc5f",
}

// PinState is a locally pinned version with its archive checksums. It is
// written by "pretorin runtime pin" and overrides the built-in pin.
type PinState struct {
	Version   string              `yaml:"version"`
	Checksums map[Platform]string `yaml:"checksums,omitempty"`
}

func pinStatePath(root string) string {
	return filepath.Join(root, "runtime.yaml")
}

// LoadPinState reads the pin-state file under root. It returns nil with no
// error when the file does not exist.
func LoadPinState(root string) (*PinState, error) {
	data, err := os.ReadFile(pinStatePath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var state PinState
	err = yaml.Unmarshal(data, &state)
	if err != nil {
		return nil, fmt.Errorf("invalid pin state in %s: %v", pinStatePath(root), err)
	}
	if state.Version == "" {
		return nil, fmt.Errorf("pin state in %s has no version", pinStatePath(root))
	}
	return &state, nil
}

// WritePinState writes the pin-state file under root.
func WritePinState(root string, state *PinState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return err
	}
	err = os.MkdirAll(root, 0o755)
	if err != nil {
		return err
	}
	return os.WriteFile(pinStatePath(root), data, 0o644)
}
