package codex

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pretorin/pretorin/internal/mcpconfig"
)

const defaultWireAPI = "responses"

// ConfigParams are the settings written to the isolated config.toml.
// Model is carried for the agent layer (codex takes it as a flag) and is
// not serialized.
type ConfigParams struct {
	Model        string
	ProviderName string
	BaseURL      string
	EnvKey       string
	WireAPI      string
	// ProjectDir, when set, is also searched for a project-level servers
	// file that takes precedence over the global one.
	ProjectDir string
}

// WriteConfig writes config.toml under the isolated codex home and
// returns its path. The file selects the given model provider, disables
// web search, injects the reserved pretorin MCP server, and appends any
// user-configured MCP servers whose names do not collide with it. The
// whole file is rebuilt and overwritten on every call.
func (r *Runtime) WriteConfig(params ConfigParams) (string, error) {
	provider, err := tomlBareKey(params.ProviderName)
	if err != nil {
		return "", err
	}
	wireAPI := params.WireAPI
	if wireAPI == "" {
		wireAPI = defaultWireAPI
	}

	lines := []string{
		`model_provider = "` + tomlEscape(provider) + `"`,
		`web_search = "disabled"`,
		``,
		`[model_providers.` + provider + `]`,
		`name = "` + tomlEscape(provider) + `"`,
		`base_url = "` + tomlEscape(params.BaseURL) + `"`,
		`wire_api = "` + tomlEscape(wireAPI) + `"`,
		`env_key = "` + tomlEscape(params.EnvKey) + `"`,
		``,
		`[mcp_servers.` + mcpconfig.ReservedName + `]`,
		`command = "pretorin"`,
		`args = ["mcp-serve"]`,
	}

	servers, err := mcpconfig.Load(r.root, params.ProjectDir)
	if err != nil {
		return "", err
	}
	for _, server := range servers {
		if server.Name == mcpconfig.ReservedName {
			continue
		}
		name, err := tomlBareKey(server.Name)
		if err != nil {
			return "", err
		}
		lines = append(lines, ``, `[mcp_servers.`+name+`]`)
		if server.Command != "" {
			lines = append(lines, `command = "`+tomlEscape(server.Command)+`"`)
		}
		if len(server.Args) > 0 {
			quoted := make([]string, len(server.Args))
			for i, arg := range server.Args {
				quoted[i] = `"` + tomlEscape(arg) + `"`
			}
			lines = append(lines, `args = [`+strings.Join(quoted, ", ")+`]`)
		}
		if server.URL != "" {
			lines = append(lines, `url = "`+tomlEscape(server.URL)+`"`)
		}
	}

	err = os.MkdirAll(r.CodexHome(), 0o755)
	if err != nil {
		return "", err
	}
	configPath := filepath.Join(r.CodexHome(), "config.toml")
	err = os.WriteFile(configPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	if err != nil {
		return "", err
	}
	return configPath, nil
}

var bareKeyRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// tomlBareKey validates that key is safe to emit as an unquoted TOML key.
func tomlBareKey(key string) (string, error) {
	if !bareKeyRE.MatchString(key) {
		return "", &InvalidKeyError{Key: key}
	}
	return key, nil
}

// tomlEscape escapes a string for embedding in a double-quoted TOML
// value. Backslashes are replaced first so escapes introduced for the
// later characters are not escaped again.
func tomlEscape(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	value = strings.ReplaceAll(value, "\r", `\r`)
	value = strings.ReplaceAll(value, "\t", `\t`)
	return value
}
