package codex

import (
	"os"
	"sort"
)

// BuildEnv builds the environment for a spawned codex process. It sets
// CODEX_HOME to the isolated home so the binary never reads
// ~/.codex/config.toml, and passes through only PATH and HOME from the
// parent process rather than the full environment. Extra entries are
// merged last and may shadow any of the defaults.
func (r *Runtime) BuildEnv(apiKey, baseURL string, extra map[string]string) map[string]string {
	env := map[string]string{
		"CODEX_HOME":      r.CodexHome(),
		"OPENAI_API_KEY":  apiKey,
		"OPENAI_BASE_URL": baseURL,
		"PATH":            os.Getenv("PATH"),
		"HOME":            os.Getenv("HOME"),
	}
	for key, val := range extra {
		env[key] = val
	}
	return env
}

// EnvironList renders an environment map as a sorted KEY=VALUE slice for
// exec.Cmd.
func EnvironList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		result = append(result, key+"="+env[key])
	}
	return result
}
