// Package mcpconfig loads user-supplied MCP server definitions from the
// project-level .pretorin-mcp.json and the global <root>/mcp.json. Entries
// named after the reserved pretorin integration are always dropped since
// that server is injected by the config writer itself.
package mcpconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReservedName is the server name reserved for pretorin's own MCP
// integration. User entries with this name are ignored.
const ReservedName = "pretorin"

// ProjectFileName is the per-project servers file, resolved against the
// working directory. It takes precedence over the global file.
const ProjectFileName = ".pretorin-mcp.json"

// Transport is how a client reaches an MCP server.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// Server is a validated MCP server definition.
type Server struct {
	Name      string
	Transport Transport
	Command   string
	Args      []string
	Env       map[string]string
	URL       string
}

// NewStdioServer returns a stdio-transport server. A command is required.
func NewStdioServer(name, command string, args []string, env map[string]string) (Server, error) {
	if command == "" {
		return Server{}, fmt.Errorf("mcp server %q: stdio transport requires a command", name)
	}
	return Server{
		Name:      name,
		Transport: TransportStdio,
		Command:   command,
		Args:      args,
		Env:       env,
	}, nil
}

// NewHTTPServer returns an http-transport server. A url is required.
func NewHTTPServer(name, url string) (Server, error) {
	if url == "" {
		return Server{}, fmt.Errorf("mcp server %q: http transport requires a url", name)
	}
	return Server{
		Name:      name,
		Transport: TransportHTTP,
		URL:       url,
	}, nil
}

// GlobalPath returns the global servers file under the pretorin root.
func GlobalPath(root string) string {
	return filepath.Join(root, "mcp.json")
}

// Load merges the project file in workDir (skipped when workDir is empty)
// with the global file under root. Project entries win on name conflicts.
func Load(root, workDir string) ([]Server, error) {
	var paths []string
	if workDir != "" {
		paths = append(paths, filepath.Join(workDir, ProjectFileName))
	}
	paths = append(paths, GlobalPath(root))

	var servers []Server
	seen := map[string]bool{}
	for _, path := range paths {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, server := range loaded {
			if seen[server.Name] {
				continue
			}
			seen[server.Name] = true
			servers = append(servers, server)
		}
	}
	return servers, nil
}

// LoadFile reads one servers file, preserving entry order. A missing file
// is not an error. The file is checked against the servers schema before
// decoding so malformed files fail with a message instead of being
// silently skipped.
func LoadFile(path string) ([]Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	err = validateSchema(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	servers, err := parseServers(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return servers, nil
}

// parseServers decodes the servers object with a token scanner so entries
// keep their file order, which encoding/json maps would not.
func parseServers(data []byte) ([]Server, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	err := expectDelim(dec, '{')
	if err != nil {
		return nil, err
	}
	var servers []Server
	for dec.More() {
		key, err := expectString(dec)
		if err != nil {
			return nil, err
		}
		if key != "servers" {
			var skipped json.RawMessage
			err = dec.Decode(&skipped)
			if err != nil {
				return nil, err
			}
			continue
		}
		err = expectDelim(dec, '{')
		if err != nil {
			return nil, err
		}
		for dec.More() {
			name, err := expectString(dec)
			if err != nil {
				return nil, err
			}
			var spec ServerSpec
			err = dec.Decode(&spec)
			if err != nil {
				return nil, err
			}
			if name == ReservedName {
				continue
			}
			server, err := spec.server(name)
			if err != nil {
				return nil, err
			}
			servers = append(servers, server)
		}
		err = expectDelim(dec, '}')
		if err != nil {
			return nil, err
		}
	}
	return servers, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func expectString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	str, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return str, nil
}

// Add writes server to the servers file at path, preserving existing
// entry order. Adding a name that already exists is an error.
func Add(path string, server Server) error {
	if server.Name == ReservedName {
		return fmt.Errorf("mcp server name %q is reserved", ReservedName)
	}
	existing, err := LoadFile(path)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.Name == server.Name {
			return fmt.Errorf("mcp server %q already configured in %s", server.Name, path)
		}
	}
	return WriteFile(path, append(existing, server))
}

// WriteFile writes the servers file at path with entries in slice order.
func WriteFile(path string, servers []Server) error {
	var buf bytes.Buffer
	buf.WriteString("{\n  \"servers\": {")
	for i, server := range servers {
		entry, err := json.MarshalIndent(server.spec(), "    ", "  ")
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(&buf, "\n    %q: %s", server.Name, entry)
	}
	if len(servers) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("}\n}\n")
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
