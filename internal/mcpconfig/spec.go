package mcpconfig

import "fmt"

// FileSpec is the on-disk shape of a servers file. It exists for the
// schema generator; runtime decoding goes through parseServers to keep
// entry order.
type FileSpec struct {
	Servers map[string]ServerSpec `json:"servers,omitempty"`
}

// ServerSpec is one raw entry in a servers file. Transport may be left
// empty, in which case it is inferred from which of command or url is set.
type ServerSpec struct {
	Transport string            `json:"transport,omitempty" jsonschema:"enum=stdio,enum=http"`
	Command   string            `json:"command,omitempty"`
	Args      []string          `json:"args,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
	URL       string            `json:"url,omitempty"`
}

func (s ServerSpec) server(name string) (Server, error) {
	transport := Transport(s.Transport)
	if transport == "" {
		switch {
		case s.Command != "":
			transport = TransportStdio
		case s.URL != "":
			transport = TransportHTTP
		default:
			return Server{}, fmt.Errorf("mcp server %q: needs a command or a url", name)
		}
	}
	switch transport {
	case TransportStdio:
		return NewStdioServer(name, s.Command, s.Args, s.Env)
	case TransportHTTP:
		return NewHTTPServer(name, s.URL)
	}
	return Server{}, fmt.Errorf("mcp server %q: unknown transport %q", name, s.Transport)
}

func (s Server) spec() ServerSpec {
	return ServerSpec{
		Transport: string(s.Transport),
		Command:   s.Command,
		Args:      s.Args,
		Env:       s.Env,
		URL:       s.URL,
	}
}
