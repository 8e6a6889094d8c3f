package main

import (
	"fmt"
	"os"

	"github.com/pretorin/pretorin/internal/mcpconfig"
)

type mcpCmd struct {
	List mcpListCmd `kong:"cmd,help=${mcp_list_help}"`
	Add  mcpAddCmd  `kong:"cmd,help=${mcp_add_help}"`
}

type mcpListCmd struct{}

func (c *mcpListCmd) Run(ctx *runContext) error {
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	servers, err := mcpconfig.Load(rt.Root(), workDir)
	if err != nil {
		return err
	}
	for _, server := range servers {
		target := server.Command
		if server.Transport == mcpconfig.TransportHTTP {
			target = server.URL
		}
		fmt.Fprintf(ctx.stdout, "%s\t%s\t%s\n", server.Name, server.Transport, target)
	}
	return nil
}

type mcpAddCmd struct {
	Name    string            `kong:"arg,help='server name'"`
	Command string            `kong:"help='command to launch a stdio server'"`
	Args    []string          `kong:"help='arguments for the stdio command'"`
	Env     map[string]string `kong:"help='environment variables for the stdio command'"`
	URL     string            `kong:"name=url,help='endpoint of an http server'"`
}

func (c *mcpAddCmd) Run(ctx *runContext) error {
	var server mcpconfig.Server
	var err error
	switch {
	case c.Command != "" && c.URL != "":
		return fmt.Errorf("--command and --url are mutually exclusive")
	case c.Command != "":
		server, err = mcpconfig.NewStdioServer(c.Name, c.Command, c.Args, c.Env)
	case c.URL != "":
		server, err = mcpconfig.NewHTTPServer(c.Name, c.URL)
	default:
		return fmt.Errorf("one of --command or --url is required")
	}
	if err != nil {
		return err
	}
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	path := mcpconfig.GlobalPath(rt.Root())
	err = mcpconfig.Add(path, server)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.stdout, "added %s to %s\n", server.Name, path)
	return nil
}
