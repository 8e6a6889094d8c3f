package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pretorin/pretorin/internal/mcpconfig"
)

func Test_mcpAddCmd(t *testing.T) {
	t.Run("stdio server", func(t *testing.T) {
		runner := newCmdRunner(t)
		result := runner.run("mcp", "add", "github", "--command", "github-mcp", "--args=--stdio")
		result.assertState(resultState{
			stdout: `added github to .*mcp\.json`,
		})
		servers, err := mcpconfig.LoadFile(mcpconfig.GlobalPath(runner.root))
		require.NoError(t, err)
		require.Len(t, servers, 1)
		require.Equal(t, "github-mcp", servers[0].Command)
		require.Equal(t, []string{"--stdio"}, servers[0].Args)
	})

	t.Run("http server", func(t *testing.T) {
		runner := newCmdRunner(t)
		result := runner.run("mcp", "add", "web", "--url", "https://mcp.example.com")
		result.assertState(resultState{
			stdout: `added web to .*mcp\.json`,
		})
		servers, err := mcpconfig.LoadFile(mcpconfig.GlobalPath(runner.root))
		require.NoError(t, err)
		require.Equal(t, mcpconfig.TransportHTTP, servers[0].Transport)
	})

	t.Run("duplicate name", func(t *testing.T) {
		runner := newCmdRunner(t)
		runner.run("mcp", "add", "dup", "--command", "dup-mcp")
		result := runner.run("mcp", "add", "dup", "--command", "other-mcp")
		assert.True(t, result.exited)
		result.assertStdErr(`"dup" already configured`)
	})

	t.Run("command and url together", func(t *testing.T) {
		runner := newCmdRunner(t)
		result := runner.run("mcp", "add", "x", "--command", "x-mcp", "--url", "https://x")
		assert.True(t, result.exited)
		result.assertStdErr(`mutually exclusive`)
	})

	t.Run("neither command nor url", func(t *testing.T) {
		runner := newCmdRunner(t)
		result := runner.run("mcp", "add", "x")
		assert.True(t, result.exited)
		result.assertStdErr(`one of --command or --url is required`)
	})

	t.Run("reserved name", func(t *testing.T) {
		runner := newCmdRunner(t)
		result := runner.run("mcp", "add", "pretorin", "--command", "x")
		assert.True(t, result.exited)
		result.assertStdErr(`reserved`)
	})
}

func Test_mcpListCmd(t *testing.T) {
	runner := newCmdRunner(t)
	runner.run("mcp", "add", "github", "--command", "github-mcp")
	runner.run("mcp", "add", "web", "--url", "https://mcp.example.com")

	workDir := t.TempDir()
	projectFile := filepath.Join(workDir, mcpconfig.ProjectFileName)
	require.NoError(t, os.WriteFile(projectFile, []byte(`{
  "servers": {
    "github": {"command": "project-github-mcp"}
  }
}`), 0o644))
	testInDir(t, workDir)

	result := runner.run("mcp", "list")
	result.assertState(resultState{
		stdout: `github	stdio	project-github-mcp
web	http	https://mcp\.example\.com`,
	})
}
