package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_unknownCommand(t *testing.T) {
	runner := newCmdRunner(t)
	result := runner.run("bogus")
	assert.True(t, result.exited)
	assert.Equal(t, 1, result.exitVal)
	result.assertStdErr(`(?s)unexpected argument bogus|expected one of`)
}

func TestRun_rootFromEnv(t *testing.T) {
	runner := newCmdRunner(t)
	t.Setenv("PRETORIN_ROOT", runner.root)
	runner.root = ""
	result := runner.run("runtime", "info")
	result.assertStdOut(`installed: false`)
	assert.False(t, result.exited)
}
