package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// simpleFileReader adapts a plain reader to the prompt library's stdin.
type simpleFileReader struct {
	io.Reader
}

func (s simpleFileReader) Fd() uintptr {
	return 0
}

type cmdRunner struct {
	t     testing.TB
	root  string
	stdin io.Reader
}

func newCmdRunner(t testing.TB) *cmdRunner {
	t.Helper()
	return &cmdRunner{
		t:    t,
		root: filepath.Join(t.TempDir(), "pretorin"),
	}
}

func (c *cmdRunner) run(commandLine ...string) *runCmdResult {
	ctx := context.Background()
	c.t.Helper()
	result := runCmdResult{t: c.t}
	if c.root != "" {
		commandLine = append(commandLine, "--root", c.root)
	}
	var stdin io.Reader = strings.NewReader("")
	if c.stdin != nil {
		stdin = c.stdin
	}
	Run(
		ctx,
		commandLine,
		&runOpts{
			stdin:   simpleFileReader{stdin},
			stdout:  SimpleFileWriter{&result.stdOut},
			stderr:  SimpleFileWriter{&result.stdErr},
			cmdName: "cmd",
			exitHandler: func(i int) {
				result.exited = true
				result.exitVal = i
			},
		},
	)
	return &result
}

type runCmdResult struct {
	t       testing.TB
	stdOut  bytes.Buffer
	stdErr  bytes.Buffer
	exited  bool
	exitVal int
}

func (r *runCmdResult) assertStdOut(want string) {
	r.t.Helper()
	assertEqualOrMatch(r.t, want, r.stdOut.String())
}

func (r *runCmdResult) assertStdErr(want string) {
	r.t.Helper()
	assertEqualOrMatch(r.t, want, r.stdErr.String())
}

type resultState struct {
	stdout string
	stderr string
	exit   int
}

func (r *runCmdResult) assertState(state resultState) {
	r.t.Helper()
	r.assertStdOut(state.stdout)
	r.assertStdErr(state.stderr)
	assert.Equal(r.t, state.exit, r.exitVal)
	assert.Equal(r.t, state.exit != 0, r.exited)
}

func assertEqualOrMatch(t testing.TB, want, got string) {
	t.Helper()
	if want == "" {
		assert.Equal(t, "", got)
		return
	}
	want = strings.TrimSpace(want)
	got = strings.TrimSpace(got)
	if want == got {
		return
	}
	re, err := regexp.Compile(want)
	if err != nil {
		assert.Equal(t, strings.TrimSpace(want), got)
		return
	}
	assert.Regexp(t, re, got)
}

func testInDir(t testing.TB, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if !assert.NoError(t, err) {
		return
	}
	t.Cleanup(func() {
		assert.NoError(t, os.Chdir(orig))
	})
	assert.NoError(t, os.Chdir(dir))
}
