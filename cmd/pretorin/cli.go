package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/willabides/kongplete"

	"github.com/pretorin/pretorin/internal/codex"
)

var kongVars = kong.Vars{
	"root_help":                `pretorin root directory. default is ~/.pretorin`,
	"runtime_help":             `manage the pinned codex runtime`,
	"runtime_install_help":     `download, verify and install the pinned codex binary`,
	"runtime_info_help":        `show the pinned codex runtime state`,
	"runtime_clean_help":       `remove codex binaries that don't match the pinned version`,
	"runtime_pin_help":         `pin a codex release and record its archive checksums`,
	"require_checksum_help":    `fail instead of warning when no checksum is pinned for this platform`,
	"pin_tag_help":             `release tag to pin. default is the latest release`,
	"pin_yes_help":             `pin without prompting for confirmation`,
	"github_token_help":        `github token used for release queries`,
	"agent_help":               `run compliance tasks through the pinned codex binary`,
	"agent_run_help":           `run a compliance task`,
	"agent_model_help":         `model to run the task with`,
	"agent_base_url_help":      `base url of the model api`,
	"agent_provider_help":      `model provider name written to the isolated config`,
	"agent_workdir_help":       `working directory for the agent. default is the current directory`,
	"agent_skill_help":         `skill guiding the task. one of ` + skillList(),
	"mcp_help":                 `manage mcp servers available to the agent`,
	"mcp_list_help":            `list configured mcp servers`,
	"mcp_add_help":             `add an mcp server to the global config`,
	"install_completions_help": `install shell completions`,
}

type rootCmd struct {
	Root  string `kong:"type=path,help=${root_help},env='PRETORIN_ROOT'"`
	Quiet bool   `kong:"short='q',help='suppress output to stdout'"`

	Runtime runtimeCmd `kong:"cmd,help=${runtime_help}"`
	Agent   agentCmd   `kong:"cmd,help=${agent_help}"`
	Mcp     mcpCmd     `kong:"cmd,name=mcp,help=${mcp_help}"`

	Version            versionCmd                   `kong:"cmd,help='show pretorin version'"`
	InstallCompletions kongplete.InstallCompletions `kong:"cmd,help=${install_completions_help}"`
}

// fileWriter covers terminal.FileWriter. Needed for survey
type fileWriter interface {
	io.Writer
	Fd() uintptr
}

type SimpleFileWriter struct {
	io.Writer
}

func (s SimpleFileWriter) Fd() uintptr {
	return 0
}

// fileReader covers terminal.FileReader. Needed for survey
type fileReader interface {
	io.Reader
	Fd() uintptr
}

type runContext struct {
	context.Context
	stdin   fileReader
	stdout  fileWriter
	stderr  fileWriter
	logger  *log.Logger
	rootCmd *rootCmd
}

// newRuntime builds the codex runtime from the root command's flags.
func (ctx *runContext) newRuntime(extra ...codex.Option) (*codex.Runtime, error) {
	opts := []codex.Option{codex.WithLogger(ctx.logger)}
	if ctx.rootCmd.Root != "" {
		opts = append(opts, codex.WithRoot(ctx.rootCmd.Root))
	}
	return codex.New(append(opts, extra...)...)
}

type runOpts struct {
	stdin       fileReader
	stdout      fileWriter
	stderr      fileWriter
	cmdName     string
	exitHandler func(int)
}

// Run let's light this candle
func Run(ctx context.Context, args []string, opts *runOpts) {
	if opts == nil {
		opts = &runOpts{}
	}
	var root rootCmd
	runCtx := &runContext{Context: ctx}
	runCtx.rootCmd = &root
	runCtx.stdin = opts.stdin
	if runCtx.stdin == nil {
		runCtx.stdin = os.Stdin
	}
	runCtx.stdout = opts.stdout
	if runCtx.stdout == nil {
		runCtx.stdout = os.Stdout
	}
	runCtx.stderr = opts.stderr
	if runCtx.stderr == nil {
		runCtx.stderr = os.Stderr
	}
	runCtx.logger = log.New(runCtx.stderr)

	kongOptions := []kong.Option{
		kong.HelpOptions{Compact: true},
		kong.BindTo(runCtx, &runCtx),
		kongVars,
		kong.UsageOnError(),
		kong.Writers(runCtx.stdout, runCtx.stderr),
	}
	if opts.exitHandler != nil {
		kongOptions = append(kongOptions, kong.Exit(opts.exitHandler))
	}
	if opts.cmdName != "" {
		kongOptions = append(kongOptions, kong.Name(opts.cmdName))
	}

	parser := kong.Must(&root, kongOptions...)
	kongplete.Complete(parser,
		kongplete.WithPredictor("skill", skillCompleter),
	)

	kongCtx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	if err != nil {
		return
	}
	if root.Quiet {
		runCtx.stdout = SimpleFileWriter{io.Discard}
		kongCtx.Stdout = io.Discard
		runCtx.logger.SetLevel(log.WarnLevel)
	}
	err = kongCtx.Run()
	kongCtx.FatalIfErrorf(err)
}
