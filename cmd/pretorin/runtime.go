package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/pretorin/pretorin/internal/codex"
	"github.com/pretorin/pretorin/internal/release"
)

type runtimeCmd struct {
	Install runtimeInstallCmd `kong:"cmd,help=${runtime_install_help}"`
	Info    runtimeInfoCmd    `kong:"cmd,help=${runtime_info_help}"`
	Clean   runtimeCleanCmd   `kong:"cmd,help=${runtime_clean_help}"`
	Pin     runtimePinCmd     `kong:"cmd,help=${runtime_pin_help}"`
}

type runtimeInstallCmd struct {
	RequireChecksum bool `kong:"name=require-checksum,help=${require_checksum_help}"`
}

func (c *runtimeInstallCmd) Run(ctx *runContext) error {
	var extra []codex.Option
	if c.RequireChecksum {
		extra = append(extra, codex.WithRequireChecksum())
	}
	rt, err := ctx.newRuntime(extra...)
	if err != nil {
		return err
	}
	path, err := rt.EnsureInstalled(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.stdout, path)
	return nil
}

type runtimeInfoCmd struct{}

func (c *runtimeInfoCmd) Run(ctx *runContext) error {
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	platform, err := codex.DetectPlatform()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.stdout, "version:   %s\n", rt.Version())
	fmt.Fprintf(ctx.stdout, "platform:  %s (%s)\n", platform, platform.Target())
	fmt.Fprintf(ctx.stdout, "binary:    %s\n", rt.BinaryPath())
	fmt.Fprintf(ctx.stdout, "installed: %v\n", rt.Installed())
	return nil
}

type runtimeCleanCmd struct{}

func (c *runtimeCleanCmd) Run(ctx *runContext) error {
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	removed, err := rt.CleanOldVersions()
	if err != nil {
		return err
	}
	for _, path := range removed {
		fmt.Fprintln(ctx.stdout, path)
	}
	return nil
}

type runtimePinCmd struct {
	Tag         string `kong:"help=${pin_tag_help}"`
	Yes         bool   `kong:"short='y',help=${pin_yes_help}"`
	GithubToken string `kong:"name=github-token,env='GITHUB_TOKEN',help=${github_token_help}"`
}

func (c *runtimePinCmd) Run(ctx *runContext) error {
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	info, err := release.Query(ctx, rt.Version(), c.Tag, c.GithubToken)
	if err != nil {
		return err
	}
	if info.Tag == rt.Version() {
		fmt.Fprintf(ctx.stdout, "already pinned to %s\n", info.Tag)
		return nil
	}
	if !info.Behind {
		ctx.logger.Warn("pinned version is not older than the requested release", "pinned", rt.Version(), "tag", info.Tag)
	}
	if !c.Yes {
		var confirmed bool
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Pin codex %s and record its checksums?", info.Tag),
		}
		err = survey.AskOne(prompt, &confirmed, survey.WithStdio(ctx.stdin, ctx.stdout, ctx.stderr))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}
	checksums, err := release.ComputeChecksums(ctx, info.Tag)
	if err != nil {
		return err
	}
	err = codex.WritePinState(rt.Root(), &codex.PinState{
		Version:   info.Tag,
		Checksums: checksums,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.stdout, "pinned codex %s\n", info.Tag)
	return nil
}
