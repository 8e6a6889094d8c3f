package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/pretorin/pretorin/internal/codex"
)

type agentCmd struct {
	Run agentRunCmd `kong:"cmd,help=${agent_run_help}"`
}

type agentRunCmd struct {
	Task     string `kong:"arg,required,help='compliance task for the agent'"`
	Model    string `kong:"default='gpt-5-codex',help=${agent_model_help}"`
	BaseURL  string `kong:"name=base-url,default='https://api.openai.com/v1',help=${agent_base_url_help}"`
	Provider string `kong:"default='pretorin',help=${agent_provider_help}"`
	WorkDir  string `kong:"name=workdir,type=existingdir,help=${agent_workdir_help}"`
	Skill    string `kong:"predictor=skill,help=${agent_skill_help}"`
}

func (c *agentRunCmd) Run(ctx *runContext) error {
	prompt, err := buildPrompt(c.Task, c.Skill)
	if err != nil {
		return err
	}
	apiKey, err := resolveAPIKey()
	if err != nil {
		return err
	}
	rt, err := ctx.newRuntime()
	if err != nil {
		return err
	}
	binary, err := rt.EnsureInstalled(ctx)
	if err != nil {
		return err
	}
	workDir := c.WorkDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	_, err = rt.WriteConfig(codex.ConfigParams{
		Model:        c.Model,
		ProviderName: c.Provider,
		BaseURL:      c.BaseURL,
		EnvKey:       "OPENAI_API_KEY",
		ProjectDir:   workDir,
	})
	if err != nil {
		return err
	}
	env := rt.BuildEnv(apiKey, c.BaseURL, nil)
	args := []string{"exec", "--model", c.Model, prompt}
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = workDir
	cmd.Env = codex.EnvironList(env)
	cmd.Stdin = ctx.stdin
	cmd.Stdout = ctx.stdout
	cmd.Stderr = ctx.stderr
	return cmd.Run()
}

// resolveAPIKey resolves the model API key: PRETORIN_LLM_API_KEY wins over
// OPENAI_API_KEY.
func resolveAPIKey() (string, error) {
	for _, name := range []string{"PRETORIN_LLM_API_KEY", "OPENAI_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("no api key found. set PRETORIN_LLM_API_KEY or OPENAI_API_KEY")
}

const basePrompt = `You are a compliance-focused coding assistant operating through Pretorin.
You have access to Pretorin MCP tools for querying frameworks, controls, evidence, and narratives.

Rules:
1. Use Pretorin MCP tools to get authoritative compliance data.
2. Reference framework/control IDs explicitly (e.g., AC-02, SC-07).
3. Use zero-padded control IDs (ac-02 not ac-2).
4. Return actionable output with evidence gaps and next steps.

`

// skillPrompts guide the agent toward a specific compliance workflow.
var skillPrompts = map[string]string{
	"gap-analysis": "You are a compliance gap analysis expert. List the systems and their frameworks, " +
		"check compliance status for each, identify controls that are missing or partial, " +
		"prioritize gaps by risk, and recommend how to close each one.",
	"narrative-generation": "You are a compliance documentation specialist. Review existing evidence " +
		"and implementation details, then generate narratives that explain HOW each control is " +
		"implemented, not just what it requires, and push them to the platform.",
	"evidence-collection": "You are a compliance evidence collection specialist. Analyze the codebase " +
		"and infrastructure for configurations, code, and documentation that serve as evidence, " +
		"create evidence items, and link them to the most relevant controls.",
	"security-review": "You are a security review specialist. Review the codebase for security-relevant " +
		"implementations, map findings to framework controls, and record notable findings on the platform.",
}

func buildPrompt(task, skill string) (string, error) {
	prompt := basePrompt
	if skill != "" {
		skillPrompt, ok := skillPrompts[skill]
		if !ok {
			return "", fmt.Errorf("unknown skill %q. available skills: %s", skill, skillList())
		}
		prompt += "Skill: " + skill + "\n" + skillPrompt + "\n\n"
	}
	return prompt + "Task:\n" + task, nil
}

func skillList() string {
	names := make([]string, 0, len(skillPrompts))
	for name := range skillPrompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
