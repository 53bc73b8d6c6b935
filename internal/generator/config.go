package generator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/projstack/projgen/internal/registry"
)

// Built-in prompt defaults. A defaults file (.projgen.yaml) may override
// the author, GitLab URL, and coverage threshold.
const (
	DefaultAuthor            = "Your Team"
	DefaultCoverageThreshold = "80"
)

// ProjectConfig combines a chosen framework descriptor with user-supplied
// project metadata. It is built once per invocation and consumed
// immediately by the generation pipeline; nothing is persisted.
type ProjectConfig struct {
	Framework         registry.Config
	ProjectName       string
	Author            string
	Description       string
	GitLabURL         string
	CoverageThreshold string
}

// PromptDefaults carries fallback answers for the metadata prompts.
// Zero values resolve to the built-in defaults.
type PromptDefaults struct {
	Author            string
	GitLabURL         string
	CoverageThreshold string
}

// ResolveConfig builds a ProjectConfig from an optional framework key and
// project name. A supplied key that is not registered fails with
// registry.ErrUnknownFramework. Without a key, the user selects a
// framework from the numbered registry list; invalid entries re-prompt
// without limit. Every metadata prompt falls back to its documented
// default when the entered value is empty.
func (g *Generator) ResolveConfig(ctx context.Context, frameworkKey, projectName string) (*ProjectConfig, error) {
	var fw registry.Config
	if frameworkKey != "" {
		found, err := registry.Lookup(frameworkKey)
		if err != nil {
			return nil, err
		}
		fw = found
	} else {
		selected, err := g.selectFramework(ctx)
		if err != nil {
			return nil, err
		}
		fw = selected
	}

	if projectName == "" {
		name, err := g.askDefault(ctx, "project_name", "Project name", "my-"+fw.Key+"-project")
		if err != nil {
			return nil, err
		}
		projectName = name
	}

	author, err := g.askDefault(ctx, "author", "Author name", g.defaults.authorOrDefault())
	if err != nil {
		return nil, err
	}

	description, err := g.askDefault(ctx, "description", "Project description", "A "+fw.DisplayName+" project")
	if err != nil {
		return nil, err
	}

	gitlabURL, err := g.askDefault(ctx, "gitlab_url", "GitLab URL (optional)", g.defaults.GitLabURL)
	if err != nil {
		return nil, err
	}

	threshold, err := g.askDefault(ctx, "coverage_threshold", "Coverage threshold", g.defaults.thresholdOrDefault())
	if err != nil {
		return nil, err
	}

	return &ProjectConfig{
		Framework:         fw,
		ProjectName:       norm.NFC.String(projectName),
		Author:            norm.NFC.String(author),
		Description:       norm.NFC.String(description),
		GitLabURL:         strings.TrimSpace(gitlabURL),
		CoverageThreshold: threshold,
	}, nil
}

// selectFramework presents the numbered framework list and prompts until a
// valid 1-based index is entered. The loop has no iteration cap; headless
// and scripted prompters terminate it by answering with the default.
func (g *Generator) selectFramework(ctx context.Context) (registry.Config, error) {
	g.listFrameworks()

	all := registry.All()
	for {
		if err := ctx.Err(); err != nil {
			return registry.Config{}, err
		}

		choice, err := g.askDefault(ctx, "framework", fmt.Sprintf("Select framework (1-%d)", len(all)), "1")
		if err != nil {
			return registry.Config{}, err
		}

		index, err := strconv.Atoi(choice)
		if err != nil {
			g.notifier.Error("Please enter a valid number")
			continue
		}
		if index < 1 || index > len(all) {
			g.notifier.Error(fmt.Sprintf("Please enter a number between 1 and %d", len(all)))
			continue
		}

		fw := all[index-1]
		g.notifier.Success("Selected: " + fw.DisplayName)
		return fw, nil
	}
}

// listFrameworks prints the numbered registry listing through the notifier.
func (g *Generator) listFrameworks() {
	g.notifier.Header("Available Frameworks")
	for i, fw := range registry.All() {
		g.notifier.Info(fmt.Sprintf("%d. %s", i+1, fw.DisplayName))
		g.notifier.Info(fmt.Sprintf("   Language: %s %s", fw.Language, fw.LanguageVersion))
		g.notifier.Info(fmt.Sprintf("   Testing: %s + %s", fw.TestFramework, fw.CoverageTool))
		g.notifier.Info("   " + fw.Description)
	}
}

// askDefault prompts for a value and applies the default when the entered
// string is empty.
func (g *Generator) askDefault(ctx context.Context, id, title, defaultVal string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	value, err := g.prompter.Input(id, title, defaultVal)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultVal, nil
	}
	return value, nil
}

func (d PromptDefaults) authorOrDefault() string {
	if d.Author != "" {
		return d.Author
	}
	return DefaultAuthor
}

func (d PromptDefaults) thresholdOrDefault() string {
	if d.CoverageThreshold != "" {
		return d.CoverageThreshold
	}
	return DefaultCoverageThreshold
}
