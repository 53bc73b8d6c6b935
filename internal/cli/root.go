// Package cli wires the projgen command surface: the root generate
// command, framework listing, and the preview subcommand.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/projstack/projgen/internal/config"
	"github.com/projstack/projgen/internal/generator"
	"github.com/projstack/projgen/internal/registry"
	"github.com/projstack/projgen/internal/ui"
	"github.com/projstack/projgen/pkg/version"
)

// defaultOutputDir matches the original generator convention of writing
// next to, not inside, the template checkout.
const defaultOutputDir = "../generated-project"

// newRootCmd builds the command tree. A fresh command per invocation keeps
// flag state isolated, which the cli tests rely on.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projgen",
		Short: "projgen: generate starter projects from framework templates",
		Long: `projgen scaffolds a new project from a framework template tree:
it copies the template files with placeholder substitution, creates the
language-specific directory skeleton, and synthesizes a README and
COPILOT_INSTRUCTIONS.md.

Run without flags for interactive framework selection, or pass
--framework for a scripted generation.`,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	cmd.SetVersionTemplate(fmt.Sprintf("projgen %s\n", version.GetVersion()))

	cmd.Flags().StringP("framework", "f", "", fmt.Sprintf("Framework to use (one of: %v)", registry.Keys()))
	cmd.Flags().StringP("name", "n", "", "Project name (default: my-{framework}-project)")
	cmd.Flags().StringP("output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().Bool("base-only", false, "Use only the base template (no framework-specific files)")
	cmd.Flags().BoolP("list", "l", false, "List available frameworks and exit")
	cmd.Flags().String("templates", "", "Template root directory (default: built-in templates)")
	cmd.Flags().BoolP("yes", "y", false, "Skip the non-empty output directory confirmation")
	cmd.Flags().Bool("non-interactive", false, "Answer every prompt with its default")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newPreviewCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// templatesFS resolves the template root: --templates wins, otherwise the
// embedded defaults ship with the binary.
func templatesFS(cmd *cobra.Command) (fs.FS, error) {
	if dir := getStringFlag(cmd, "templates"); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("template root %q: %w", dir, err)
		}
		return os.DirFS(dir), nil
	}
	return generator.EmbeddedTemplates()
}

// loadDefaults reads the defaults file from the working directory, falling
// back to the user's home directory.
func loadDefaults() *config.Defaults {
	if cwd, err := os.Getwd(); err == nil {
		if _, statErr := os.Stat(cwd + string(os.PathSeparator) + config.DefaultsFileName); statErr == nil {
			return config.LoadDefaults(cwd)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return config.LoadDefaults(home)
	}
	return &config.Defaults{}
}

func newTheme(cmd *cobra.Command) *ui.Theme {
	noColor := getBoolFlag(cmd, "no-color") ||
		!isatty.IsTerminal(os.Stdout.Fd())
	return ui.NewTheme(ui.ThemeConfig{NoColor: noColor, Mode: "dark"})
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if getBoolFlag(cmd, "list") {
		return runList(cmd)
	}

	theme := newTheme(cmd)
	out := cmd.OutOrStdout()

	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		hm.ForceHeadless(true)
	}

	tfs, err := templatesFS(cmd)
	if err != nil {
		return err
	}

	defaults := loadDefaults()
	outputDir := getStringFlag(cmd, "output")
	if !cmd.Flags().Changed("output") && defaults.Output != "" {
		outputDir = defaults.Output
	}

	gen := generator.New(tfs,
		generator.WithNotifier(ui.NewConsoleNotifier(theme, out)),
		generator.WithPrompter(ui.NewPrompter(theme, hm)),
		generator.WithProgress(ui.NewProgress(theme, hm, out)),
		generator.WithPromptDefaults(generator.PromptDefaults{
			Author:            defaults.Author,
			GitLabURL:         defaults.GitLabURL,
			CoverageThreshold: defaults.Threshold(),
		}),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := gen.Generate(ctx, generator.Options{
		OutputDir:   outputDir,
		Framework:   getStringFlag(cmd, "framework"),
		ProjectName: getStringFlag(cmd, "name"),
		BaseOnly:    getBoolFlag(cmd, "base-only"),
		SkipConfirm: getBoolFlag(cmd, "yes"),
	})
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), cliWarn.Render("Generation cancelled"))
		}
		return err
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Project", result.Config.ProjectName},
			{"Framework", result.Config.Framework.DisplayName},
			{"Files", fmt.Sprintf("%d written", len(result.Files))},
			{"Directories", fmt.Sprintf("%d created", len(result.Dirs))},
		}),
	}
	if result.UsedBaseTemplate {
		details = append(details, cliWarn.Render("Framework template unavailable; base template used"))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project generated", details...))

	_, _ = fmt.Fprintln(out, cliMuted.Render("\nNext steps:"))
	_, _ = fmt.Fprintf(out, "  1. cd %s\n", result.OutputDir)
	_, _ = fmt.Fprintln(out, "  2. Review COPILOT_INSTRUCTIONS.md")
	_, _ = fmt.Fprintln(out, "  3. Install dependencies and start coding")

	return nil
}

// runList prints the registry in registration order and exits 0.
func runList(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, cliPrimary.Bold(true).Render("Available Frameworks"))
	_, _ = fmt.Fprintln(out)
	for i, fw := range registry.All() {
		_, _ = fmt.Fprintf(out, "%d. %s (%s)\n", i+1, fw.DisplayName, fw.Key)
		_, _ = fmt.Fprintf(out, "   Language: %s %s\n", fw.Language, fw.LanguageVersion)
		_, _ = fmt.Fprintf(out, "   Testing: %s + %s\n", fw.TestFramework, fw.CoverageTool)
		_, _ = fmt.Fprintf(out, "   %s\n\n", cliMuted.Render(fw.Description))
	}
	return nil
}
