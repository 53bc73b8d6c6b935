package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/projstack/projgen/internal/generator"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the substituted base template without writing files",
		Long: `Preview substitutes the base template for the given framework and
renders the result to the terminal as styled markdown. Nothing is written
to disk. Metadata prompts are answered with their defaults.

Example:
  projgen preview --framework python-fastapi --name my-api`,
		RunE: runPreview,
	}

	cmd.Flags().StringP("framework", "f", "", "Framework to preview")
	cmd.Flags().StringP("name", "n", "", "Project name used for substitution")
	cmd.Flags().String("templates", "", "Template root directory (default: built-in templates)")
	cmd.Flags().Bool("no-color", false, "Print raw markdown without terminal rendering")
	_ = cmd.MarkFlagRequired("framework")
	return cmd
}

func runPreview(cmd *cobra.Command, _ []string) error {
	tfs, err := templatesFS(cmd)
	if err != nil {
		return err
	}

	// All prompts resolve to defaults; preview never blocks on input.
	gen := generator.New(tfs)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := gen.ResolveConfig(ctx, getStringFlag(cmd, "framework"), getStringFlag(cmd, "name"))
	if err != nil {
		return err
	}

	content, err := gen.PreviewBaseTemplate(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := newTheme(cmd)
	if theme.NoColor {
		_, _ = fmt.Fprint(out, content)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
