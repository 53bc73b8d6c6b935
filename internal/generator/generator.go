// Package generator implements the project scaffolding pipeline: resolving
// a framework descriptor plus user metadata into a ProjectConfig, copying a
// framework template tree with token substitution, falling back to the base
// template, creating the language directory skeleton, and synthesizing a
// README.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/projstack/projgen/internal/ui"
)

const (
	// frameworksDir is the subdirectory of the template root holding one
	// template tree per framework key.
	frameworksDir = "frameworks"

	// baseTemplateName is the single fallback template at the template root.
	baseTemplateName = "COPILOT_INSTRUCTIONS.template.md"

	// baseOutputName is the artifact generated from the base template.
	baseOutputName = "COPILOT_INSTRUCTIONS.md"
)

// Generator orchestrates project generation. The template root is an fs.FS
// (embedded in production, os.DirFS for --templates, fstest.MapFS in
// tests); output always goes through the os filesystem.
type Generator struct {
	templates fs.FS
	notifier  ui.Notifier
	prompter  ui.Prompter
	progress  ui.Progress
	defaults  PromptDefaults
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithNotifier sets the notification sink.
func WithNotifier(n ui.Notifier) Option {
	return func(g *Generator) { g.notifier = n }
}

// WithPrompter sets the interactive input source.
func WithPrompter(p ui.Prompter) Option {
	return func(g *Generator) { g.prompter = p }
}

// WithProgress sets the progress reporter used during template copy.
func WithProgress(p ui.Progress) Option {
	return func(g *Generator) { g.progress = p }
}

// WithPromptDefaults sets fallback answers for the metadata prompts.
func WithPromptDefaults(d PromptDefaults) Option {
	return func(g *Generator) { g.defaults = d }
}

// WithClock overrides the time source for the date tokens. Tests use this
// to make {{GENERATION_DATE}} and {{YEAR}} deterministic.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator over the given template root. Without options it
// is silent, non-interactive (all prompts answer with defaults), and uses
// the wall clock.
func New(templates fs.FS, opts ...Option) *Generator {
	g := &Generator{
		templates: templates,
		notifier:  ui.NewSilentNotifier(),
		prompter:  &ui.ScriptedPrompter{},
		progress:  ui.NopProgress(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Options controls a single Generate run.
type Options struct {
	// OutputDir is the directory the project is written into.
	OutputDir string
	// Framework is the registry key, or empty for interactive selection.
	Framework string
	// ProjectName overrides the default "my-<key>-project" name.
	ProjectName string
	// BaseOnly skips the framework template tree and generates from the
	// base template only.
	BaseOnly bool
	// SkipConfirm suppresses the non-empty-output confirmation prompt.
	SkipConfirm bool
}

// Result describes what a Generate run wrote.
type Result struct {
	Config           *ProjectConfig
	OutputDir        string
	Files            []string // relative paths, in write order
	Dirs             []string // skeleton directories
	UsedBaseTemplate bool
}

// Generate runs the full pipeline in contract order: resolve config,
// confirm overwrite of a non-empty output directory, copy the framework
// template (or the base template), create the directory skeleton, and
// write the README. A declined confirmation aborts with ui.ErrCancelled
// before anything is written. The overwrite check is a pre-check, not a
// transaction: concurrent modification of the output directory between
// check and write is not defended against.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	g.notifier.Header("Project Template Generator")

	cfg, err := g.ResolveConfig(ctx, opts.Framework, opts.ProjectName)
	if err != nil {
		return nil, err
	}

	g.notifier.Info(fmt.Sprintf("Generating %s project...", cfg.Framework.DisplayName))
	g.notifier.Info("Output directory: " + opts.OutputDir)

	if !opts.SkipConfirm {
		if err := g.confirmOverwrite(opts.OutputDir); err != nil {
			return nil, err
		}
	}

	result := &Result{Config: cfg, OutputDir: opts.OutputDir}

	if opts.BaseOnly {
		written, err := g.GenerateFromBaseTemplate(cfg, opts.OutputDir)
		if err != nil {
			return nil, err
		}
		if written != "" {
			result.Files = append(result.Files, written)
			result.UsedBaseTemplate = true
		}
	} else {
		copied, err := g.CopyFrameworkTemplate(ctx, cfg, opts.OutputDir)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, copied...)

		if len(copied) == 0 {
			g.notifier.Info("No framework template found, using base template")
			written, err := g.GenerateFromBaseTemplate(cfg, opts.OutputDir)
			if err != nil {
				return nil, err
			}
			if written != "" {
				result.Files = append(result.Files, written)
				result.UsedBaseTemplate = true
			}
		}
	}

	dirs, err := g.CreateDirectoryStructure(opts.OutputDir, cfg.Framework.Language)
	if err != nil {
		return nil, err
	}
	result.Dirs = dirs

	if err := g.GenerateReadme(cfg, opts.OutputDir); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, readmeFileName)

	g.notifier.Header("Project Generation Complete!")
	g.notifier.Success("Project created at: " + opts.OutputDir)
	return result, nil
}

// confirmOverwrite prompts before writing into a non-empty directory.
// A missing or empty directory passes silently.
func (g *Generator) confirmOverwrite(outputDir string) error {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("inspect output directory %q: %w", outputDir, err)
	}
	if len(entries) == 0 {
		return nil
	}

	ok, err := g.prompter.Confirm("overwrite",
		fmt.Sprintf("Directory %s is not empty. Continue?", outputDir), false)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("generation cancelled: %w", ui.ErrCancelled)
	}
	return nil
}

// CopyFrameworkTemplate copies every regular file under the framework's
// template subtree into outputDir, substituting tokens in each file's
// content. Walk order is lexical, so the returned write order is
// deterministic. A missing subtree returns an empty list and a warning;
// the caller falls back to the base template.
func (g *Generator) CopyFrameworkTemplate(ctx context.Context, cfg *ProjectConfig, outputDir string) ([]string, error) {
	root := path.Join(frameworksDir, cfg.Framework.Key)

	if _, err := fs.Stat(g.templates, root); err != nil {
		g.notifier.Warn("Framework template not found: " + root)
		return nil, nil
	}

	sub, err := fs.Sub(g.templates, root)
	if err != nil {
		return nil, fmt.Errorf("open framework template %q: %w", root, err)
	}

	total := countFiles(sub)
	bar := g.progress.Start("Copying "+cfg.Framework.Key+" template", total)
	defer bar.Done()

	var copied []string
	walkErr := fs.WalkDir(sub, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Abort cleanly between files on interruption. Files already
		// written stay; generation is not atomic.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if p == "." || entry.IsDir() {
			return nil
		}

		if err := validateOutputPath(outputDir, p); err != nil {
			return err
		}

		raw, err := fs.ReadFile(sub, p)
		if err != nil {
			return fmt.Errorf("read template %q: %w", p, err)
		}

		content := g.Substitute(string(raw), cfg)

		dest := filepath.Join(outputDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create directory for %q: %w", p, err)
		}

		perm := fs.FileMode(0o644)
		if strings.HasSuffix(p, ".sh") {
			perm = 0o755
		}
		if err := os.WriteFile(dest, []byte(content), perm); err != nil {
			return fmt.Errorf("write %q: %w", dest, err)
		}

		copied = append(copied, p)
		bar.SetTitle(p)
		bar.Increment(1)
		g.notifier.Success("Created: " + p)
		return nil
	})
	if walkErr != nil {
		return copied, walkErr
	}

	return copied, nil
}

// GenerateFromBaseTemplate substitutes the base template and writes it to
// outputDir/COPILOT_INSTRUCTIONS.md, returning the written relative path.
// A missing base template returns "" and a warning, not an error.
func (g *Generator) GenerateFromBaseTemplate(cfg *ProjectConfig, outputDir string) (string, error) {
	content, err := g.renderBaseTemplate(cfg)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			g.notifier.Warn("Base template not found: " + baseTemplateName)
			return "", nil
		}
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", outputDir, err)
	}
	dest := filepath.Join(outputDir, baseOutputName)
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", baseOutputName, err)
	}

	g.notifier.Success("Generated: " + baseOutputName)
	return baseOutputName, nil
}

// PreviewBaseTemplate returns the substituted base template content
// without writing anything.
func (g *Generator) PreviewBaseTemplate(cfg *ProjectConfig) (string, error) {
	return g.renderBaseTemplate(cfg)
}

func (g *Generator) renderBaseTemplate(cfg *ProjectConfig) (string, error) {
	raw, err := fs.ReadFile(g.templates, baseTemplateName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, baseTemplateName)
		}
		return "", fmt.Errorf("read base template: %w", err)
	}
	return g.Substitute(string(raw), cfg), nil
}

// countFiles returns the number of regular files under fsys.
func countFiles(fsys fs.FS) int {
	total := 0
	_ = fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p != "." && !entry.IsDir() {
			total++
		}
		return nil
	})
	return total
}

// validateOutputPath ensures a template-relative path cannot escape the
// output directory.
func validateOutputPath(outputDir, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	absPath := filepath.Join(absOut, cleaned)
	if absPath != absOut && !strings.HasPrefix(absPath, absOut+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrPathTraversal, relPath)
	}
	return nil
}
