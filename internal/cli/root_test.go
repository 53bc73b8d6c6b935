package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projstack/projgen/internal/registry"
)

// execute runs a fresh root command with the given args, capturing output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListFlag(t *testing.T) {
	out, err := execute(t, "--list", "--no-color")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	for _, want := range []string{
		"Available Frameworks",
		"python-fastapi",
		"typescript-nodejs",
		"python-behave",
		"Behavior-driven development",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestUnknownFramework(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "proj")

	_, err := execute(t,
		"--framework", "ruby-rails",
		"--output", outDir,
		"--non-interactive", "--yes", "--no-color")
	if err == nil {
		t.Fatal("expected error for unknown framework")
	}
	if !errors.Is(err, registry.ErrUnknownFramework) {
		t.Errorf("expected ErrUnknownFramework, got: %v", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Errorf("output directory created despite failure, stat err = %v", statErr)
	}
}

func TestNonInteractiveGeneration(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "proj")

	out, err := execute(t,
		"--framework", "python-fastapi",
		"--output", outDir,
		"--non-interactive", "--yes", "--no-color")
	if err != nil {
		t.Fatalf("Execute error: %v\noutput:\n%s", err, out)
	}

	for _, rel := range []string{
		"README.md",
		"Dockerfile",
		".gitlab-ci.yml",
		"pyproject.toml",
		filepath.Join("src", "services", "__init__.py"),
	} {
		if _, statErr := os.Stat(filepath.Join(outDir, rel)); statErr != nil {
			t.Errorf("expected artifact %s: %v", rel, statErr)
		}
	}

	data, readErr := os.ReadFile(filepath.Join(outDir, "pyproject.toml"))
	if readErr != nil {
		t.Fatalf("read pyproject.toml: %v", readErr)
	}
	if !strings.Contains(string(data), `name = "my-python-fastapi-project"`) {
		t.Errorf("pyproject.toml not substituted:\n%s", data)
	}
	if !strings.Contains(out, "Project generated") {
		t.Errorf("missing success card in output:\n%s", out)
	}
}

func TestBaseOnlyGeneration(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "proj")

	_, err := execute(t,
		"--framework", "typescript-nodejs",
		"--name", "edge-api",
		"--output", outDir,
		"--base-only",
		"--non-interactive", "--yes", "--no-color")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(outDir, "COPILOT_INSTRUCTIONS.md")); statErr != nil {
		t.Errorf("COPILOT_INSTRUCTIONS.md missing: %v", statErr)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "package.json")); !os.IsNotExist(statErr) {
		t.Errorf("framework file written despite --base-only, stat err = %v", statErr)
	}

	data, readErr := os.ReadFile(filepath.Join(outDir, "COPILOT_INSTRUCTIONS.md"))
	if readErr != nil {
		t.Fatalf("read COPILOT_INSTRUCTIONS.md: %v", readErr)
	}
	if !strings.Contains(string(data), "edge-api") {
		t.Errorf("instructions not substituted:\n%s", data)
	}
}

func TestExternalTemplateRoot(t *testing.T) {
	templatesDir := t.TempDir()
	fwDir := filepath.Join(templatesDir, "frameworks", "python-fastapi", "conf")
	if err := os.MkdirAll(fwDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(fwDir, "app.ini"), []byte("name={{PROJECT_NAME}}\n"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	outDir := filepath.Join(t.TempDir(), "proj")
	_, err := execute(t,
		"--framework", "python-fastapi",
		"--name", "demo",
		"--output", outDir,
		"--templates", templatesDir,
		"--non-interactive", "--yes", "--no-color")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	data, readErr := os.ReadFile(filepath.Join(outDir, "conf", "app.ini"))
	if readErr != nil {
		t.Fatalf("read generated file: %v", readErr)
	}
	if string(data) != "name=demo\n" {
		t.Errorf("generated content = %q", string(data))
	}
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, "preview",
		"--framework", "python-fastapi",
		"--name", "preview-app",
		"--no-color")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(out, "preview-app") {
		t.Errorf("preview output missing project name:\n%s", out)
	}
	if strings.Contains(out, "{{PROJECT_NAME}}") {
		t.Errorf("preview output contains unsubstituted token:\n%s", out)
	}
}

func TestPreviewUnknownFramework(t *testing.T) {
	_, err := execute(t, "preview", "--framework", "nope", "--no-color")
	if !errors.Is(err, registry.ErrUnknownFramework) {
		t.Fatalf("expected ErrUnknownFramework, got: %v", err)
	}
}
