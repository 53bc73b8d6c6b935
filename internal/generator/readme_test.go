package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/projstack/projgen/internal/registry"
)

func renderFor(t *testing.T, key string) string {
	t.Helper()
	fw, err := registry.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", key, err)
	}
	g := New(fstest.MapFS{}, WithClock(testClock))
	content, err := g.RenderReadme(&ProjectConfig{
		Framework:         fw,
		ProjectName:       "demo",
		Author:            "Platform Team",
		Description:       "A demo service",
		CoverageThreshold: "80",
	})
	if err != nil {
		t.Fatalf("RenderReadme error: %v", err)
	}
	return content
}

func TestRenderReadme(t *testing.T) {
	t.Run("python_fastapi_commands", func(t *testing.T) {
		content := renderFor(t, "python-fastapi")

		for _, want := range []string{
			"# demo",
			"A demo service",
			"**Language**: Python 3.11.x",
			"poetry install",
			"poetry run pytest --cov=src",
			"poetry run uvicorn src.main:app --reload",
			"Minimum coverage: 80%",
			"generated on 2026-03-14",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("README missing %q", want)
			}
		}
		if !strings.Contains(content, "├── operations/") {
			t.Error("README missing Python structure diagram")
		}
	})

	t.Run("typescript_commands", func(t *testing.T) {
		content := renderFor(t, "typescript-nodejs")

		for _, want := range []string{
			"npm install  # or: yarn install",
			"npm test  # or: yarn test",
			"npm start  # or: yarn start",
			"└── index.ts      # Entry point",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("README missing %q", want)
			}
		}
	})

	t.Run("behave_commands", func(t *testing.T) {
		content := renderFor(t, "python-behave")

		if !strings.Contains(content, "poetry run behave && poetry run pytest") {
			t.Error("README missing behave test command")
		}
		if !strings.Contains(content, "poetry run python src/main.py") {
			t.Error("README missing behave run command")
		}
	})

	t.Run("no_leftover_template_actions", func(t *testing.T) {
		for _, key := range []string{"python-fastapi", "typescript-nodejs", "python-behave"} {
			content := renderFor(t, key)
			if strings.Contains(content, "{{") {
				t.Errorf("README for %s contains unexpanded directives", key)
			}
		}
	})
}

func TestCommandLookupFallbacks(t *testing.T) {
	unmatched := registry.Config{
		Key:            "go-gin",
		Language:       "Go",
		Framework:      "Gin",
		PackageManager: "go mod",
		TestFramework:  "go test",
	}

	if got := installCommand(unmatched); got != "# Install dependencies" {
		t.Errorf("installCommand = %q", got)
	}
	if got := testCommand(unmatched); got != "# Run tests" {
		t.Errorf("testCommand = %q", got)
	}
	if got := runCommand(unmatched); got != "# Run application" {
		t.Errorf("runCommand = %q", got)
	}
	if diagram := structureDiagram("Go"); !strings.Contains(diagram, "main.*") {
		t.Errorf("generic diagram = %q", diagram)
	}
}

func TestGenerateReadme(t *testing.T) {
	g := New(fstest.MapFS{}, WithClock(testClock))
	out := t.TempDir()

	if err := g.GenerateReadme(testConfig(t), out); err != nil {
		t.Fatalf("GenerateReadme error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "README.md"))
	if err != nil {
		t.Fatalf("read README.md: %v", err)
	}
	if !strings.Contains(string(data), "# demo") {
		t.Errorf("README.md content = %q", string(data))
	}
}
