package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/projstack/projgen/internal/registry"
)

// readmeFileName is the README artifact written into the output directory.
const readmeFileName = "README.md"

// readmeTemplate is the synthesized project README. It is a Go template
// over readmeData, parsed in strict mode so a missing field is a bug, not
// silent output corruption.
const readmeTemplate = `# {{.ProjectName}}

{{.Description}}

## Stack

- **Language**: {{.Language}} {{.LanguageVersion}}
- **Framework**: {{.Framework}}
- **Package Manager**: {{.PackageManager}}
- **Testing**: {{.TestFramework}} + {{.CoverageTool}}
- **CI/CD**: GitLab CI/CD

## Getting Started

### Prerequisites

- {{.Language}} {{.LanguageVersion}}
- {{.PackageManager}}
- Docker

### Installation

` + "```bash" + `
# Install dependencies
{{.InstallCommand}}

# Run tests
{{.TestCommand}}

# Run application
{{.RunCommand}}
` + "```" + `

## Project Structure

` + "```" + `
{{.StructureDiagram}}
` + "```" + `

## Development

See ` + "`COPILOT_INSTRUCTIONS.md`" + ` for detailed coding standards and guidelines.

## Testing

- Minimum coverage: {{.CoverageThreshold}}%
- All code must have corresponding tests

## CI/CD

Pipeline stages: ` + "`lint` → `test` → `build` → `deploy`" + `

See ` + "`.gitlab-ci.yml`" + ` for details.

## Author

{{.Author}}

## Generated

This project was generated on {{.GenerationDate}} using projgen.
`

// readmeData is the interpolation context for readmeTemplate.
type readmeData struct {
	ProjectName       string
	Description       string
	Language          string
	LanguageVersion   string
	Framework         string
	PackageManager    string
	TestFramework     string
	CoverageTool      string
	InstallCommand    string
	TestCommand       string
	RunCommand        string
	StructureDiagram  string
	CoverageThreshold string
	Author            string
	GenerationDate    string
}

// installCommand maps a package manager to its install invocation.
// The tables here are exhaustive over the registry; unmatched values fall
// back to a placeholder comment.
func installCommand(fw registry.Config) string {
	switch fw.PackageManager {
	case "Poetry":
		return "poetry install"
	case "npm/yarn":
		return "npm install  # or: yarn install"
	}
	return "# Install dependencies"
}

// testCommand maps a test framework to its run invocation.
func testCommand(fw registry.Config) string {
	switch fw.TestFramework {
	case "pytest":
		return "poetry run pytest --cov=src"
	case "Jest":
		return "npm test  # or: yarn test"
	case "Behave + pytest":
		return "poetry run behave && poetry run pytest"
	}
	return "# Run tests"
}

// runCommand maps a framework to its application start invocation.
func runCommand(fw registry.Config) string {
	switch fw.Framework {
	case "FastAPI":
		return "poetry run uvicorn src.main:app --reload"
	case "Express":
		return "npm start  # or: yarn start"
	case "Behave":
		return "poetry run python src/main.py"
	}
	return "# Run application"
}

// structureDiagram returns the project-structure block for a language
// family. Three fixed variants: Python, TypeScript, generic.
func structureDiagram(language string) string {
	switch language {
	case "Python":
		return `src/
├── services/     # Business logic
├── config/       # Configuration
├── operations/   # Complex operations
├── utilities/    # Helper functions
└── main.py       # Entry point

tests/
├── services/     # Service tests
└── test_*.py     # Other tests`
	case "TypeScript":
		return `src/
├── services/     # Business logic
├── config/       # Configuration
├── utils/        # Utilities
├── types/        # Type definitions
└── index.ts      # Entry point

tests/
├── services/     # Service tests
└── *.test.ts     # Test files`
	}
	return `src/
└── main.*        # Entry point

tests/
└── test_*.*      # Tests`
}

// RenderReadme synthesizes the README content for the resolved config.
func (g *Generator) RenderReadme(cfg *ProjectConfig) (string, error) {
	fw := cfg.Framework
	data := readmeData{
		ProjectName:       cfg.ProjectName,
		Description:       cfg.Description,
		Language:          fw.Language,
		LanguageVersion:   fw.LanguageVersion,
		Framework:         fw.Framework,
		PackageManager:    fw.PackageManager,
		TestFramework:     fw.TestFramework,
		CoverageTool:      fw.CoverageTool,
		InstallCommand:    installCommand(fw),
		TestCommand:       testCommand(fw),
		RunCommand:        runCommand(fw),
		StructureDiagram:  structureDiagram(fw.Language),
		CoverageThreshold: cfg.CoverageThreshold,
		Author:            cfg.Author,
		GenerationDate:    g.now().Format("2006-01-02"),
	}

	tmpl, err := template.New("readme").Option("missingkey=error").Parse(readmeTemplate)
	if err != nil {
		return "", fmt.Errorf("readme template parse: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("readme template execute: %w", err)
	}
	return buf.String(), nil
}

// GenerateReadme writes the synthesized README.md into outputDir.
func (g *Generator) GenerateReadme(cfg *ProjectConfig, outputDir string) error {
	content, err := g.RenderReadme(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", outputDir, err)
	}
	path := filepath.Join(outputDir, readmeFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", readmeFileName, err)
	}

	g.notifier.Success("Generated: " + readmeFileName)
	return nil
}
