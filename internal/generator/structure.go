package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// languageDirectories returns the fixed skeleton for a language family.
func languageDirectories(language string) []string {
	switch language {
	case "Python":
		return []string{
			"src/services",
			"src/config",
			"src/operations",
			"src/utilities",
			"tests/services",
			"tests/config",
			"tests/operations",
			"tests/utilities",
		}
	case "TypeScript":
		return []string{
			"src/services",
			"src/config",
			"src/utils",
			"src/types",
			"tests/services",
			"tests/config",
			"tests/utils",
		}
	default:
		return []string{
			"src/services",
			"src/config",
			"tests/services",
			"tests/config",
		}
	}
}

// CreateDirectoryStructure creates the per-language directory skeleton
// under outputDir. Pre-existing directories are not an error, so repeated
// runs are idempotent. Python directories additionally receive an empty
// __init__.py package marker.
func (g *Generator) CreateDirectoryStructure(outputDir, language string) ([]string, error) {
	dirs := languageDirectories(language)

	for _, dir := range dirs {
		full := filepath.Join(outputDir, filepath.FromSlash(dir))
		if err := os.MkdirAll(full, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %q: %w", dir, err)
		}

		if language == "Python" {
			marker := filepath.Join(full, "__init__.py")
			f, err := os.OpenFile(marker, os.O_WRONLY|os.O_CREATE, 0o644)
			if err != nil {
				return nil, fmt.Errorf("create package marker %q: %w", marker, err)
			}
			if err := f.Close(); err != nil {
				return nil, fmt.Errorf("close package marker %q: %w", marker, err)
			}
		}
	}

	g.notifier.Success("Created directory structure")
	return dirs, nil
}
