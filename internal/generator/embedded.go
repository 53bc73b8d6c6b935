package generator

import (
	"embed"
	"fmt"
	"io/fs"
)

// Default template root shipped with the binary. An external root given
// via --templates replaces it wholesale.
//
//go:embed all:templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the built-in template root: frameworks/<key>
// trees plus the base template file.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}
