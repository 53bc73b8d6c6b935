package generator

import "errors"

// Sentinel errors for generation operations.
var (
	// ErrTemplateNotFound indicates a framework subtree or base template
	// file is absent. Callers treat this as recoverable (fallback/warning),
	// never fatal.
	ErrTemplateNotFound = errors.New("generator: template not found")

	// ErrPathTraversal indicates a template path would escape the output
	// directory.
	ErrPathTraversal = errors.New("generator: template path escapes output root")
)
