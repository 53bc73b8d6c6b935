// Package config loads the optional projgen defaults file. The file only
// pre-fills prompt answers and the output directory; the framework registry
// itself is compile-time fixed and never configured.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultsFileName is the per-user or per-directory defaults file.
const DefaultsFileName = ".projgen.yaml"

// Sentinel errors for defaults loading.
var (
	// ErrInvalidYAML indicates invalid YAML syntax in the defaults file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// Defaults carries optional fallback answers for generation prompts.
// Zero values mean "use the built-in default".
type Defaults struct {
	Output            string `yaml:"output"`
	Author            string `yaml:"author"`
	GitLabURL         string `yaml:"gitlab_url"`
	CoverageThreshold int    `yaml:"coverage_threshold"`
}

// Threshold returns the coverage threshold as the string the token table
// needs, or "" when unset.
func (d *Defaults) Threshold() string {
	if d.CoverageThreshold <= 0 {
		return ""
	}
	return strconv.Itoa(d.CoverageThreshold)
}

// LoadDefaults reads DefaultsFileName from dir. A missing file returns
// zero Defaults; an unreadable or invalid file is logged as a warning and
// also returns zero Defaults. A bad defaults file must never block
// generation.
func LoadDefaults(dir string) *Defaults {
	d := &Defaults{}
	path := filepath.Join(filepath.Clean(dir), DefaultsFileName)

	loaded, err := loadYAMLFile(path, d)
	if err != nil {
		slog.Warn("failed to load defaults file, using built-in defaults",
			"path", path, "error", err)
		return &Defaults{}
	}
	if loaded {
		slog.Debug("loaded defaults file", "path", path)
	}
	return d
}

// loadYAMLFile reads a YAML file into target. Returns (true, nil) when the
// file was found and parsed, (false, nil) when it does not exist, or
// (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML)
	}
	return true, nil
}
