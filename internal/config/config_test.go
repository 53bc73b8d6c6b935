package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Run("missing_file_returns_zero_defaults", func(t *testing.T) {
		d := LoadDefaults(t.TempDir())
		if d.Author != "" || d.Output != "" || d.GitLabURL != "" || d.CoverageThreshold != 0 {
			t.Errorf("defaults not zero: %+v", d)
		}
	})

	t.Run("valid_file_parsed", func(t *testing.T) {
		dir := t.TempDir()
		content := "output: ../apps\nauthor: Platform Team\ngitlab_url: https://gitlab.example.com\ncoverage_threshold: 90\n"
		if err := os.WriteFile(filepath.Join(dir, DefaultsFileName), []byte(content), 0o644); err != nil {
			t.Fatalf("write defaults file: %v", err)
		}

		d := LoadDefaults(dir)
		if d.Output != "../apps" {
			t.Errorf("Output = %q", d.Output)
		}
		if d.Author != "Platform Team" {
			t.Errorf("Author = %q", d.Author)
		}
		if d.GitLabURL != "https://gitlab.example.com" {
			t.Errorf("GitLabURL = %q", d.GitLabURL)
		}
		if d.Threshold() != "90" {
			t.Errorf("Threshold() = %q", d.Threshold())
		}
	})

	t.Run("invalid_yaml_falls_back_to_zero", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultsFileName), []byte(":\n\t- broken"), 0o644); err != nil {
			t.Fatalf("write defaults file: %v", err)
		}

		d := LoadDefaults(dir)
		if d.Author != "" || d.CoverageThreshold != 0 {
			t.Errorf("expected zero defaults on invalid YAML, got %+v", d)
		}
	})

	t.Run("partial_file_keeps_missing_fields_zero", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultsFileName), []byte("author: Solo Dev\n"), 0o644); err != nil {
			t.Fatalf("write defaults file: %v", err)
		}

		d := LoadDefaults(dir)
		if d.Author != "Solo Dev" {
			t.Errorf("Author = %q", d.Author)
		}
		if d.Threshold() != "" {
			t.Errorf("Threshold() = %q, want empty for unset", d.Threshold())
		}
	})
}
