package generator

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestCreateDirectoryStructure(t *testing.T) {
	newGen := func() *Generator { return New(fstest.MapFS{}) }

	t.Run("python_skeleton_with_markers", func(t *testing.T) {
		g := newGen()
		out := t.TempDir()

		dirs, err := g.CreateDirectoryStructure(out, "Python")
		if err != nil {
			t.Fatalf("CreateDirectoryStructure error: %v", err)
		}
		if len(dirs) != 8 {
			t.Errorf("created %d dirs, want 8: %v", len(dirs), dirs)
		}
		for _, dir := range dirs {
			marker := filepath.Join(out, filepath.FromSlash(dir), "__init__.py")
			info, err := os.Stat(marker)
			if err != nil {
				t.Errorf("marker missing in %s: %v", dir, err)
				continue
			}
			if info.Size() != 0 {
				t.Errorf("marker %s not empty: %d bytes", marker, info.Size())
			}
		}
	})

	t.Run("typescript_skeleton_no_markers", func(t *testing.T) {
		g := newGen()
		out := t.TempDir()

		dirs, err := g.CreateDirectoryStructure(out, "TypeScript")
		if err != nil {
			t.Fatalf("CreateDirectoryStructure error: %v", err)
		}
		if len(dirs) != 7 {
			t.Errorf("created %d dirs, want 7: %v", len(dirs), dirs)
		}
		if _, err := os.Stat(filepath.Join(out, "src", "types")); err != nil {
			t.Errorf("src/types missing: %v", err)
		}
		if _, err := os.Stat(filepath.Join(out, "src", "services", "__init__.py")); !os.IsNotExist(err) {
			t.Errorf("unexpected marker for TypeScript, stat err = %v", err)
		}
	})

	t.Run("generic_fallback", func(t *testing.T) {
		g := newGen()
		out := t.TempDir()

		dirs, err := g.CreateDirectoryStructure(out, "Rust")
		if err != nil {
			t.Fatalf("CreateDirectoryStructure error: %v", err)
		}
		want := []string{"src/services", "src/config", "tests/services", "tests/config"}
		if len(dirs) != len(want) {
			t.Fatalf("dirs = %v, want %v", dirs, want)
		}
		for i := range want {
			if dirs[i] != want[i] {
				t.Errorf("dirs[%d] = %q, want %q", i, dirs[i], want[i])
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		g := newGen()
		out := t.TempDir()

		first, err := g.CreateDirectoryStructure(out, "Python")
		if err != nil {
			t.Fatalf("first run error: %v", err)
		}
		second, err := g.CreateDirectoryStructure(out, "Python")
		if err != nil {
			t.Fatalf("second run error: %v", err)
		}
		if len(first) != len(second) {
			t.Errorf("runs differ: %v vs %v", first, second)
		}
	})
}
