package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGlobalRoot(t *testing.T) {
	root, err := GlobalRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(root, filepath.Join(".claude", "skills")) {
		t.Errorf("GlobalRoot() = %q, want .claude/skills suffix", root)
	}
}

func TestLocalRoot(t *testing.T) {
	got := LocalRoot("/tmp/project")
	want := filepath.Join("/tmp/project", ".claude", "skills")
	if got != want {
		t.Errorf("LocalRoot() = %q, want %q", got, want)
	}
}

func TestConfigDir(t *testing.T) {
	if !strings.HasSuffix(ConfigDir(), AppName) {
		t.Errorf("ConfigDir() = %q, want %q suffix", ConfigDir(), AppName)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Second call is a no-op.
	if err := EnsureDir(dir, 0); err != nil {
		t.Errorf("EnsureDir should be idempotent: %v", err)
	}
}
