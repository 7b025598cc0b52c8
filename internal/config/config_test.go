package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	root := t.TempDir()
	content := "tool: my-validator\nmax_lines: 200\n"
	if err := os.WriteFile(filepath.Join(root, Filename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tool != "my-validator" {
		t.Errorf("Tool = %q, want my-validator", cfg.Tool)
	}
	if cfg.MaxLines != 200 {
		t.Errorf("MaxLines = %d, want 200", cfg.MaxLines)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, Filename), []byte("tool: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Error("Load() expected error for invalid yaml")
	}
}

func TestFindRootFrom(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (start string, want string)
	}{
		{
			name: "manifest in ancestor",
			setup: func(t *testing.T) (string, string) {
				root := t.TempDir()
				if err := os.WriteFile(filepath.Join(root, "SKILL.md"), []byte("# s\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				nested := filepath.Join(root, "a", "b")
				if err := os.MkdirAll(nested, 0o755); err != nil {
					t.Fatal(err)
				}
				return nested, root
			},
		},
		{
			name: "git root without manifest still found",
			setup: func(t *testing.T) (string, string) {
				root := t.TempDir()
				if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
					t.Fatal(err)
				}
				nested := filepath.Join(root, "docs")
				if err := os.MkdirAll(nested, 0o755); err != nil {
					t.Fatal(err)
				}
				return nested, root
			},
		},
		{
			name: "nothing found",
			setup: func(t *testing.T) (string, string) {
				return t.TempDir(), ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, want := tt.setup(t)
			if got := findRootFrom(start); got != want {
				t.Errorf("findRootFrom(%q) = %q, want %q", start, got, want)
			}
		})
	}
}
