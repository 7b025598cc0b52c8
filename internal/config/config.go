// Package config locates the skill repository root and loads optional
// per-repository overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kgale/skillvet/internal/skill"
)

// Filename is the optional per-repository config file.
const Filename = ".skillvet.yml"

// Config holds per-repository overrides for validation.
type Config struct {
	// Tool overrides the external validator command.
	Tool string `yaml:"tool,omitempty"`
	// MaxLines overrides the manifest line budget.
	MaxLines int `yaml:"max_lines,omitempty"`
}

// Load reads .skillvet.yml from root. A missing file yields the zero Config.
func Load(root string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(root, Filename))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", Filename, err)
	}
	return cfg, nil
}

// FindSkillRoot walks up from the current directory looking for the skill
// repository root. Empty string means no root was found.
func FindSkillRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findRootFrom(cwd)
}

// findRootFrom walks up from dir to the first directory containing
// SKILL.md. A .git directory also counts as the root, so that a repository
// missing its manifest still gets the missing-manifest finding.
func findRootFrom(dir string) string {
	for {
		if _, err := os.Stat(filepath.Join(dir, skill.ManifestFilename)); err == nil {
			return dir
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "" // reached filesystem root
		}
		dir = parent
	}
}
