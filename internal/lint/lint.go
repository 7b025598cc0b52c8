// Package lint applies the manual rule set to a skill repository. It scans
// the SKILL.md manifest and cross-references the files it mentions against
// the repository on disk.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kgale/skillvet/internal/skill"
)

var (
	backtickRe = regexp.MustCompile("`([^`]+)`")
	refRe      = regexp.MustCompile("`(" + skill.RefsPrefix + "[^`]+)`")
)

// Linter runs the manual checks against a skill repository root.
type Linter struct {
	// MaxLines overrides the manifest line budget when positive.
	MaxLines int
}

// Run checks the repository at root and returns one message per finding.
// An empty result means the repository passed. A missing manifest is the
// only gating failure: it is reported alone and nothing else runs.
func (l Linter) Run(root string) []string {
	var findings []string

	data, err := os.ReadFile(filepath.Join(root, skill.ManifestFilename))
	if err != nil {
		return []string{skill.ManifestFilename + " is missing."}
	}

	text := string(data)
	lines := skill.SplitLines(text)

	maxLines := l.MaxLines
	if maxLines <= 0 {
		maxLines = skill.MaxManifestLines
	}
	if len(lines) > maxLines {
		findings = append(findings, fmt.Sprintf("%s should be %d lines or fewer (found %d).",
			skill.ManifestFilename, maxLines, len(lines)))
	}

	if strings.Contains(text, skill.DeprecatedRolesPath) {
		findings = append(findings, fmt.Sprintf("%s references %s/, but the directory is %s/.",
			skill.ManifestFilename, skill.DeprecatedRolesPath, skill.RolesDirName))
	}

	header := skill.ParseHeader(text)
	if name := header["name"]; name != "" && name != filepath.Base(root) {
		findings = append(findings, fmt.Sprintf("Frontmatter name '%s' must match folder name '%s'.",
			name, filepath.Base(root)))
	}

	rolesDir := filepath.Join(root, skill.RolesDirName)
	if info, err := os.Stat(rolesDir); err != nil || !info.IsDir() {
		findings = append(findings, fmt.Sprintf("Missing %s/ directory.", skill.RolesDirName))
	}

	for _, role := range listedRoles(lines) {
		if !exists(filepath.Join(rolesDir, role+".md")) {
			findings = append(findings, fmt.Sprintf("Role listed in %s missing: %s/%s.md",
				skill.ManifestFilename, skill.RolesDirName, role))
		}
	}

	findings = append(findings, missingReferences(root, text)...)

	if strings.Contains(text, skill.DelegateDoc) && !exists(filepath.Join(root, skill.DelegateDoc)) {
		findings = append(findings, fmt.Sprintf("%s references %s, but the file does not exist.",
			skill.ManifestFilename, skill.DelegateDoc))
	}

	return findings
}

// listedRoles collects backtick-quoted tokens from the Available Roles
// section. The section ends at the next heading of the same level.
func listedRoles(lines []string) []string {
	var roles []string
	inSection := false
	for _, line := range lines {
		if strings.TrimSpace(line) == skill.RolesHeading {
			inSection = true
			continue
		}
		if inSection && strings.HasPrefix(line, "### ") {
			break
		}
		if inSection {
			for _, m := range backtickRe.FindAllStringSubmatch(line, -1) {
				roles = append(roles, m[1])
			}
		}
	}
	return roles
}

// missingReferences checks every distinct backtick-quoted references/ path
// against the repository. Repeated mentions of a path are checked once.
func missingReferences(root, text string) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, m := range refRe.FindAllStringSubmatch(text, -1) {
		ref := m[1]
		if seen[ref] {
			continue
		}
		seen[ref] = true
		if !exists(filepath.Join(root, ref)) {
			missing = append(missing, ref)
		}
	}
	sort.Strings(missing)

	findings := make([]string, 0, len(missing))
	for _, ref := range missing {
		findings = append(findings, "Referenced file not found: "+ref)
	}
	return findings
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
