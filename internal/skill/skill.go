// Package skill defines the on-disk layout of an agent skill repository
// and parsing for its SKILL.md manifest.
package skill

// File and directory name constants for a skill repository.
// Centralizing these prevents typos and makes refactoring easier.
const (
	// ManifestFilename is the manifest every skill repository carries
	ManifestFilename = "SKILL.md"

	// RolesDirName is the companion directory holding role definitions
	RolesDirName = "common-roles"

	// DeprecatedRolesPath is the pre-rename location of the roles directory.
	// Manifests must not reference it anymore.
	DeprecatedRolesPath = "utilities/common-roles"

	// RolesHeading opens the manifest section that lists available roles
	RolesHeading = "### Available Roles"

	// RefsPrefix marks backtick-quoted paths that must exist on disk
	RefsPrefix = "references/"

	// DelegateDoc is an optional companion document; a manifest that
	// mentions it must ship it
	DelegateDoc = "delegate.how-to.md"

	// MaxManifestLines is the default line budget for the manifest
	MaxManifestLines = 500
)

// Metadata is the typed view of the manifest frontmatter.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version,omitempty"`
	Author      string `yaml:"author,omitempty"`
}
