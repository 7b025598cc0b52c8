package lint

// Rule describes one manual check for display purposes.
type Rule struct {
	ID      string
	Summary string
}

// Rules returns the manual checks in the order Run applies them.
func Rules() []Rule {
	return []Rule{
		{"manifest-exists", "SKILL.md exists at the repository root (gates all other checks)"},
		{"line-budget", "SKILL.md stays within the line budget (500 by default)"},
		{"deprecated-roles-path", "no references to the old utilities/common-roles/ location"},
		{"name-match", "frontmatter name matches the repository folder name"},
		{"roles-dir", "the common-roles/ directory exists"},
		{"listed-roles", "every role under '### Available Roles' has a common-roles/<role>.md file"},
		{"references", "every backtick-quoted references/ path exists (each checked once)"},
		{"delegate-doc", "if delegate.how-to.md is mentioned, the file exists"},
	}
}
