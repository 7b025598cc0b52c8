package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kgale/skillvet/internal/skill"
	"github.com/kgale/skillvet/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:     "info [root]",
	Aliases: []string{"show"},
	Short:   "Show manifest metadata for a skill repository",
	Long: `Print the parsed SKILL.md frontmatter and some quick facts about
the repository, without validating it.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	root := resolveRoot(args)

	manifest := filepath.Join(root, skill.ManifestFilename)
	data, err := os.ReadFile(manifest)
	if err != nil {
		exitWithError(fmt.Sprintf("cannot read %s: %v", manifest, err))
	}

	meta, _, err := skill.DecodeMetadata(data)
	if err != nil {
		exitWithError(err.Error())
	}

	name := meta.Name
	if name == "" {
		name = filepath.Base(root)
	}

	fmt.Println(ui.Render(ui.Title, name))
	fmt.Println()

	if meta.Description != "" {
		fmt.Println(meta.Description)
		fmt.Println()
	}

	fmt.Println(ui.Render(ui.Subtitle, "Details"))
	fmt.Println(ui.Divider(40))

	if meta.Author != "" {
		fmt.Printf("  Author:   %s\n", meta.Author)
	}
	if meta.Version != "" {
		fmt.Printf("  Version:  %s\n", meta.Version)
	}
	fmt.Printf("  Path:     %s\n", manifest)
	fmt.Printf("  Lines:    %d\n", len(skill.SplitLines(string(data))))

	rolesDir := filepath.Join(root, skill.RolesDirName)
	if entries, err := os.ReadDir(rolesDir); err == nil {
		fmt.Printf("  Roles:    %d in %s/\n", len(entries), skill.RolesDirName)
	} else {
		fmt.Printf("  Roles:    %s\n", ui.Render(ui.Warning, "no "+skill.RolesDirName+"/ directory"))
	}
}
