package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kgale/skillvet/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "skillvet",
	Short: "Lint agent skill repositories",
	Long: `Validate a skill repository's SKILL.md manifest.

Runs the agentskills validator plus a set of manual checks:
manifest size, naming, role listings, and referenced files.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("skillvet %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.RenderErr(ui.Error, "Error: "+msg))
	os.Exit(1)
}
