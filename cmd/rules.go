package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kgale/skillvet/internal/lint"
	"github.com/kgale/skillvet/internal/ui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the manual lint checks",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println(ui.SectionHeader("Manual checks"))
		fmt.Println()
		for _, rule := range lint.Rules() {
			fmt.Printf("  %s  %s\n",
				ui.Render(ui.Highlight, fmt.Sprintf("%-22s", rule.ID)),
				rule.Summary)
		}
		fmt.Println()
	},
}
