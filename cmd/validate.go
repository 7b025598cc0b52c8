package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kgale/skillvet/internal/config"
	"github.com/kgale/skillvet/internal/lint"
	"github.com/kgale/skillvet/internal/refcheck"
	"github.com/kgale/skillvet/internal/ui"
)

var (
	validateTool     string
	validateSkipTool bool
)

var validateCmd = &cobra.Command{
	Use:     "validate [root]",
	Aliases: []string{"check"},
	Short:   "Validate a skill repository",
	Long: `Run the agentskills validator and the manual lint checks.

With no argument, the skill root is found by walking up from the
current directory. The run passes only if both the external validator
and the manual checks pass.

Examples:
  skillvet validate
  skillvet validate path/to/skill
  skillvet validate --skip-tool    # manual checks only`,
	Args: cobra.MaximumNArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateTool, "tool", "",
		"validator command (default \""+refcheck.DefaultCommand+"\")")
	validateCmd.Flags().BoolVar(&validateSkipTool, "skip-tool", false,
		"skip the external validator, run only the manual checks")
}

func runValidate(cmd *cobra.Command, args []string) {
	root := resolveRoot(args)

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(err.Error())
	}

	tool := validateTool
	if tool == "" {
		tool = cfg.Tool
	}

	var runner refcheck.Runner = refcheck.NewExecRunner(tool)
	if validateSkipTool {
		runner = refcheck.Skip{}
	}
	toolErr := runner.Validate(cmd.Context(), root)

	findings := lint.Linter{MaxLines: cfg.MaxLines}.Run(root)
	if len(findings) > 0 {
		fmt.Fprintln(os.Stderr, ui.RenderErr(ui.Error, "Manual lint failures:"))
		for _, finding := range findings {
			fmt.Fprintf(os.Stderr, "  - %s\n", finding)
		}
	}

	if toolErr != nil || len(findings) > 0 {
		os.Exit(1)
	}
	fmt.Println(ui.SuccessLine(filepath.Base(root) + " passed validation"))
}

// resolveRoot picks the repository root from the argument or by discovery.
func resolveRoot(args []string) string {
	if len(args) == 1 {
		root, err := filepath.Abs(args[0])
		if err != nil {
			exitWithError(err.Error())
		}
		return root
	}

	root := config.FindSkillRoot()
	if root == "" {
		exitWithError("no skill repository found; pass the root explicitly")
	}
	return root
}
