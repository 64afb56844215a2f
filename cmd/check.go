package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PlusA2M/swiftcheck/internal/syntax"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Scan files for suspected syntax issues",
	Long: `Scan the configured file list (or the given paths) and report suspected
syntax issues. Exits with status 1 when any issue is found; missing files are
reported but do not affect the exit status on their own.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, err := syntax.NewChecker(cfg, os.Stdout)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		summary, err := checker.Check(args)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		if summary.TotalIssues > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
