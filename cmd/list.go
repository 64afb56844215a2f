package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PlusA2M/swiftcheck/internal/syntax"
)

var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "Print the effective file list",
	Long: `Print the file list a check would scan, after glob expansion and ignore
patterns, one path per line. Useful for debugging files.paths configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := args
		if len(paths) == 0 {
			paths = cfg.Files.Paths
		}

		expanded, err := syntax.ExpandPaths(cfg, paths)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}

		for _, path := range expanded {
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
