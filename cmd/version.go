// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PlusA2M/swiftcheck/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swiftcheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("v%s\n", version.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
