// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PlusA2M/swiftcheck/internal/config"
	"github.com/PlusA2M/swiftcheck/version"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "swiftcheck",
	Short:   "Heuristic syntax validation for Swift source files",
	Version: version.Version(),
	Long: `swiftcheck scans a configured list of Swift source files for superficial
syntax anomalies: unbalanced braces, parentheses and brackets, dispatch calls
that look like they are missing an opening brace, and functions with empty
bodies. It flags suspected issues for human review; it does not parse Swift
and it does not fix anything.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .swiftcheck.yaml)")

	// Customize version template to show "v0.1.0" instead of "version 0.1.0"
	rootCmd.SetVersionTemplate("v{{.Version}}\n")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".swiftcheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("SWIFTCHECK")
	viper.AutomaticEnv()

	// Built-in defaults reproduce the original hard-coded file list.
	viper.SetDefault("files.paths", config.DefaultPaths)
	viper.SetDefault("checks.async_marker", config.DefaultAsyncMarker)
	viper.SetDefault("checks.func_header_pattern", config.DefaultFuncHeaderPattern)

	if err := viper.ReadInConfig(); err != nil {
		// No config file is fine; the defaults stand on their own. An explicit
		// --config that cannot be read is still fatal.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Printf("Error: Could not read config file: %v\n", err)
			os.Exit(1)
		}
	}

	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		os.Exit(1)
	}
}
