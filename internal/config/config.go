// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

type Config struct {
	Files  Files  `yaml:"files" mapstructure:"files"`
	Checks Checks `yaml:"checks" mapstructure:"checks"`
}

type Files struct {
	Paths          []string `yaml:"paths" mapstructure:"paths"`
	IgnorePatterns []string `yaml:"ignore_patterns" mapstructure:"ignore_patterns"`
}

type Checks struct {
	AsyncMarker       string `yaml:"async_marker" mapstructure:"async_marker"`
	FuncHeaderPattern string `yaml:"func_header_pattern" mapstructure:"func_header_pattern"`
}

// DefaultPaths is the file list the tool was originally written to validate.
// It is used whenever no paths are configured or given on the command line.
var DefaultPaths = []string{
	"i18n editor/Views/TranslationEditorView.swift",
	"i18n editor/PermissionManager.swift",
	"i18n editor/FileSystemManager.swift",
	"i18n editor/i18n_editorApp.swift",
	"i18n editor/ContentView.swift",
	"i18n editor/ProjectManager.swift",
}

const (
	DefaultAsyncMarker       = "DispatchQueue.main.async"
	DefaultFuncHeaderPattern = `^\s*func\s+\w+.*\{\s*$`
)

// Default returns a configuration equivalent to the tool's built-in behavior.
func Default() *Config {
	return &Config{
		Files: Files{
			Paths: append([]string(nil), DefaultPaths...),
		},
		Checks: Checks{
			AsyncMarker:       DefaultAsyncMarker,
			FuncHeaderPattern: DefaultFuncHeaderPattern,
		},
	}
}

// FuncHeaderRegexp compiles the configured function header pattern, falling
// back to the built-in default when the field is empty.
func (c *Config) FuncHeaderRegexp() (*regexp.Regexp, error) {
	pattern := c.Checks.FuncHeaderPattern
	if pattern == "" {
		pattern = DefaultFuncHeaderPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid func_header_pattern: %w", err)
	}
	return re, nil
}

// Marker returns the configured async-dispatch marker, falling back to the
// built-in default when the field is empty.
func (c *Config) Marker() string {
	if c.Checks.AsyncMarker == "" {
		return DefaultAsyncMarker
	}
	return c.Checks.AsyncMarker
}

// Ignored reports whether path matches any configured ignore pattern.
// Patterns are doublestar globs matched against the path as configured.
func (c *Config) Ignored(path string) bool {
	for _, pattern := range c.Files.IgnorePatterns {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
