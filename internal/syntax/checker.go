// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"

	"github.com/PlusA2M/swiftcheck/internal/config"
)

// Checker drives a scan over the configured file list and writes the
// human-readable report.
type Checker struct {
	config  *config.Config
	scanner *Scanner
	out     io.Writer
}

func NewChecker(cfg *config.Config, out io.Writer) (*Checker, error) {
	scanner, err := NewScanner(cfg)
	if err != nil {
		return nil, err
	}
	return &Checker{config: cfg, scanner: scanner, out: out}, nil
}

// Check scans each path in order and prints the report. When paths is empty
// the configured file list is used. Missing and unreadable files are reported
// but never abort the run or count toward the issue total.
func (c *Checker) Check(paths []string) (Summary, error) {
	if len(paths) == 0 {
		paths = c.config.Files.Paths
	}

	expanded, err := ExpandPaths(c.config, paths)
	if err != nil {
		return Summary{}, fmt.Errorf("expanding file list: %w", err)
	}

	var bar *progressbar.ProgressBar
	if len(expanded) > 0 {
		bar = progressbar.Default(int64(len(expanded)), "Scanning files")
	}

	reports := make([]FileReport, 0, len(expanded))
	for _, path := range expanded {
		reports = append(reports, c.checkFile(path))
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return c.report(reports), nil
}

func (c *Checker) checkFile(path string) FileReport {
	report := FileReport{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report
		}
		report.Found = true
		report.ReadErr = err.Error()
		return report
	}

	report.Found = true
	if !utf8.Valid(content) {
		report.ReadErr = "file is not valid UTF-8 text"
		return report
	}

	report.Issues = c.scanner.Scan(string(content))
	return report
}

func (c *Checker) report(reports []FileReport) Summary {
	var summary Summary

	for _, r := range reports {
		if !r.Found {
			fmt.Fprintf(c.out, "  ⚠ File not found: %s\n", r.Path)
			continue
		}

		summary.FilesChecked++
		fmt.Fprintf(c.out, "\nChecking %s...\n", r.Path)

		if r.ReadErr != "" {
			fmt.Fprintf(c.out, "  ⚠ Could not read %s: %s\n", r.Path, r.ReadErr)
			continue
		}

		if len(r.Issues) == 0 {
			fmt.Fprintln(c.out, "  ✓ No syntax issues found")
			continue
		}

		summary.TotalIssues += len(r.Issues)
		fmt.Fprintf(c.out, "  ✗ Found %d issues:\n", len(r.Issues))
		for _, issue := range r.Issues {
			fmt.Fprintf(c.out, "    • %s\n", issue)
		}
	}

	fmt.Fprintf(c.out, "\nSummary:\n")
	fmt.Fprintf(c.out, "  Files checked: %d\n", summary.FilesChecked)
	fmt.Fprintf(c.out, "  Total issues:  %d\n", summary.TotalIssues)

	if summary.TotalIssues == 0 {
		fmt.Fprintln(c.out, "✓ All files passed syntax validation")
	} else {
		fmt.Fprintln(c.out, "⚠ Issues found - review before committing")
	}

	return summary
}
