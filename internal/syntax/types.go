// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package syntax

// FileReport holds the scan outcome for a single path in the file list.
type FileReport struct {
	Path    string
	Found   bool
	ReadErr string
	Issues  []string
}

// Summary aggregates a full run. FilesChecked counts paths that existed on
// disk; TotalIssues counts scanner findings only — missing files and read
// failures never contribute to it.
type Summary struct {
	FilesChecked int
	TotalIssues  int
}
