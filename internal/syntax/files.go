// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/PlusA2M/swiftcheck/internal/config"
)

// ExpandPaths resolves the configured path list into concrete file paths,
// preserving the declared order. Entries containing glob metacharacters are
// expanded with doublestar (matches come back sorted); literal entries pass
// through untouched so the driver can report them when they are missing.
// Entries matching an ignore pattern are dropped.
func ExpandPaths(cfg *config.Config, paths []string) ([]string, error) {
	var out []string
	for _, entry := range paths {
		if !strings.ContainsAny(entry, "*?[{") {
			if !cfg.Ignored(entry) {
				out = append(out, entry)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(entry)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !cfg.Ignored(m) {
				out = append(out, m)
			}
		}
	}
	return out, nil
}
