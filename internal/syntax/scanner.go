// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package syntax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PlusA2M/swiftcheck/internal/config"
)

// Scanner performs the per-file linear pass. Counting is literal: characters
// inside string literals and comments are counted like any other, which keeps
// the tool a heuristic rather than a parser.
type Scanner struct {
	marker     string
	funcHeader *regexp.Regexp
}

func NewScanner(cfg *config.Config) (*Scanner, error) {
	re, err := cfg.FuncHeaderRegexp()
	if err != nil {
		return nil, err
	}
	return &Scanner{
		marker:     cfg.Marker(),
		funcHeader: re,
	}, nil
}

// Scan runs the heuristics over the full text of one file and returns the
// issues found, in line order with balance issues last. It reads no shared
// state and is safe to call concurrently for distinct files.
func (s *Scanner) Scan(content string) []string {
	lines := strings.Split(content, "\n")

	var issues []string
	braceCount := 0
	parenCount := 0
	bracketCount := 0

	for i, line := range lines {
		braceCount += strings.Count(line, "{") - strings.Count(line, "}")
		parenCount += strings.Count(line, "(") - strings.Count(line, ")")
		bracketCount += strings.Count(line, "[") - strings.Count(line, "]")

		hasNext := i+1 < len(lines)

		// Async dispatch call with no opening brace on this line or the next.
		if strings.Contains(line, s.marker) && !strings.Contains(line, "{") && hasNext {
			if !strings.Contains(lines[i+1], "{") {
				issues = append(issues, fmt.Sprintf("Line %d: %s might be missing opening brace", i+1, s.marker))
			}
		}

		// Function header ending in "{" immediately followed by a lone "}".
		if s.funcHeader.MatchString(line) && hasNext && strings.TrimSpace(lines[i+1]) == "}" {
			issues = append(issues, fmt.Sprintf("Line %d: Function appears to have empty body", i+2))
		}
	}

	// The raw signed value is printed even when closers outnumber openers;
	// the "extra opening" phrasing is kept either way.
	if braceCount != 0 {
		issues = append(issues, fmt.Sprintf("Mismatched braces: %d extra opening braces", braceCount))
	}
	if parenCount != 0 {
		issues = append(issues, fmt.Sprintf("Mismatched parentheses: %d extra opening parentheses", parenCount))
	}
	if bracketCount != 0 {
		issues = append(issues, fmt.Sprintf("Mismatched brackets: %d extra opening brackets", bracketCount))
	}

	return issues
}
