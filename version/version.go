// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionFile string

// Version returns the current version of swiftcheck
func Version() string {
	return strings.TrimSpace(versionFile)
}
