// Copyright (c) PlusA2M
// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/PlusA2M/swiftcheck/cmd"

func main() {
	cmd.Execute()
}
