// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dtfmt formats and parses dates and times using datetime patterns.
//
// Usage:
//
//	dtfmt format [--unix ms] [--date] <name or pattern>
//	dtfmt parse [--output <name or pattern>] [--date] <name or pattern> <text>
//	dtfmt names [--date]
//
// Named formats are those of package datetime, plus the ones loaded with
// --formats from a TOML or YAML file.
package main

import (
	"os"

	"gonih.org/datetime/cmd/dtfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
