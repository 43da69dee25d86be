// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newNamesCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the named formats and their patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := o.registry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, name := range r.Names() {
				pattern, _ := r.Lookup(name)
				fmt.Fprintf(w, "%s\t%s\n", name, pattern)
			}
			return w.Flush()
		},
	}
}
