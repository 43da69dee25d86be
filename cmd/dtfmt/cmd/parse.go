// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gonih.org/datetime"
)

func newParseCommand(o *options) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "parse <name or pattern> <text>",
		Short: "Parse text and print the result in another format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := o.pattern(args[0])
			if err != nil {
				return err
			}
			out := output
			if out == "" {
				out = datetime.XML
				if o.date {
					out = datetime.DateXML
				}
			}
			op, err := o.pattern(out)
			if err != nil {
				return err
			}
			d, err := in.ParseIn(args[1], o.loc)
			if err != nil {
				return err
			}
			var v datetime.Value = d
			if o.date {
				v = datetime.DateFrom(d)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), op.Format(v))
			return err
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "name or pattern to print the result with (default XML)")
	return c
}
