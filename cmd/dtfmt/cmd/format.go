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

func newFormatCommand(o *options) *cobra.Command {
	var unix int64
	c := &cobra.Command{
		Use:   "format <name or pattern>",
		Short: "Format the current time, or the one given by --unix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.pattern(args[0])
			if err != nil {
				return err
			}
			d := datetime.Now().In(o.loc)
			if cmd.Flags().Changed("unix") {
				d = datetime.UnixMilli(unix).In(o.loc)
			}
			var v datetime.Value = d
			if o.date {
				v = datetime.DateFrom(d)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Format(v))
			return err
		},
	}
	c.Flags().Int64Var(&unix, "unix", 0, "milliseconds since the Unix epoch to format instead of now")
	return c
}
