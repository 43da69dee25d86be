// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the subcommands of dtfmt.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gonih.org/datetime"
	"gonih.org/datetime/internal/formatfile"
)

// options are the persistent flags shared by all subcommands.
type options struct {
	formatsFile string
	zone        string
	date        bool

	loc     *time.Location
	formats *datetime.Registry
	dates   *datetime.Registry
}

// NewRootCommand returns the dtfmt command with all subcommands.
func NewRootCommand() *cobra.Command {
	o := new(options)
	root := &cobra.Command{
		Use:   "dtfmt",
		Short: "Format and parse dates and times using patterns",
		Long: `dtfmt formats and parses dates and times using datetime patterns.

Patterns can be given literally, like "yyyy-MM-dd HH:mm", or by the name of a
predefined format, like "RFC1123". Use "dtfmt names" to list them.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return o.setup() },
	}
	root.PersistentFlags().StringVar(&o.formatsFile, "formats", "", "TOML or YAML file with additional named formats")
	root.PersistentFlags().StringVar(&o.zone, "zone", "Local", "IANA name of the timezone to use")
	root.PersistentFlags().BoolVar(&o.date, "date", false, "use date-only values and formats")

	root.AddCommand(newFormatCommand(o), newParseCommand(o), newNamesCommand(o))
	return root
}

// Execute runs the dtfmt command.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup resolves the timezone and loads the registries.
func (o *options) setup() error {
	loc, err := time.LoadLocation(o.zone)
	if err != nil {
		return fmt.Errorf("invalid --zone: %w", err)
	}
	o.loc = loc
	o.formats, o.dates = datetime.Formats, datetime.DateFormats
	if o.formatsFile == "" {
		return nil
	}
	o.formats, o.dates = clone(datetime.Formats), clone(datetime.DateFormats)
	f, err := formatfile.Load(o.formatsFile)
	if err != nil {
		return err
	}
	return f.Apply(o.formats, o.dates)
}

// clone returns a copy of r, so loading files does not modify the package
// registries.
func clone(r *datetime.Registry) *datetime.Registry {
	c := datetime.NewRegistry(nil)
	for _, name := range r.Names() {
		pattern, _ := r.Lookup(name)
		// Patterns in r are valid.
		_ = c.Register(name, pattern)
	}
	return c
}

// registry returns the registry selected by --date.
func (o *options) registry() *datetime.Registry {
	if o.date {
		return o.dates
	}
	return o.formats
}

// pattern compiles the named format or the literal pattern s.
func (o *options) pattern(s string) (*datetime.Pattern, error) {
	if _, ok := o.registry().Lookup(s); ok {
		return o.registry().Compile(s)
	}
	return datetime.Compile(s)
}
