// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formatfile reads tables of named patterns from TOML or YAML files.
//
// A file has up to two tables, mapping names to patterns:
//
//	[formats]
//	Log = "yyyy-MM-dd HH:mm:ss.fff"
//
//	[date_formats]
//	Short = "dd.MM.yy"
package formatfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a file.
type Format int

const (
	// FormatAuto detects the format from the file extension, defaulting to
	// TOML.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// File is the content of a format file.
type File struct {
	Formats     map[string]string `toml:"formats" yaml:"formats"`
	DateFormats map[string]string `toml:"date_formats" yaml:"date_formats"`
}

// tables are the top-level keys of a file.
var tables = []string{"formats", "date_formats"}

// Load reads the file at path, detecting its format from the extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, Detect(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Detect returns the format of the file at path, by its extension.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Decode parses data in the given format. Unknown keys are an error, to catch
// misspelled table names.
func Decode(data []byte, format Format) (*File, error) {
	f := new(File)
	switch format {
	case FormatAuto, FormatTOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("decoding TOML: unknown key %q", undec[0].String())
		}
		for _, key := range tables {
			if md.IsDefined(key) && md.Type(key) != "Hash" {
				return nil, fmt.Errorf("decoding TOML: %q must be a table, not %s", key, strings.ToLower(md.Type(key)))
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
	return f, nil
}

// Registerer is implemented by *datetime.Registry.
type Registerer interface {
	Register(name, pattern string) error
}

// Apply registers the formats of f with formats and its date formats with
// dates. It stops at the first malformed pattern.
func (f *File) Apply(formats, dates Registerer) error {
	for _, t := range []struct {
		m map[string]string
		r Registerer
	}{
		{f.Formats, formats},
		{f.DateFormats, dates},
	} {
		for _, name := range sortedKeys(t.m) {
			if err := t.r.Register(name, t.m[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
