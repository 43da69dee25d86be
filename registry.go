// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"slices"
	"sync"
)

// A Registry maps names to patterns. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]string
	c        *Compiler
}

// NewRegistry returns an empty Registry, compiling patterns with c. If c is
// nil, the package-level compiler is used.
func NewRegistry(c *Compiler) *Registry {
	if c == nil {
		c = &std
	}
	return &Registry{patterns: make(map[string]string), c: c}
}

// Register adds pattern under name, replacing any previous pattern of that
// name. It fails if pattern is malformed.
func (r *Registry) Register(name, pattern string) error {
	if _, err := r.c.Compile(pattern); err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns[name] = pattern
	return nil
}

// Lookup returns the pattern registered under name.
func (r *Registry) Lookup(name string) (pattern string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pattern, ok = r.patterns[name]
	return pattern, ok
}

// Compile returns the compiled pattern registered under name.
func (r *Registry) Compile(name string) (*Pattern, error) {
	pattern, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return r.c.Compile(pattern)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// mustRegister registers all patterns in m, panicking on malformed ones.
func (r *Registry) mustRegister(m map[string]string) *Registry {
	for name, pattern := range m {
		if err := r.Register(name, pattern); err != nil {
			panic(err)
		}
	}
	return r
}

// Formats contains the predefined date and time patterns, by the name of
// their constant.
var Formats = NewRegistry(nil).mustRegister(map[string]string{
	"CTime":          CTime,
	"USENET850":      USENET850,
	"USENET1036":     USENET1036,
	"USENET":         USENET,
	"ARPA":           ARPA,
	"RSS":            RSS,
	"RFC2822":        RFC2822,
	"RFC1123":        RFC1123,
	"HTTP":           HTTP,
	"RFC2109":        RFC2109,
	"Cookies":        Cookies,
	"XML":            XML,
	"W3C":            W3C,
	"W3C6":           W3C6,
	"W3C5":           W3C5,
	"W3C4":           W3C4,
	"HTML":           HTML,
	"RFC3339":        RFC3339,
	"ISOJSON":        ISOJSON,
	"Sortable":       Sortable,
	"USortable":      USortable,
	"DotNet":         DotNet,
	"ISODotNet":      ISODotNet,
	"ISODotNetLocal": ISODotNetLocal,
	"Atom":           Atom,
})

// DateFormats contains the predefined date patterns, by the name of their
// constant without the "Date" prefix.
var DateFormats = NewRegistry(nil).mustRegister(map[string]string{
	"USENET850":  DateUSENET850,
	"USENET1036": DateUSENET1036,
	"USENET":     DateUSENET,
	"ARPA":       DateARPA,
	"RSS":        DateRSS,
	"RFC2822":    DateRFC2822,
	"RFC1123":    DateRFC1123,
	"HTTP":       DateHTTP,
	"RFC2109":    DateRFC2109,
	"Cookies":    DateCookies,
	"XML":        DateXML,
	"W3C3":       DateW3C3,
	"W3C2":       DateW3C2,
	"W3C1":       DateW3C1,
	"RFC3339":    DateRFC3339,
	"Atom":       DateAtom,
})
