// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
)

func TestCompile(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		pattern string
		want    []Node
		utc     bool
	}{
		{"", nil, false},
		{"yyyy-MM-dd", []Node{tokYear4, Literal("-"), tokMonth2, Literal("-"), tokDay2}, false},
		{"'T'HH", []Node{Literal("T"), tokHour2}, false},
		{"'it''s'", []Node{Literal("it's")}, false},
		{"''", nil, false},
		{"a''b", []Node{Literal("ab")}, false},
		{"x'y'", []Node{Literal("xy")}, false},
		{"(ddd, )d", []Node{Group{tokDayName, Literal(", ")}, tokDay}, false},
		{"[ T]", []Node{CharClass(" T")}, false},
		{"[]x", []Node{Literal("x")}, false},
		{"()x", []Node{Literal("x")}, false},
		{"yyyy(-MM(-dd))", []Node{tokYear4, Group{Literal("-"), tokMonth2, Group{Literal("-"), tokDay2}}}, false},
		{"ddddD", []Node{tokLongDayName, tokYearDay}, false},
		{"dDd", []Node{tokDaySpace, tokDay}, false},
		{"ZZZzz", []Node{tokZoneRFC822, tokZone}, false},
		{"ü-d", []Node{Literal("ü-"), tokDay}, false},
		{"HH:mm 'GMT'", []Node{tokHour2, Literal(":"), tokMinute2, Literal(" GMT")}, true},
		{"HH 'utc'", []Node{tokHour2, Literal(" utc")}, true},
		{"HH-00", []Node{tokHour2, Literal("-00")}, true},
		{"HH [Zx]", []Node{tokHour2, Literal(" "), CharClass("Zx")}, true},
		{"HH [xZ]", []Node{tokHour2, Literal(" "), CharClass("xZ")}, false},
		{"HH:mm:ss0", []Node{tokHour2, Literal(":"), tokMinute2, Literal(":"), tokSecond2}, true},
		{"HH ab0", []Node{tokHour2, Literal(" a")}, true},
		{"HH'x0'", []Node{tokHour2}, true},
		{"HH ' 0'", []Node{tokHour2, Literal(" ")}, true},
		{"HH 00", []Node{tokHour2, Literal(" 00")}, false},
		{"HH 'GMT' mm", []Node{tokHour2, Literal(" GMT "), tokMinute2}, false},
	}
	for _, tc := range tcs {
		p, err := NewCompiler().Compile(tc.pattern)
		if err != nil {
			t.Errorf("Compile(%q) = %v", tc.pattern, err)
			continue
		}
		if diff := pretty.Compare(p.Nodes(), tc.want); diff != "" {
			t.Errorf("Compile(%q) has wrong nodes (-got +want):\n%s", tc.pattern, diff)
		}
		if p.UTC() != tc.utc {
			t.Errorf("Compile(%q).UTC() = %v, want %v", tc.pattern, p.UTC(), tc.utc)
		}
		if p.String() != tc.pattern {
			t.Errorf("Compile(%q).String() = %q", tc.pattern, p.String())
		}
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		pattern string
		offset  int
		msg     string
	}{
		{"'abc", 0, "unterminated quote"},
		{"yyyy'", 4, "unterminated quote"},
		{"(yyyy", 0, "unterminated group"},
		{"y(M(d)", 1, "unterminated group"},
		{"((y)", 0, "unterminated group"},
		{"('x)", 1, "unterminated quote"},
		{"yy[ab", 2, "unterminated bracket"},
		{"(yy[ab)", 3, "unterminated bracket"},
	}
	for _, tc := range tcs {
		c := NewCompiler()
		_, err := c.Compile(tc.pattern)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Compile(%q) = %v, want *SyntaxError", tc.pattern, err)
			continue
		}
		if se.Pattern != tc.pattern || se.Offset != tc.offset || se.Message != tc.msg {
			t.Errorf("Compile(%q) = %#v, want offset %d and message %q", tc.pattern, se, tc.offset, tc.msg)
		}
		if c.Len() != 0 {
			t.Errorf("Compile(%q) stored a malformed pattern", tc.pattern)
		}
	}
}

func TestCompileCached(t *testing.T) {
	t.Parallel()
	c := NewCompiler()
	p1, err := c.Compile(RFC1123)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := c.Compile(RFC1123)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Errorf("Compile(%q) returned different patterns on second call", RFC1123)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	// A fresh compile yields the same tree.
	p3, err := NewCompiler().Compile(RFC1123)
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Compare(p1.Nodes(), p3.Nodes()); diff != "" {
		t.Errorf("Compile(%q) is not deterministic (-first +second):\n%s", RFC1123, diff)
	}
}

func TestRegexp(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		pattern string
		want    string
	}{
		{"HH.mm", `^(?:(\d{2})\.(\d{2}))$`},
		{"[-^]", `^(?:[\-\^])$`},
		{"[a\\]", `^(?:[a\\])$`},
		{"'a+b*'(ss)", `^(?:a\+b\*((\d{2}))?)$`},
		{"'$1'", `^(?:\$1)$`},
	}
	for _, tc := range tcs {
		if got := MustCompile(tc.pattern).Regexp().String(); got != tc.want {
			t.Errorf("Compile(%q).Regexp() = %q, want %q", tc.pattern, got, tc.want)
		}
	}
	if MustCompile("HH.mm").Regexp().MatchString("12x34") {
		t.Errorf("literal . matches any character")
	}
}

func TestNumCaptures(t *testing.T) {
	t.Parallel()
	for _, r := range []*Registry{Formats, DateFormats} {
		for _, name := range r.Names() {
			p, err := r.Compile(name)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := numCaptures(p.Nodes()), p.Regexp().NumSubexp(); got != want {
				t.Errorf("numCaptures(%q) = %d, want %d", p, got, want)
			}
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on a malformed pattern")
		}
	}()
	MustCompile("'")
}

// FuzzCompile generates patterns to check that Compile does not panic and
// that formatted values match the pattern.
func FuzzCompile(f *testing.F) {
	for _, r := range []*Registry{Formats, DateFormats} {
		for _, name := range r.Names() {
			pattern, _ := r.Lookup(name)
			f.Add(pattern)
		}
	}
	d := Date(2024, time.March, 5, 14, 7, 9, 120, time.FixedZone("", -5*3600))
	f.Fuzz(func(t *testing.T, pattern string) {
		p, err := NewCompiler().Compile(pattern)
		if err != nil {
			return
		}
		if got, want := numCaptures(p.Nodes()), p.Regexp().NumSubexp(); got != want {
			t.Fatalf("numCaptures(%q) = %d, want %d", pattern, got, want)
		}
		if s := p.Format(d); !p.Regexp().MatchString(s) {
			t.Fatalf("Compile(%q).Format(%#v) = %q, which does not match %v", pattern, d, s, p.Regexp())
		}
	})
}
