// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"gonih.org/datetime/internal/cache"
)

// A Node is an element of a compiled [Pattern]. It is one of [Literal],
// [Group], [CharClass] or [Token].
type Node interface {
	node()
}

// A Literal is text that is rendered and matched verbatim.
type Literal string

// A Group is an optional part of a pattern. It is always rendered, but may be
// missing from parsed text as a whole.
type Group []Node

// A CharClass matches any one of its characters. It renders as its first
// character.
type CharClass string

func (Literal) node()   {}
func (Group) node()     {}
func (CharClass) node() {}
func (Token) node()     {}

// A Pattern is a compiled format pattern. It is safe for concurrent use.
type Pattern struct {
	src   string
	nodes []Node
	utc   bool
	re    *regexp.Regexp
}

// String returns the source of p.
func (p *Pattern) String() string { return p.src }

// Nodes returns the compiled nodes of p. The result must not be modified.
func (p *Pattern) Nodes() []Node { return p.nodes }

// UTC reports whether p describes UTC values. Such patterns end in a UTC
// designator like "GMT" or "Z": values are rendered in UTC and parsed text is
// interpreted in UTC.
func (p *Pattern) UTC() bool { return p.utc }

// Regexp returns the regular expression matching the text p accepts. It has
// one capturing group for every Token and Group of p, in order.
func (p *Pattern) Regexp() *regexp.Regexp { return p.re }

// SyntaxError describes a malformed pattern.
type SyntaxError struct {
	Pattern string
	// Offset is the byte offset of the unterminated construct.
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Message)
}

// A Compiler compiles patterns and remembers the results. The zero value is
// ready to use. It is safe for concurrent use.
type Compiler struct {
	memo cache.Cache[string, *Pattern]
}

// NewCompiler returns a new, empty Compiler.
func NewCompiler() *Compiler { return new(Compiler) }

// Compile compiles pattern, or returns the result of an earlier call with the
// same pattern. Malformed patterns are not remembered.
func (c *Compiler) Compile(pattern string) (*Pattern, error) {
	return c.memo.Get(pattern, compile)
}

// Len returns the number of patterns c remembers.
func (c *Compiler) Len() int { return c.memo.Len() }

// std is used by the package-level functions.
var std Compiler

// Compile parses a pattern describing how to format and parse values.
//
// A pattern is a sequence of
//
//   - token names, like "yyyy" or "MMM", which stand for a field of the value.
//     If several token names start at the same position, the longest one is
//     used. See the table below.
//   - text enclosed in single quotes, which is taken literally. Two single
//     quotes inside such text stand for one single quote.
//   - optional groups enclosed in parentheses, which may be nested. A group
//     is always formatted, but may be missing when parsing.
//   - alternatives enclosed in brackets, like "[ T]". When parsing, any one of
//     the characters is accepted. When formatting, the first one is used.
//   - any other character, which is taken literally.
//
// If the last element of a pattern is literal text ending in a designator of
// UTC, like "GMT", "UTC" or "Z" (ignoring case), the pattern describes UTC
// values. So does literal text, quoted or not, whose only "0" is its last
// character. That "0" is removed from the pattern along with the character
// before it.
//
// The tokens are
//
//	@            milliseconds since the Unix epoch
//	y yy yyy yyyy  year; "yy" uses two digits, which are parsed to the year
//	             closest to the current one; "yyy" accepts two or four digits
//	M MM         month number, MM padded to two digits
//	MMM MMMM     abbreviated and full month name
//	d dd         day of the month, dd padded to two digits
//	dD           day of the month, padded with a space
//	o            day of the month with an ordinal suffix, like "21st"
//	D DD         day of the year, DD padded to three digits
//	ddd dddd     abbreviated and full day name
//	w ww         week of the year
//	H HH         hour (0-23)
//	h hh         hour (1-12)
//	T TT t tt    meridiem: "A", "AM", "a", "am"
//	m mm         minute
//	s ss         second
//	f ff fff     fraction of the second
//	z zz zzz zzzz  offset like "-0500", "-05", "-05:00", "-0500"; "Z" for UTC
//	Z ZZ ZZZ ZZZZ  like the z tokens, but accepting and producing names of US
//	             zones like "EST"
//	ZZZz         like ZZZZ, also accepting the military zones of RFC 822
func Compile(pattern string) (*Pattern, error) {
	return std.Compile(pattern)
}

// MustCompile is like Compile but panics if the pattern is malformed.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func compile(src string) (*Pattern, error) {
	nodes, err := parsePattern(src, src, 0)
	if err != nil {
		return nil, err
	}
	p := &Pattern{src: src}
	p.nodes, p.utc = utcHint(nodes)
	var b strings.Builder
	b.WriteString("^(?:")
	writeExpr(&b, p.nodes)
	b.WriteString(")$")
	p.re, err = regexp.Compile(b.String())
	if err != nil {
		return nil, &SyntaxError{Pattern: src, Message: err.Error()}
	}
	return p, nil
}

// parsePattern parses s, which starts at byte offset off of pattern.
func parsePattern(pattern, s string, off int) ([]Node, error) {
	var (
		nodes []Node
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, Literal(lit.String()))
			lit.Reset()
		}
	}
	for i := 0; i < len(s); {
		switch s[i] {
		case '\'':
			n, ok := quoted(&lit, s[i+1:])
			if !ok {
				return nil, &SyntaxError{pattern, off + i, "unterminated quote"}
			}
			i += 1 + n
		case '(':
			n, ok := groupLen(s[i+1:])
			if !ok {
				return nil, &SyntaxError{pattern, off + i, "unterminated group"}
			}
			if n > 0 {
				inner, err := parsePattern(pattern, s[i+1:i+1+n], off+i+1)
				if err != nil {
					return nil, err
				}
				flush()
				nodes = append(nodes, Group(inner))
			}
			i += n + 2
		case '[':
			n := strings.IndexByte(s[i+1:], ']')
			if n < 0 {
				return nil, &SyntaxError{pattern, off + i, "unterminated bracket"}
			}
			if n > 0 {
				flush()
				nodes = append(nodes, CharClass(s[i+1:i+1+n]))
			}
			i += n + 2
		default:
			if tok, n, ok := lookupToken(s[i:]); ok {
				flush()
				nodes = append(nodes, tok)
				i += n
				continue
			}
			_, n := utf8.DecodeRuneInString(s[i:])
			lit.WriteString(s[i : i+n])
			i += n
		}
	}
	flush()
	return nodes, nil
}

// quoted writes the quoted text at the start of s to b. s starts after the
// opening quote. It returns the number of bytes consumed, including the
// closing quote.
func quoted(b *strings.Builder, s string) (n int, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return i + 1, true
	}
	return 0, false
}

// groupLen returns the length of the group at the start of s, excluding the
// closing parenthesis. s starts after the opening parenthesis.
func groupLen(s string) (n int, ok bool) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// utcHint reports whether nodes describe UTC values, removing a trailing
// "0" marker.
func utcHint(nodes []Node) ([]Node, bool) {
	if len(nodes) == 0 {
		return nodes, false
	}
	var end string
	switch n := nodes[len(nodes)-1].(type) {
	case Literal:
		end = string(n)
	case CharClass:
		_, size := utf8.DecodeRuneInString(string(n))
		return nodes, hasUTCSuffix(string(n)[:size])
	default:
		return nodes, false
	}
	if hasUTCSuffix(end) {
		return nodes, true
	}
	if strings.IndexByte(end, '0') != len(end)-1 {
		return nodes, false
	}
	nodes = nodes[:len(nodes)-1]
	if len(end) > 2 {
		nodes = append(nodes, Literal(end[:len(end)-2]))
	}
	return nodes, true
}

// writeExpr writes a regular expression matching nodes to b.
func writeExpr(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Literal:
			b.WriteString(regexp.QuoteMeta(string(n)))
		case Group:
			b.WriteByte('(')
			writeExpr(b, n)
			b.WriteString(")?")
		case CharClass:
			b.WriteByte('[')
			for _, r := range string(n) {
				if strings.ContainsRune(`\]^-[`, r) {
					b.WriteByte('\\')
				}
				b.WriteRune(r)
			}
			b.WriteByte(']')
		case Token:
			b.WriteByte('(')
			b.WriteString(n.Expr())
			b.WriteByte(')')
		}
	}
}

// numCaptures returns the number of capturing groups of the expression
// matching nodes.
func numCaptures(nodes []Node) int {
	var n int
	for _, nd := range nodes {
		switch nd := nd.(type) {
		case Group:
			n += 1 + numCaptures(nd)
		case Token:
			n++
		}
	}
	return n
}
