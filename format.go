// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// These are predefined patterns for established date and time formats, for
// use with [Compile], [Format] and [Parse]. See [Compile] for the syntax.
const (
	CTime          = "ddd MMM dD HH:mm:ss yyyy"              // C ctime and asctime
	USENET850      = "dddd, d-MMM-yy HH:mm:ss Z"             // RFC 850
	USENET1036     = "ddd, d MMM yy HH:mm:ss ZZZZ"           // RFC 1036
	USENET         = "dddd dd-MMM-yy HH:mm:ss 'GMT'"         // Usenet, always UTC
	ARPA           = "(ddd, )d MMM yy HH:mm(:ss) ZZZz"       // RFC 822
	RSS            = "(ddd, )d MMM yyy HH:mm:ss 'GMT'"       // RSS 2.0, always UTC
	RFC2822        = "(ddd, )d MMM yyy HH:mm(:ss) ZZZz"      // RFC 2822
	RFC1123        = "(ddd, )d MMM yyy HH:mm(:ss) ZZZz"      // RFC 1123
	HTTP           = "ddd, dd MMM yyyy HH:mm:ss 'GMT'"       // RFC 7231 HTTP-date
	RFC2109        = "ddd, dd-MMM-yy HH:mm:ss 'GMT'"         // RFC 2109 cookie expiry
	Cookies        = "ddd, dd[ -]MMM[ -]yyyy HH:mm:ss 'GMT'" // cookie expiry, as sent by browsers
	XML            = "yyyy-MM-dd'T'HH:mm:ss(.f)zzz"          // XML Schema dateTime
	W3C            = "yyyy(-MM(-dd('T'HH:mm(:ss(.f))zzz)))"  // W3C-DTF, any precision
	W3C6           = "yyyy-MM-dd'T'HH:mm:ss.fzzz"            // W3C-DTF with fractional seconds
	W3C5           = "yyyy-MM-dd'T'HH:mm:sszzz"              // W3C-DTF with seconds
	W3C4           = "yyyy-MM-dd'T'HH:mmzzz"                 // W3C-DTF with minutes
	HTML           = "yyyy-MM-dd'T'HH:mm:sszzz"              // HTML global date and time
	RFC3339        = "yyyy-MM-dd[ T]HH:mm:ss(.f)z"           // RFC 3339
	ISOJSON        = "yyyy-MM-dd'T'HH:mm:ss.fff'Z'"          // JSON, as produced by JavaScript
	Sortable       = "yyyy-MM-dd'T'HH:mm:ss0"                // sortable, UTC without designator
	USortable      = "yyyy-MM-dd' 'HH:mm:ss'Z'"              // universal sortable
	DotNet         = "yyyy-MM-dd'T'HH:mm:ss.fffzz"           // .NET round-trip
	ISODotNet      = "yyyy-MM-dd'T'HH:mm:ss([.,]f)'Z'"       // ISO 8601 in UTC
	ISODotNetLocal = "yyyy-MM-dd'T'HH:mm:ss([.,]f)0"         // ISO 8601 in UTC, without designator
	Atom           = "yyyy-MM-dd'T'HH:mm:ss(.f)z"            // Atom (RFC 4287)
)

// These are predefined patterns for the date part of established formats.
const (
	DateUSENET850  = "dddd, d-MMM-yy"
	DateUSENET1036 = "ddd, d MMM yy"
	DateUSENET     = "dd-MMM-yy"
	DateARPA       = "d MMM yy"
	DateRSS        = "d MMM yyy"
	DateRFC2822    = "dd MMM yyy"
	DateRFC1123    = "dd MMM yyy"
	DateHTTP       = "dd MMM yyyy"
	DateRFC2109    = "ddd, dd-MMM-yy"
	DateCookies    = "ddd, dd[ -]MMM[ -]yyyy"
	DateXML        = "yyyy-MM-dd"
	DateW3C3       = "yyyy-MM-dd"
	DateW3C2       = "yyyy-MM"
	DateW3C1       = "yyyy"
	DateRFC3339    = "yyyy-MM-dd"
	DateAtom       = "yyyy-MM-dd"
)

// Format renders v according to p.
func (p *Pattern) Format(v Value) string {
	return string(p.AppendFormat(make([]byte, 0, len(p.src)+16), v))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (p *Pattern) AppendFormat(b []byte, v Value) []byte {
	d := FromTime(v.Time())
	if p.utc {
		d = d.UTC()
	}
	return appendNodes(b, p.nodes, d)
}

func appendNodes(b []byte, nodes []Node, d DateTime) []byte {
	for _, n := range nodes {
		switch n := n.(type) {
		case Literal:
			b = append(b, n...)
		case Group:
			b = appendNodes(b, n, d)
		case CharClass:
			_, size := utf8.DecodeRuneInString(string(n))
			b = append(b, n[:size]...)
		case Token:
			b = append(b, n.Format(d)...)
		default:
			panic(fmt.Errorf("invalid node %T", n))
		}
	}
	return b
}

// Format renders v according to pattern. It only fails if pattern is
// malformed.
func Format(v Value, pattern string) (string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return p.Format(v), nil
}

// Parse parses text according to p. The result is in the local timezone.
//
// Fields missing from p are taken from midnight of January 1, 1970. Parsed
// fields are applied from the most to the least significant one, regardless
// of their order in p: the instant ("@"), then year, month, day, hour,
// meridiem, minute, second and fraction. Day names and week numbers then move
// the date, and offsets or zone names determine the instant the fields denote
// in that zone. Otherwise, the fields are interpreted in the local timezone,
// or in UTC if p is a UTC pattern.
func (p *Pattern) Parse(text string) (DateTime, error) {
	return p.ParseIn(text, time.Local)
}

// ParseIn is like Parse, but interprets text without zone information in
// loc and returns a DateTime in loc.
func (p *Pattern) ParseIn(text string, loc *time.Location) (DateTime, error) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return DateTime{}, &ParseError{
			Pattern: p.src,
			Value:   strings.Clone(text),
			Message: "text does not match pattern",
		}
	}
	wall := loc
	if p.utc {
		wall = time.UTC
	}
	// Fields are applied to a UTC value holding the wall clock, so they are
	// never normalized across DST transitions of wall. Zone tokens turn it
	// into the instant they denote.
	d := Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	var (
		instant          DateTime
		hasInstant       bool
		zoned, hasFields bool
	)

	as, _ := collect(nil, p.nodes, m, 1)
	slices.SortStableFunc(as, func(a, b assignment) int {
		return cmp.Compare(a.tok.rank(), b.tok.rank())
	})
	for _, a := range as {
		if err := a.tok.Set(&d, a.text); err != nil {
			return DateTime{}, &ParseError{
				Pattern: p.src,
				Value:   strings.Clone(text),
				Token:   a.tok.String(),
				Text:    a.text,
				Message: err.Error(),
			}
		}
		switch a.tok.rank() {
		case rankInstant:
			instant, hasInstant = d, true
			d = wallClock(d.In(wall))
		case rankZone:
			zoned = true
		default:
			hasFields = true
		}
	}
	switch {
	case zoned:
		return d.In(loc), nil
	case hasInstant && !hasFields:
		return instant.In(loc), nil
	}
	y, mo, day := d.Date()
	h, mi, s := d.Clock()
	return Date(y, mo, day, h, mi, s, d.Millisecond(), wall).In(loc), nil
}

// wallClock returns a UTC value with the calendar fields of d.
func wallClock(d DateTime) DateTime {
	y, m, day := d.Date()
	h, mi, s := d.Clock()
	return Date(y, m, day, h, mi, s, d.Millisecond(), time.UTC)
}

// assignment is parsed text for a token.
type assignment struct {
	tok  Token
	text string
}

// collect appends the assignments for nodes to as, reading submatches from m
// starting at index i. It returns the index following the submatches of
// nodes. Tokens of groups that did not match are skipped, as are tokens that
// matched the empty string.
func collect(as []assignment, nodes []Node, m []string, i int) ([]assignment, int) {
	for _, n := range nodes {
		switch n := n.(type) {
		case Group:
			if m[i] == "" {
				i += 1 + numCaptures(n)
				continue
			}
			as, i = collect(as, n, m, i+1)
		case Token:
			if m[i] != "" {
				as = append(as, assignment{n, m[i]})
			}
			i++
		}
	}
	return as, i
}

// Parse parses text according to pattern, see [Pattern.Parse].
func Parse(pattern, text string) (DateTime, error) {
	return ParseIn(pattern, text, time.Local)
}

// ParseIn parses text according to pattern, see [Pattern.ParseIn].
func ParseIn(pattern, text string, loc *time.Location) (DateTime, error) {
	p, err := Compile(pattern)
	if err != nil {
		return DateTime{}, err
	}
	return p.ParseIn(text, loc)
}

// ParseError describes a problem parsing text according to a pattern.
type ParseError struct {
	Pattern string
	Value   string
	// Token and Text are set if the text matched the pattern, but the part
	// matching Token could not be applied.
	Token   string
	Text    string
	Message string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parsing %q as %q: %s", e.Value, e.Pattern, e.Message)
	}
	return fmt.Sprintf("parsing %q as %q: cannot use %q as %s: %s", e.Value, e.Pattern, e.Text, e.Token, e.Message)
}

// shorthands maps the single-letter format specifiers of ToString to
// patterns.
var shorthands = map[string]string{
	"u": ISODotNet,
	"U": ISODotNetLocal,
	"s": Sortable,
	"S": USortable,
	"o": DotNet,
	"O": DotNet,
	"j": ISOJSON,
	"J": ISOJSON,
	"i": ISOJSON,
	"I": ISOJSON,
}

// Layouts of package time used by ToString.
const (
	layoutDefault = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
	layoutUTC     = "Mon, 02 Jan 2006 15:04:05 GMT"
	layoutDate    = "Mon Jan 02 2006"
	layoutLong    = "Monday, January 2, 2006"
	layoutTime    = "15:04:05 GMT-0700 (MST)"
	layoutClock   = "3:04:05 PM"
	layoutFull    = "1/2/2006, 3:04:05 PM"
)

// ToString renders d according to a single-letter format specifier:
//
//	u  ISODotNet
//	U  ISODotNetLocal
//	s  Sortable
//	S  USortable
//	o  DotNet (also O)
//	j  ISOJSON (also J, i and I)
//	r  RFC 1123 in UTC, like "Mon, 02 Jan 2006 15:04:05 GMT" (also R)
//	d  the date, like "Mon Jan 02 2006"
//	D  the long date, like "Monday, January 2, 2006"
//	t  the time with zone, like "15:04:05 GMT-0700 (MST)"
//	T  the time, like "3:04:05 PM"
//	l  date and time, like "1/2/2006, 3:04:05 PM" (also L)
//
// Any other specifier renders d like String.
func (d DateTime) ToString(spec string) string {
	if pattern, ok := shorthands[spec]; ok {
		return MustCompile(pattern).Format(d)
	}
	switch spec {
	case "r", "R":
		return d.t.UTC().Format(layoutUTC)
	case "d":
		return d.t.Format(layoutDate)
	case "D":
		return d.t.Format(layoutLong)
	case "t":
		return d.t.Format(layoutTime)
	case "T":
		return d.t.Format(layoutClock)
	case "l", "L":
		return d.t.Format(layoutFull)
	}
	return d.String()
}

// String returns d formatted like "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)".
func (d DateTime) String() string {
	return d.t.Format(layoutDefault)
}
