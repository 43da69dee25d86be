// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// A Token is a named calendar or zone field of a pattern, like "yyyy" or
// "MMM". Each token knows how to render its field, which text it accepts when
// parsing and how to apply that text to a value.
type Token int

const (
	tokUnixMilli Token = iota // @

	tokYear  // y
	tokYear2 // yy
	tokYear3 // yyy
	tokYear4 // yyyy

	tokMonth         // M
	tokMonth2        // MM
	tokMonthName     // MMM
	tokLongMonthName // MMMM

	tokDay      // d
	tokDay2     // dd
	tokDaySpace // dD
	tokOrdinal  // o
	tokYearDay  // D
	tokYearDay3 // DD

	tokDayName     // ddd
	tokLongDayName // dddd
	tokWeek        // w
	tokWeek2       // ww

	tokHour     // H
	tokHour2    // HH
	tokHour12   // h
	tokHour12_2 // hh

	tokMeridiem1      // T
	tokMeridiem       // TT
	tokMeridiemLower1 // t
	tokMeridiemLower  // tt

	tokMinute    // m
	tokMinute2   // mm
	tokSecond    // s
	tokSecond2   // ss
	tokFraction  // f
	tokFraction2 // ff
	tokFraction3 // fff

	tokZone       // z
	tokZone2      // zz
	tokZone5      // zzz
	tokZone4      // zzzz
	tokZoneName   // Z
	tokZoneName2  // ZZ
	tokZoneName5  // ZZZ
	tokZoneName4  // ZZZZ
	tokZoneRFC822 // ZZZz
	numTokens
)

// rank orders the application of parsed tokens, so that the result does not
// depend on the order of fields in a pattern. Tokens of the same rank are
// applied in pattern order.
type rank int

const (
	rankInstant rank = iota
	rankYear
	rankMonth
	rankDay
	rankHour
	rankMeridiem
	rankClock
	rankRelative
	rankZone
)

// tokenDef defines a Token.
type tokenDef struct {
	name string
	// expr is a regular expression matching the text of the token. It must
	// not contain capturing groups.
	expr string
	rank rank
	get  func(DateTime) string
	set  func(*DateTime, string) error
}

const (
	expr1d  = `\d{1,2}`
	expr2d  = `\d{2}`
	exprTZ  = `UT|UTC|GMT|EST|EDT|CST|CDT|MST|MDT|PST|PDT`
	exprTZ2 = `[+-]\d{2}`
	exprTZ4 = `[+-]\d{4}`
	exprTZ5 = `[+-]\d{2}:\d{2}`
)

var tokenDefs = [numTokens]tokenDef{
	tokUnixMilli: {"@", `\d+`, rankInstant, getUnixMilli, setUnixMilli},

	tokYear:  {"y", `-?\d{1,4}`, rankYear, getYear, setYear},
	tokYear2: {"yy", `-?\d{2}`, rankYear, getYear2, setYear2},
	tokYear3: {"yyy", `-?\d{2}|-?\d{1,4}`, rankYear, getYear4, setYear3},
	tokYear4: {"yyyy", `-?\d{4}`, rankYear, getYear4, setYear},

	tokMonth:         {"M", expr1d, rankMonth, getMonth, setMonth},
	tokMonth2:        {"MM", expr2d, rankMonth, getMonth2, setMonth},
	tokMonthName:     {"MMM", strings.Join(shortMonthNames, "|"), rankMonth, getMonthName, setMonthName},
	tokLongMonthName: {"MMMM", strings.Join(longMonthNames, "|"), rankMonth, getLongMonthName, setMonthName},

	tokDay:      {"d", expr1d, rankDay, getDay, setDay},
	tokDay2:     {"dd", expr2d, rankDay, getDay2, setDay},
	tokDaySpace: {"dD", `[ 123]\d`, rankDay, getDaySpace, setDaySpace},
	tokOrdinal:  {"o", `\d{1,2}(?:th|st|nd|rd)`, rankDay, getOrdinal, setOrdinal},
	tokYearDay:  {"D", `\d{1,3}`, rankDay, getYearDay, setYearDay},
	tokYearDay3: {"DD", `\d{3}`, rankDay, getYearDay3, setYearDay},

	tokDayName:     {"ddd", strings.Join(shortDayNames, "|"), rankRelative, getDayName, setDayName},
	tokLongDayName: {"dddd", strings.Join(longDayNames, "|"), rankRelative, getLongDayName, setDayName},
	tokWeek:        {"w", expr1d, rankRelative, getWeek, setWeek},
	tokWeek2:       {"ww", expr2d, rankRelative, getWeek2, setWeek},

	tokHour:     {"H", expr1d, rankHour, getHour, setHour},
	tokHour2:    {"HH", expr2d, rankHour, getHour2, setHour},
	tokHour12:   {"h", expr1d, rankHour, getHour12, setHour12},
	tokHour12_2: {"hh", expr2d, rankHour, getHour12_2, setHour12},

	tokMeridiem1:      {"T", `A|P`, rankMeridiem, getMeridiem1, setMeridiem1},
	tokMeridiem:       {"TT", `AM|PM`, rankMeridiem, getMeridiem, setMeridiem},
	tokMeridiemLower1: {"t", `a|p`, rankMeridiem, getMeridiemLower1, setMeridiem1},
	tokMeridiemLower:  {"tt", `am|pm`, rankMeridiem, getMeridiemLower, setMeridiem},

	tokMinute:    {"m", expr1d, rankClock, getMinute, setMinute},
	tokMinute2:   {"mm", expr2d, rankClock, getMinute2, setMinute},
	tokSecond:    {"s", expr1d, rankClock, getSecond, setSecond},
	tokSecond2:   {"ss", expr2d, rankClock, getSecond2, setSecond},
	tokFraction:  {"f", `\d+`, rankClock, getFraction, setFraction},
	tokFraction2: {"ff", expr2d, rankClock, getFraction2, setFraction},
	tokFraction3: {"fff", `\d{3}`, rankClock, getFraction3, setFraction},

	tokZone:       {"z", UTCNameISO + "|" + exprTZ2 + "|" + exprTZ4 + "|" + exprTZ5, rankZone, getZone, setZone},
	tokZone2:      {"zz", UTCNameISO + "|" + exprTZ2, rankZone, getZone2, setZone2},
	tokZone5:      {"zzz", UTCNameISO + "|" + exprTZ5, rankZone, getZone5, setZone5},
	tokZone4:      {"zzzz", UTCNameISO + "|" + exprTZ4, rankZone, getZone4, setZone4},
	tokZoneName:   {"Z", exprTZ + "|" + exprTZ2 + "|" + exprTZ4 + "|" + exprTZ5, rankZone, getZone, setZoneName},
	tokZoneName2:  {"ZZ", exprTZ + "|" + exprTZ2, rankZone, getZoneName2, setZoneName2},
	tokZoneName5:  {"ZZZ", exprTZ + "|" + exprTZ5, rankZone, getZoneName5, setZoneName5},
	tokZoneName4:  {"ZZZZ", exprTZ + "|" + exprTZ4, rankZone, getZoneName4, setZoneName4},
	tokZoneRFC822: {"ZZZz", exprTZ + "|" + exprTZ4 + "|[A-Ia-iK-Zk-z]", rankZone, getZoneName4, setZoneRFC822},
}

// tokenNames maps the name of every Token to it.
var tokenNames = func() map[string]Token {
	m := make(map[string]Token, numTokens)
	for t, def := range tokenDefs {
		m[def.name] = Token(t)
	}
	return m
}()

// maxTokenLen is the length of the longest token name.
var maxTokenLen = func() int {
	var n int
	for _, def := range tokenDefs {
		n = max(n, len(def.name))
	}
	return n
}()

// lookupToken returns the token with the longest name that is a prefix of s.
func lookupToken(s string) (tok Token, n int, ok bool) {
	for n = min(maxTokenLen, len(s)); n > 0; n-- {
		if tok, ok = tokenNames[s[:n]]; ok {
			return tok, n, true
		}
	}
	return 0, 0, false
}

// String returns the name of t, as used in patterns.
func (t Token) String() string {
	if t < 0 || t >= numTokens {
		return "Token(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenDefs[t].name
}

// Expr returns the regular expression matching the text of t.
func (t Token) Expr() string { return tokenDefs[t].expr }

// Format returns the text of t for d.
func (t Token) Format(d DateTime) string { return tokenDefs[t].get(d) }

// Set applies the text v of t to d. v must match Expr. It fails if v is out
// of range for the field.
func (t Token) Set(d *DateTime, v string) error { return tokenDefs[t].set(d, v) }

func (t Token) rank() rank { return tokenDefs[t].rank }

// Errors reported by Token.Set.
var (
	errMonthRange   = errors.New("month out of range")
	errDayRange     = errors.New("day out of range")
	errYearDayRange = errors.New("day-of-year out of range")
	errWeekRange    = errors.New("week out of range")
	errHourRange    = errors.New("hour out of range")
	errMinuteRange  = errors.New("minute out of range")
	errSecondRange  = errors.New("second out of range")
)

func itoa(n int) string { return strconv.Itoa(n) }

// pad formats n with at least width digits, keeping the sign in front.
func pad(n, width int) string {
	s := strconv.Itoa(abs(n))
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if n < 0 {
		return "-" + s
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// atoiRange parses v and checks that it is in [lo, hi].
func atoiRange(v string, lo, hi int, rangeErr error) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, rangeErr
	}
	return n, nil
}

func getUnixMilli(d DateTime) string { return strconv.FormatInt(d.UnixMilli(), 10) }

func setUnixMilli(d *DateTime, v string) error {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	d.SetUnixMilli(ms)
	return nil
}

func getYear(d DateTime) string  { return itoa(d.Year()) }
func getYear2(d DateTime) string { return pad(d.Year()%100, 2) }
func getYear4(d DateTime) string { return pad(d.Year(), 4) }

func setYear(d *DateTime, v string) error {
	y, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	d.SetYear(y)
	return nil
}

// setYear2 expands a two-digit year to the year closest to the current year
// of d that ends in those digits. Moving forward by exactly 50 years wins over
// moving backward.
func setYear2(d *DateTime, v string) error {
	val, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	y := d.Year()
	cur := y % 100
	up := 100 + val - cur
	if val > cur {
		up = val - cur
	}
	if up <= 50 {
		d.SetYear(y + up)
	} else {
		d.SetYear(y - (100 - up))
	}
	return nil
}

// setYear3 accepts both two-digit years, which are expanded like yy, and
// full years.
func setYear3(d *DateTime, v string) error {
	neg := strings.HasPrefix(v, "-")
	if (len(v) == 2 && !neg) || (len(v) == 3 && neg) {
		return setYear2(d, v)
	}
	return setYear(d, v)
}

func getMonth(d DateTime) string         { return itoa(int(d.Month())) }
func getMonth2(d DateTime) string        { return pad(int(d.Month()), 2) }
func getMonthName(d DateTime) string     { return shortMonthNames[d.Month()-1] }
func getLongMonthName(d DateTime) string { return longMonthNames[d.Month()-1] }

func setMonth(d *DateTime, v string) error {
	m, err := atoiRange(v, 1, 12, errMonthRange)
	if err != nil {
		return err
	}
	d.SetMonth(time.Month(m))
	return nil
}

func setMonthName(d *DateTime, v string) error {
	m, ok := ParseMonth(v)
	if !ok {
		return errMonthRange
	}
	d.SetMonth(m)
	return nil
}

func getDay(d DateTime) string     { return itoa(d.Day()) }
func getDay2(d DateTime) string    { return pad(d.Day(), 2) }
func getOrdinal(d DateTime) string { return ordinal(d.Day()) }

func getDaySpace(d DateTime) string {
	if day := d.Day(); day < 10 {
		return " " + itoa(day)
	}
	return itoa(d.Day())
}

// setDay sets the day of the month. Year and month are applied before, so
// the day must exist in them.
func setDay(d *DateTime, v string) error {
	day, err := atoiRange(v, 1, 31, errDayRange)
	if err != nil {
		return err
	}
	if day > daysIn(d.Month(), d.Year()) {
		return errDayRange
	}
	d.SetDay(day)
	return nil
}

func setDaySpace(d *DateTime, v string) error {
	return setDay(d, strings.TrimSpace(v))
}

func setOrdinal(d *DateTime, v string) error {
	return setDay(d, v[:len(v)-2])
}

func getYearDay(d DateTime) string  { return itoa(d.DayOfYear()) }
func getYearDay3(d DateTime) string { return pad(d.DayOfYear(), 3) }

func setYearDay(d *DateTime, v string) error {
	n, err := atoiRange(v, 0, 366, errYearDayRange)
	if err != nil {
		return err
	}
	d.SetDayOfYear(n)
	return nil
}

func getDayName(d DateTime) string     { return shortDayNames[d.Weekday()] }
func getLongDayName(d DateTime) string { return longDayNames[d.Weekday()] }

// setDayName moves d forward to the named day, which leaves it unchanged if
// the name agrees with the rest of the parsed date.
func setDayName(d *DateTime, v string) error {
	if wd, ok := ParseWeekday(v); ok {
		d.MoveToDay(wd, false, false)
	}
	return nil
}

func getWeek(d DateTime) string  { return itoa(d.WeekOfYear()) }
func getWeek2(d DateTime) string { return pad(d.WeekOfYear(), 2) }

func setWeek(d *DateTime, v string) error {
	w, err := atoiRange(v, 0, 53, errWeekRange)
	if err != nil {
		return err
	}
	d.SetWeekOfYear(w)
	return nil
}

func getHour(d DateTime) string  { return itoa(d.Hour()) }
func getHour2(d DateTime) string { return pad(d.Hour(), 2) }

func hour12(d DateTime) int {
	if h := d.Hour() % 12; h != 0 {
		return h
	}
	return 12
}

func getHour12(d DateTime) string   { return itoa(hour12(d)) }
func getHour12_2(d DateTime) string { return pad(hour12(d), 2) }

func setHour(d *DateTime, v string) error {
	h, err := atoiRange(v, 0, 23, errHourRange)
	if err != nil {
		return err
	}
	d.SetHour(h)
	return nil
}

// setHour12 sets the hour as is; 12 becomes midnight once a following "AM"
// is applied.
func setHour12(d *DateTime, v string) error {
	h, err := atoiRange(v, 0, 12, errHourRange)
	if err != nil {
		return err
	}
	d.SetHour(h)
	return nil
}

func getMeridiem(d DateTime) string       { return d.Meridiem() }
func getMeridiem1(d DateTime) string      { return d.Meridiem()[:1] }
func getMeridiemLower(d DateTime) string  { return strings.ToLower(d.Meridiem()) }
func getMeridiemLower1(d DateTime) string { return strings.ToLower(d.Meridiem()[:1]) }

func setMeridiem(d *DateTime, v string) error {
	d.SetMeridiem(v)
	return nil
}

func setMeridiem1(d *DateTime, v string) error {
	return setMeridiem(d, v+"m")
}

func getMinute(d DateTime) string  { return itoa(d.Minute()) }
func getMinute2(d DateTime) string { return pad(d.Minute(), 2) }
func getSecond(d DateTime) string  { return itoa(d.Second()) }
func getSecond2(d DateTime) string { return pad(d.Second(), 2) }

func setMinute(d *DateTime, v string) error {
	m, err := atoiRange(v, 0, 59, errMinuteRange)
	if err != nil {
		return err
	}
	d.SetMinute(m)
	return nil
}

func setSecond(d *DateTime, v string) error {
	s, err := atoiRange(v, 0, 59, errSecondRange)
	if err != nil {
		return err
	}
	d.SetSecond(s)
	return nil
}

// getFraction returns the significant digits of the fractional second, or
// "0".
func getFraction(d DateTime) string {
	ms := d.Millisecond()
	if ms == 0 {
		return "0"
	}
	return strings.TrimRight(pad(ms, 3), "0")
}

func getFraction2(d DateTime) string { return (getFraction(d) + "00")[:2] }
func getFraction3(d DateTime) string { return (getFraction(d) + "000")[:3] }

// setFraction interprets v as the digits after the decimal point, dropping
// everything beyond milliseconds.
func setFraction(d *DateTime, v string) error {
	v = (v + "00")[:3]
	ms, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	d.SetMillisecond(ms)
	return nil
}

// zoneSign returns the sign of the offset of d, as used in numeric zones.
func zoneSign(off int) string {
	if off >= 0 {
		return "-"
	}
	return "+"
}

func getZone(d DateTime) string {
	if d.TimezoneOffset() == 0 {
		return "-0000"
	}
	return getZone4(d)
}

func getZone2(d DateTime) string {
	off := d.TimezoneOffset()
	if off == 0 {
		return UTCNameISO
	}
	// Half hours round west: +05:30 is "+05", -03:30 is "-04".
	h := int(floorDiv(int64(off+30), 60))
	return zoneSign(off) + pad(abs(h), 2)
}

func getZone5(d DateTime) string {
	off := d.TimezoneOffset()
	if off == 0 {
		return UTCNameISO
	}
	return zoneSign(off) + pad(abs(off)/60, 2) + ":" + pad(abs(off)%60, 2)
}

func getZone4(d DateTime) string { return strings.Replace(getZone5(d), ":", "", 1) }

func setZone(d *DateTime, v string) error {
	if v == UTCNameISO {
		d.SetTimezoneOffset(0)
		return nil
	}
	return setNumericZone(d, v)
}

// setNumericZone dispatches on the length of the numeric zone v.
func setNumericZone(d *DateTime, v string) error {
	switch len(v) {
	case 3:
		return setZone2(d, v)
	case 5:
		return setZone4(d, v)
	case 6:
		return setZone5(d, v)
	}
	return nil
}

func setZone2(d *DateTime, v string) error {
	if v == UTCNameISO {
		d.SetTimezoneOffset(0)
		return nil
	}
	h, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	d.SetTimezoneOffset(-h * 60)
	return nil
}

// setZoneHM applies a zone given as sign, hours and minutes.
func setZoneHM(d *DateTime, sign byte, hh, mm string) error {
	h, err := strconv.Atoi(hh)
	if err != nil {
		return err
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return err
	}
	off := h*60 + m
	if sign != '-' {
		off = -off
	}
	d.SetTimezoneOffset(off)
	return nil
}

func setZone5(d *DateTime, v string) error {
	if v == UTCNameISO {
		d.SetTimezoneOffset(0)
		return nil
	}
	return setZoneHM(d, v[0], v[1:3], v[4:6])
}

func setZone4(d *DateTime, v string) error {
	if v == UTCNameISO {
		d.SetTimezoneOffset(0)
		return nil
	}
	return setZoneHM(d, v[0], v[1:3], v[3:5])
}

// zoneAbbrev returns the abbreviation of the zone of d, if it is UTC or one
// of the known US zones.
func zoneAbbrev(d DateTime) (string, bool) {
	off := d.TimezoneOffset()
	if off == 0 {
		return UTCName, true
	}
	return zoneName(off, d.IsDST())
}

func getZoneName2(d DateTime) string {
	if name, ok := zoneAbbrev(d); ok {
		return name
	}
	return getZone2(d)
}

func getZoneName5(d DateTime) string {
	if name, ok := zoneAbbrev(d); ok {
		return name
	}
	return getZone5(d)
}

func getZoneName4(d DateTime) string { return strings.Replace(getZoneName5(d), ":", "", 1) }

// setNamedZone applies v if it is a zone abbreviation and reports whether it
// was one. Unknown abbreviations are ignored.
func setNamedZone(d *DateTime, v string) bool {
	if v == "" || v[0] == '+' || v[0] == '-' {
		return false
	}
	if off, ok := ZoneOffset(v); ok {
		d.SetTimezoneOffset(off)
	}
	return true
}

func setZoneName(d *DateTime, v string) error {
	if setNamedZone(d, v) {
		return nil
	}
	return setNumericZone(d, v)
}

func setZoneName2(d *DateTime, v string) error {
	if setNamedZone(d, v) {
		return nil
	}
	return setZone2(d, v)
}

func setZoneName5(d *DateTime, v string) error {
	if setNamedZone(d, v) {
		return nil
	}
	return setZone5(d, v)
}

func setZoneName4(d *DateTime, v string) error {
	if setNamedZone(d, v) {
		return nil
	}
	return setZone4(d, v)
}

// setZoneRFC822 ignores the single-letter military zones of RFC 822, which
// RFC 1123 recommends treating as unknown.
func setZoneRFC822(d *DateTime, v string) error {
	if len(v) == 1 {
		return nil
	}
	return setZoneName4(d, v)
}
