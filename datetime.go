// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime contains date and time value types with a pattern-based
// formatting and parsing engine.
//
// A [DateTime] is a point in time with millisecond resolution. Its calendar
// fields are always computed in the value's own location, which is
// [time.Local] unless the value was created in or converted to another one.
// A [DateOnly] is a DateTime whose clock is always midnight. A [Duration] is
// an elapsed amount of time in milliseconds.
//
// Values are formatted and parsed using patterns, which are compiled once and
// cached. See [Compile] for the pattern syntax. The package comes with
// patterns for many established standards, like [RFC1123] or [ISOJSON].
//
// Compared to the layouts of package time, patterns can express optional
// parts (for example an optional day name or fractional seconds), accept one
// of several separators, and round-trip zone abbreviations like "EST".
package datetime

import (
	"fmt"
	"strings"
	"time"
)

// now is the source of the current instant.
var now = time.Now

// A Value is a point in time with calendar semantics. It is implemented by
// [DateTime] and [DateOnly].
type Value interface {
	Amount
	// Time returns the instant in the value's location.
	Time() time.Time
	Date() (year int, month time.Month, day int)
	Weekday() time.Weekday
	DayOfYear() int
	WeekOfYear() int
}

// A DateTime represents an instant with millisecond precision, together with
// the location its calendar fields are computed in.
//
// Two DateTimes are equal if they represent the same instant, which should be
// checked with [DateTime.Equal] rather than ==.
//
// Methods with a pointer receiver modify the value in place and return it, to
// allow chaining. Plus, Minus and Diff leave their receiver unchanged.
type DateTime struct {
	t time.Time
}

// Now returns the current instant, in the local timezone.
func Now() DateTime {
	return FromTime(now())
}

// FromTime returns the DateTime of t, truncated to millisecond precision.
func FromTime(t time.Time) DateTime {
	return DateTime{t.Truncate(time.Millisecond)}
}

// UnixMilli returns the local DateTime ms milliseconds after the Unix epoch.
func UnixMilli(ms int64) DateTime {
	return DateTime{time.UnixMilli(ms)}
}

// From returns a copy of a. If a is a Value, the copy keeps its location.
// Otherwise a is interpreted as milliseconds since the Unix epoch.
func From(a Amount) DateTime {
	if v, ok := a.(Value); ok {
		return FromTime(v.Time())
	}
	return UnixMilli(a.Millis())
}

// Of returns local midnight of the given date.
//
// The arguments may be outside their usual ranges and will be normalized, just
// as for [time.Date].
func Of(year int, month time.Month, day int) DateTime {
	return Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// Date returns the DateTime with the given calendar fields in loc. It
// normalizes its arguments like [time.Date] and panics if loc is nil.
func Date(year int, month time.Month, day, hour, min, sec, msec int, loc *time.Location) DateTime {
	return DateTime{time.Date(year, month, day, hour, min, sec, msec*int(time.Millisecond), loc)}
}

// Time returns d as a [time.Time].
func (d DateTime) Time() time.Time { return d.t }

// Millis implements Amount. It returns d.UnixMilli().
func (d DateTime) Millis() int64 { return d.t.UnixMilli() }

// UnixMilli returns the number of milliseconds since the Unix epoch.
func (d DateTime) UnixMilli() int64 { return d.t.UnixMilli() }

// Location returns the location the calendar fields of d are computed in.
func (d DateTime) Location() *time.Location { return d.t.Location() }

// In returns the same instant with calendar fields computed in loc.
func (d DateTime) In(loc *time.Location) DateTime { return DateTime{d.t.In(loc)} }

// UTC returns the same instant with calendar fields computed in UTC.
func (d DateTime) UTC() DateTime { return DateTime{d.t.UTC()} }

// Local returns the same instant with calendar fields computed in the local
// timezone.
func (d DateTime) Local() DateTime { return DateTime{d.t.Local()} }

// Date returns the year, month and day of d.
func (d DateTime) Date() (year int, month time.Month, day int) { return d.t.Date() }

// Clock returns the hour, minute and second of d.
func (d DateTime) Clock() (hour, min, sec int) { return d.t.Clock() }

func (d DateTime) Year() int             { return d.t.Year() }
func (d DateTime) Month() time.Month     { return d.t.Month() }
func (d DateTime) Day() int              { return d.t.Day() }
func (d DateTime) Hour() int             { return d.t.Hour() }
func (d DateTime) Minute() int           { return d.t.Minute() }
func (d DateTime) Second() int           { return d.t.Second() }
func (d DateTime) Weekday() time.Weekday { return d.t.Weekday() }

// Millisecond returns the millisecond offset within the second, in the range
// [0, 999].
func (d DateTime) Millisecond() int { return d.t.Nanosecond() / int(time.Millisecond) }

// Equal reports whether d and v represent the same instant.
func (d DateTime) Equal(v Amount) bool { return d.Millis() == v.Millis() }

// Compare returns -1, 0 or +1 depending on whether d is before, at the same
// instant as or after v.
func (d DateTime) Compare(v Amount) int {
	a, b := d.Millis(), v.Millis()
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

func (d DateTime) Before(v Amount) bool { return d.Compare(v) < 0 }
func (d DateTime) After(v Amount) bool  { return d.Compare(v) > 0 }

// Clone returns a copy of d.
func (d DateTime) Clone() DateTime { return d }

// set replaces the calendar fields of d, normalizing like time.Date.
func (d *DateTime) set(year int, month time.Month, day, hour, min, sec, msec int) *DateTime {
	*d = Date(year, month, day, hour, min, sec, msec, d.t.Location())
	return d
}

// SetDate sets the year, month and day of d, keeping its clock.
func (d *DateTime) SetDate(year int, month time.Month, day int) *DateTime {
	h, m, s := d.t.Clock()
	return d.set(year, month, day, h, m, s, d.Millisecond())
}

// SetYear sets the year of d, keeping month and day. February 29 overflows
// into March in non-leap years.
func (d *DateTime) SetYear(year int) *DateTime {
	_, m, day := d.t.Date()
	return d.SetDate(year, m, day)
}

// SetMonth sets the month of d, keeping the day, which may overflow into the
// following month.
func (d *DateTime) SetMonth(month time.Month) *DateTime {
	y, _, day := d.t.Date()
	return d.SetDate(y, month, day)
}

// SetDay sets the day of the month of d.
func (d *DateTime) SetDay(day int) *DateTime {
	y, m, _ := d.t.Date()
	return d.SetDate(y, m, day)
}

// SetClock sets the time of day of d.
func (d *DateTime) SetClock(hour, min, sec, msec int) *DateTime {
	y, m, day := d.t.Date()
	return d.set(y, m, day, hour, min, sec, msec)
}

func (d *DateTime) SetHour(hour int) *DateTime {
	_, m, s := d.t.Clock()
	return d.SetClock(hour, m, s, d.Millisecond())
}

func (d *DateTime) SetMinute(min int) *DateTime {
	h, _, s := d.t.Clock()
	return d.SetClock(h, min, s, d.Millisecond())
}

func (d *DateTime) SetSecond(sec int) *DateTime {
	h, m, _ := d.t.Clock()
	return d.SetClock(h, m, sec, d.Millisecond())
}

func (d *DateTime) SetMillisecond(msec int) *DateTime {
	h, m, s := d.t.Clock()
	return d.SetClock(h, m, s, msec)
}

// SetUnixMilli moves d to the instant ms milliseconds after the Unix epoch,
// keeping its location.
func (d *DateTime) SetUnixMilli(ms int64) *DateTime {
	d.t = time.UnixMilli(ms).In(d.t.Location())
	return d
}

// ClearTime sets the clock of d to midnight.
func (d *DateTime) ClearTime() *DateTime {
	return d.SetClock(0, 0, 0, 0)
}

// Add moves d forward by a.
func (d *DateTime) Add(a Amount) *DateTime {
	d.t = d.t.Add(time.Duration(a.Millis()) * time.Millisecond)
	return d
}

// Subtract moves d backward by a.
func (d *DateTime) Subtract(a Amount) *DateTime {
	d.t = d.t.Add(-time.Duration(a.Millis()) * time.Millisecond)
	return d
}

// Plus returns d moved forward by a.
func (d DateTime) Plus(a Amount) DateTime { return *d.Add(a) }

// Minus returns d moved backward by a.
func (d DateTime) Minus(a Amount) DateTime { return *d.Subtract(a) }

// Diff returns the absolute amount of time between d and v.
func (d DateTime) Diff(v Amount) Duration {
	diff := Duration(d.Millis() - v.Millis())
	if diff < 0 {
		return -diff
	}
	return diff
}

// addDays moves d by n calendar days, keeping its clock.
func (d *DateTime) addDays(n int) *DateTime {
	d.t = d.t.AddDate(0, 0, n)
	return d
}

// AddMonths moves d by n months. The month always advances by exactly n: if
// the day of d does not exist in the target month, d moves to the last day
// of that month instead. For example, January 31 plus one month is the last
// day of February.
func (d *DateTime) AddMonths(n int) *DateTime {
	y, m, day := d.t.Date()
	y, mi := norm(y, int(m)-1+n, 12)
	month := time.Month(mi + 1)
	day = min(day, daysIn(month, y))
	return d.SetDate(y, month, day)
}

// AddYears moves d by n years, see AddMonths.
func (d *DateTime) AddYears(n int) *DateTime {
	return d.AddMonths(12 * n)
}

// MoveToDay steps d one day at a time until it falls on the given weekday,
// forward by default or backward if backwards is set. If force is set, d
// moves at least one day, so it moves by a full week if it already is on the
// weekday.
func (d *DateTime) MoveToDay(day time.Weekday, force, backwards bool) *DateTime {
	day = (day%7 + 7) % 7
	step := 1
	if backwards {
		step = -1
	}
	if force {
		d.addDays(step)
	}
	for d.Weekday() != day {
		d.addDays(step)
	}
	return d
}

// midnightUTC returns midnight of the calendar date of d as a UTC instant, so
// that differences between dates are whole days regardless of DST.
func (d DateTime) midnightUTC() DateTime {
	y, m, day := d.t.Date()
	return Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DayOfYear returns the day of the year of d, in the range [1,365] for
// non-leap years, and [1,366] in leap years.
func (d DateTime) DayOfYear() int {
	cur := d.midnightUTC()
	first := Date(cur.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(cur.Diff(first).DivideBy(Day)) + 1
}

// SetDayOfYear moves d to the n-th day of its current year, keeping its
// clock. Zero moves to the last day of the previous year and values beyond
// the length of the year move into the next one.
func (d *DateTime) SetDayOfYear(n int) *DateTime {
	return d.addDays(n - d.DayOfYear())
}

// Week returns the year and number of the week d falls in. Weeks run from
// Sunday to Saturday. Week 1 is the week containing the first Thursday of the
// year, so the first days of January may belong to the last week of the
// previous year, and the last days of December to week 1 of the next one.
func (d DateTime) Week() (year, week int) {
	thu := d.midnightUTC()
	thu.addDays(int(time.Thursday - d.Weekday()))
	first := Date(thu.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return thu.Year(), int(thu.Diff(first).DivideBy(Week)) + 1
}

// WeekOfYear returns the week number of d. See Week.
func (d DateTime) WeekOfYear() int {
	_, w := d.Week()
	return w
}

// SetWeekOfYear moves d by whole weeks, so that it falls on the same weekday
// in week n of its week-numbering year. See Week.
func (d *DateTime) SetWeekOfYear(n int) *DateTime {
	return d.addDays(7 * (n - d.WeekOfYear()))
}

// TimezoneOffset returns the difference between UTC and the location of d
// at the instant of d, in minutes. Like JavaScript's getTimezoneOffset, it
// is positive west of UTC: 300 for EST.
func (d DateTime) TimezoneOffset() int {
	_, off := d.t.Zone()
	return -off / 60
}

// TimezoneOffsetHours returns TimezoneOffset in full hours, rounded towards
// negative infinity.
func (d DateTime) TimezoneOffsetHours() int {
	return int(floorDiv(int64(d.TimezoneOffset()), 60))
}

// IsDST reports whether d falls into daylight saving time of its location.
// That is the case if the offsets at January 1 and July 1 of its year differ
// and d has the eastern one of them.
func (d DateTime) IsDST() bool {
	y, loc := d.Year(), d.Location()
	jan := Date(y, time.January, 1, 0, 0, 0, 0, loc).TimezoneOffset()
	jul := Date(y, time.July, 1, 0, 0, 0, 0, loc).TimezoneOffset()
	return jan != jul && d.TimezoneOffset() == min(jan, jul)
}

// SetTimezoneOffset reinterprets the calendar fields of d as being given in a
// zone with the given offset (in minutes west of UTC, see TimezoneOffset) and
// moves d to the instant they denote.
//
// For example, if d is 12:00 in New York (EST, offset 300), then
// d.SetTimezoneOffset(0) moves it to 12:00 UTC, which is 07:00 EST.
func (d *DateTime) SetTimezoneOffset(minutes int) *DateTime {
	diff := d.TimezoneOffset() - minutes
	d.t = d.t.Add(-time.Duration(diff) * time.Minute)
	return d
}

// Meridiem returns "AM" or "PM".
func (d DateTime) Meridiem() string {
	if d.Hour() < 12 {
		return "AM"
	}
	return "PM"
}

// SetMeridiem moves d by 12 hours if needed, so that Meridiem returns val,
// ignoring case. Other values leave d unchanged.
func (d *DateTime) SetMeridiem(val string) *DateTime {
	if strings.EqualFold(d.Meridiem(), val) {
		return d
	}
	switch {
	case strings.EqualFold(val, "PM"):
		d.SetHour(d.Hour() + 12)
	case strings.EqualFold(val, "AM"):
		d.SetHour(d.Hour() - 12)
	}
	return d
}

// Format returns a textual representation of d according to pattern. See
// Compile for the syntax. It only fails if the pattern is malformed.
func (d DateTime) Format(pattern string) (string, error) {
	return Format(d, pattern)
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source
// code.
func (d DateTime) GoString() string {
	y, m, day := d.Date()
	h, min, s := d.Clock()
	return fmt.Sprintf("datetime.Date(%d, %d, %d, %d, %d, %d, %d, %q)", y, m, day, h, min, s, d.Millisecond(), d.Location())
}

// MarshalText implements the encoding.TextMarshaler interface. The instant is
// formatted according to ISOJSON.
func (d DateTime) MarshalText() ([]byte, error) {
	p, err := Compile(ISOJSON)
	if err != nil {
		return nil, err
	}
	return []byte(p.Format(d)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// must be in ISOJSON format; the result is in the local timezone.
func (d *DateTime) UnmarshalText(b []byte) error {
	v, err := Parse(ISOJSON, string(b))
	if err == nil {
		*d = v
	}
	return err
}
