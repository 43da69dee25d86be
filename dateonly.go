// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"time"
)

// A DateOnly is a calendar date. It is represented as the instant of midnight
// of that date in its location, and its clock is always midnight, after
// construction and after every modification.
//
// The zero value is midnight of January 1, year 1, UTC.
type DateOnly struct {
	d DateTime
}

// dateOnly returns the DateOnly of the calendar date of d, in the location
// of d.
func dateOnly(d DateTime) DateOnly {
	d.ClearTime()
	return DateOnly{d}
}

// DateOf returns the given date in the local timezone. The arguments are
// normalized like for [time.Date].
func DateOf(year int, month time.Month, day int) DateOnly {
	return DateIn(year, month, day, time.Local)
}

// DateIn returns the given date in loc.
func DateIn(year int, month time.Month, day int, loc *time.Location) DateOnly {
	return DateOnly{Date(year, month, day, 0, 0, 0, 0, loc)}
}

// Today returns the current date in the local timezone.
func Today() DateOnly {
	return dateOnly(Now())
}

// DateFrom returns the date a falls on. If a is a Value, its location is
// used. Otherwise a is interpreted as milliseconds since the Unix epoch in
// the local timezone.
func DateFrom(a Amount) DateOnly {
	return dateOnly(From(a))
}

// DateTime returns midnight of d as a DateTime.
func (d DateOnly) DateTime() DateTime { return d.d }

// Time returns midnight of d as a [time.Time].
func (d DateOnly) Time() time.Time { return d.d.Time() }

// Millis implements Amount. It returns d.UnixMilli().
func (d DateOnly) Millis() int64 { return d.d.Millis() }

// UnixMilli returns the milliseconds between the Unix epoch and midnight of d.
func (d DateOnly) UnixMilli() int64 { return d.d.UnixMilli() }

func (d DateOnly) Location() *time.Location                    { return d.d.Location() }
func (d DateOnly) Date() (year int, month time.Month, day int) { return d.d.Date() }
func (d DateOnly) Year() int                                   { return d.d.Year() }
func (d DateOnly) Month() time.Month                           { return d.d.Month() }
func (d DateOnly) Day() int                                    { return d.d.Day() }
func (d DateOnly) Weekday() time.Weekday                       { return d.d.Weekday() }
func (d DateOnly) DayOfYear() int                              { return d.d.DayOfYear() }
func (d DateOnly) WeekOfYear() int                             { return d.d.WeekOfYear() }
func (d DateOnly) Week() (year, week int)                      { return d.d.Week() }
func (d DateOnly) Equal(v Amount) bool                         { return d.d.Equal(v) }
func (d DateOnly) Compare(v Amount) int                        { return d.d.Compare(v) }
func (d DateOnly) Before(v Amount) bool                        { return d.d.Before(v) }
func (d DateOnly) After(v Amount) bool                         { return d.d.After(v) }
func (d DateOnly) Diff(v Amount) Duration                      { return d.d.Diff(v) }
func (d DateOnly) IsDST() bool                                 { return d.d.IsDST() }
func (d DateOnly) Format(pattern string) (string, error)       { return Format(d, pattern) }
func (d DateOnly) ToString(spec string) string                 { return d.d.ToString(spec) }
func (d DateOnly) String() string                              { return d.d.t.Format(layoutDate) }
func (d DateOnly) In(loc *time.Location) DateOnly              { return DateIn(d.Year(), d.Month(), d.Day(), loc) }

// Plus returns the date d falls on after moving it forward by a.
func (d DateOnly) Plus(a Amount) DateOnly { return dateOnly(d.d.Plus(a)) }

// Minus returns the date d falls on after moving it backward by a.
func (d DateOnly) Minus(a Amount) DateOnly { return dateOnly(d.d.Minus(a)) }

// update applies f to the DateTime of d and resets the clock.
func (d *DateOnly) update(f func(*DateTime)) *DateOnly {
	f(&d.d)
	*d = dateOnly(d.d)
	return d
}

func (d *DateOnly) SetDate(year int, month time.Month, day int) *DateOnly {
	return d.update(func(t *DateTime) { t.SetDate(year, month, day) })
}

func (d *DateOnly) SetYear(year int) *DateOnly {
	return d.update(func(t *DateTime) { t.SetYear(year) })
}

func (d *DateOnly) SetMonth(month time.Month) *DateOnly {
	return d.update(func(t *DateTime) { t.SetMonth(month) })
}

func (d *DateOnly) SetDay(day int) *DateOnly {
	return d.update(func(t *DateTime) { t.SetDay(day) })
}

// Add moves d forward by a. If a is not a whole number of days, d moves to
// the date the resulting instant falls on.
func (d *DateOnly) Add(a Amount) *DateOnly {
	return d.update(func(t *DateTime) { t.Add(a) })
}

// Subtract moves d backward by a, see Add.
func (d *DateOnly) Subtract(a Amount) *DateOnly {
	return d.update(func(t *DateTime) { t.Subtract(a) })
}

// AddDays moves d by n calendar days.
func (d *DateOnly) AddDays(n int) *DateOnly {
	return d.update(func(t *DateTime) { t.addDays(n) })
}

// AddMonths moves d by n months, see [DateTime.AddMonths].
func (d *DateOnly) AddMonths(n int) *DateOnly {
	return d.update(func(t *DateTime) { t.AddMonths(n) })
}

func (d *DateOnly) AddYears(n int) *DateOnly {
	return d.update(func(t *DateTime) { t.AddYears(n) })
}

// MoveToDay moves d to the given weekday, see [DateTime.MoveToDay].
func (d *DateOnly) MoveToDay(day time.Weekday, force, backwards bool) *DateOnly {
	return d.update(func(t *DateTime) { t.MoveToDay(day, force, backwards) })
}

func (d *DateOnly) SetDayOfYear(n int) *DateOnly {
	return d.update(func(t *DateTime) { t.SetDayOfYear(n) })
}

func (d *DateOnly) SetWeekOfYear(n int) *DateOnly {
	return d.update(func(t *DateTime) { t.SetWeekOfYear(n) })
}

// ParseDate parses text according to pattern and returns the date of the
// result in the local timezone. Any clock in the text is dropped.
func ParseDate(pattern, text string) (DateOnly, error) {
	return ParseDateIn(pattern, text, time.Local)
}

// ParseDateIn is like ParseDate, but uses loc instead of the local timezone.
func ParseDateIn(pattern, text string, loc *time.Location) (DateOnly, error) {
	d, err := ParseIn(pattern, text, loc)
	if err != nil {
		return DateOnly{}, err
	}
	return dateOnly(d), nil
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted according to DateXML.
func (d DateOnly) MarshalText() ([]byte, error) {
	p, err := Compile(DateXML)
	if err != nil {
		return nil, err
	}
	return []byte(p.Format(d)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The text
// must be in DateXML format; the result is in the local timezone.
func (d *DateOnly) UnmarshalText(b []byte) error {
	v, err := ParseDate(DateXML, string(b))
	if err == nil {
		*d = v
	}
	return err
}
