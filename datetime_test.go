// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	t.Parallel()
	tt := time.Date(2024, time.March, 5, 14, 7, 9, 120_999_999, time.UTC)
	d := FromTime(tt)
	if got, want := d.Millisecond(), 120; got != want {
		t.Errorf("FromTime(%v).Millisecond() = %d, want %d", tt, got, want)
	}
	if got, want := d.UnixMilli(), tt.UnixMilli(); got != want {
		t.Errorf("FromTime(%v).UnixMilli() = %d, want %d", tt, got, want)
	}
	if !From(d).Equal(d) || From(d).Location() != time.UTC {
		t.Errorf("From(%#v) = %#v", d, From(d))
	}
	if got := From(Millis(86400000)); !got.Equal(Date(1970, time.January, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("From(Millis(86400000)) = %#v", got)
	}
}

func TestNow(t *testing.T) {
	fixed := time.Date(2024, time.March, 5, 14, 7, 9, 120_500_000, time.UTC)
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return fixed }

	if got, want := Now().UnixMilli(), fixed.UnixMilli(); got != want {
		t.Errorf("Now().UnixMilli() = %d, want %d", got, want)
	}
	today := Today()
	if h, m, s := today.DateTime().Clock(); h != 0 || m != 0 || s != 0 || today.DateTime().Millisecond() != 0 {
		t.Errorf("Today() = %#v, want midnight", today.DateTime())
	}
}

func TestSetters(t *testing.T) {
	t.Parallel()
	d := Date(2024, time.January, 31, 10, 20, 30, 400, time.UTC)
	d.SetYear(2023).SetMonth(time.March).SetDay(15).SetHour(1).SetMinute(2).SetSecond(3).SetMillisecond(4)
	if want := Date(2023, time.March, 15, 1, 2, 3, 4, time.UTC); !d.Equal(want) {
		t.Errorf("got %#v, want %#v", d, want)
	}
	d.ClearTime()
	if want := Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC); !d.Equal(want) {
		t.Errorf("ClearTime() = %#v, want %#v", d, want)
	}
	// February 29 overflows in non-leap years.
	d = Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if want := Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC); !d.SetYear(2023).Equal(want) {
		t.Errorf("SetYear(2023) = %#v, want %#v", d, want)
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	d := Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	if got, want := d.Plus(Span(1, 1, 1, 0, 0, 0)), Date(2024, time.March, 13, 13, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Plus = %#v, want %#v", got, want)
	}
	if got, want := d.Minus(Day), Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Minus = %#v, want %#v", got, want)
	}
	if !d.Equal(Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Plus and Minus modified their receiver")
	}
	later := d.Plus(90 * Minute)
	if got := later.Diff(d); got != 90*Minute {
		t.Errorf("Diff = %v, want %v", got, 90*Minute)
	}
	if got := d.Diff(later); got != 90*Minute {
		t.Errorf("Diff is not absolute: %v", got)
	}
	if !d.Before(later) || !later.After(d) || d.Compare(d) != 0 {
		t.Errorf("comparisons are inconsistent")
	}
	c := d.Clone()
	c.Add(Hour)
	if d.Equal(c) {
		t.Errorf("Clone shares state")
	}
	c.Subtract(Hour)
	if !d.Equal(c) {
		t.Errorf("Subtract(Hour) does not undo Add(Hour)")
	}
}

func TestAddMonths(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		d    DateTime
		n    int
		want DateTime
	}{
		{Date(2000, time.January, 31, 8, 0, 0, 0, time.UTC), 1, Date(2000, time.February, 29, 8, 0, 0, 0, time.UTC)},
		{Date(2001, time.January, 31, 8, 0, 0, 0, time.UTC), 1, Date(2001, time.February, 28, 8, 0, 0, 0, time.UTC)},
		{Date(2000, time.March, 31, 0, 0, 0, 0, time.UTC), -1, Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{Date(2000, time.November, 15, 0, 0, 0, 0, time.UTC), 3, Date(2001, time.February, 15, 0, 0, 0, 0, time.UTC)},
		{Date(2000, time.January, 15, 0, 0, 0, 0, time.UTC), -13, Date(1998, time.December, 15, 0, 0, 0, 0, time.UTC)},
		{Date(2000, time.May, 31, 0, 0, 0, 0, time.UTC), 0, Date(2000, time.May, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tcs {
		got := tc.d
		got.AddMonths(tc.n)
		if !got.Equal(tc.want) {
			t.Errorf("%#v.AddMonths(%d) = %#v, want %#v", tc.d, tc.n, got, tc.want)
		}
	}
	d := Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)
	if want := Date(2001, time.February, 28, 0, 0, 0, 0, time.UTC); !d.AddYears(1).Equal(want) {
		t.Errorf("AddYears(1) = %#v, want %#v", d, want)
	}
}

func TestMoveToDay(t *testing.T) {
	t.Parallel()
	wed := Date(2024, time.March, 6, 9, 30, 0, 0, time.UTC)
	tcs := []struct {
		day       time.Weekday
		force     bool
		backwards bool
		want      int // day of March 2024
	}{
		{time.Wednesday, false, false, 6},
		{time.Wednesday, true, false, 13},
		{time.Wednesday, true, true, -1},
		{time.Friday, false, false, 8},
		{time.Friday, true, false, 8},
		{time.Monday, false, true, 4},
		{time.Monday, true, true, 4},
		{time.Sunday, false, false, 10},
	}
	for _, tc := range tcs {
		got := wed
		got.MoveToDay(tc.day, tc.force, tc.backwards)
		want := Date(2024, time.March, tc.want, 9, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("MoveToDay(%v, %v, %v) = %#v, want %#v", tc.day, tc.force, tc.backwards, got, want)
		}
	}
}

func TestMoveToDayDST(t *testing.T) {
	t.Parallel()
	ny := mustLoad(t, "America/New_York")
	// DST starts on Sunday, March 10 2024.
	d := Date(2024, time.March, 8, 0, 0, 0, 0, ny)
	d.MoveToDay(time.Tuesday, false, false)
	if want := Date(2024, time.March, 12, 0, 0, 0, 0, ny); !d.Equal(want) {
		t.Errorf("MoveToDay across DST = %#v, want %#v", d, want)
	}
}

func TestWeek(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		year  int
		month time.Month
		day   int
		wyear int
		week  int
	}{
		{2012, time.January, 1, 2012, 1},
		{2011, time.January, 1, 2010, 52},
		{2024, time.March, 5, 2024, 10},
		{2024, time.July, 4, 2024, 27},
		{2024, time.December, 31, 2025, 1},
		{2021, time.January, 3, 2021, 1},
		{2021, time.January, 2, 2020, 53},
	}
	for _, tc := range tcs {
		d := Date(tc.year, tc.month, tc.day, 12, 0, 0, 0, time.UTC)
		wy, w := d.Week()
		if wy != tc.wyear || w != tc.week {
			t.Errorf("%#v.Week() = %d, %d, want %d, %d", d, wy, w, tc.wyear, tc.week)
		}
		if got := d.WeekOfYear(); got != tc.week {
			t.Errorf("%#v.WeekOfYear() = %d, want %d", d, got, tc.week)
		}
	}

	d := Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	d.SetWeekOfYear(1)
	if want := Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC); !d.Equal(want) {
		t.Errorf("SetWeekOfYear(1) = %#v, want %#v", d, want)
	}
}

func TestDayOfYear(t *testing.T) {
	t.Parallel()
	ny := mustLoad(t, "America/New_York")
	d := Date(2024, time.December, 31, 23, 0, 0, 0, ny)
	if got := d.DayOfYear(); got != 366 {
		t.Errorf("DayOfYear() = %d, want 366", got)
	}
	d.SetDayOfYear(60)
	if want := Date(2024, time.February, 29, 23, 0, 0, 0, ny); !d.Equal(want) {
		t.Errorf("SetDayOfYear(60) = %#v, want %#v", d, want)
	}
	d.SetDayOfYear(0)
	if want := Date(2023, time.December, 31, 23, 0, 0, 0, ny); !d.Equal(want) {
		t.Errorf("SetDayOfYear(0) = %#v, want %#v", d, want)
	}
}

// FuzzCalendar checks calendar calculations against package time.
func FuzzCalendar(f *testing.F) {
	f.Add(2024, 3, 5)
	f.Add(2000, 12, 31)
	f.Add(1900, 2, 28)
	f.Add(-44, 3, 15)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		if year < -9999 || year > 9999 || month < -1000 || month > 1000 || day < -100000 || day > 100000 {
			return
		}
		d := Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
		tt := d.Time()
		if got, want := d.DayOfYear(), tt.YearDay(); got != want {
			t.Fatalf("%#v.DayOfYear() = %d, want %d", d, got, want)
		}
		// Our weeks start on Sunday. Moving Sundays forward by a day
		// yields the same week in ISO numbering.
		if tt.Weekday() == time.Sunday {
			tt = tt.AddDate(0, 0, 1)
		}
		wy, w := d.Week()
		iy, iw := tt.ISOWeek()
		if wy != iy || w != iw {
			t.Fatalf("%#v.Week() = %d, %d, want %d, %d", d, wy, w, iy, iw)
		}
	})
}

func TestTimezoneOffset(t *testing.T) {
	t.Parallel()
	ny := mustLoad(t, "America/New_York")
	tcs := []struct {
		d     DateTime
		off   int
		hours int
		dst   bool
	}{
		{Date(2024, time.January, 15, 12, 0, 0, 0, ny), 300, 5, false},
		{Date(2024, time.July, 15, 12, 0, 0, 0, ny), 240, 4, true},
		{Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC), 0, 0, false},
		{Date(2024, time.July, 15, 12, 0, 0, 0, time.FixedZone("", 5*3600+1800)), -330, -6, false},
		{Date(2024, time.January, 15, 12, 0, 0, 0, mustLoad(t, "Australia/Sydney")), -660, -11, true},
	}
	for _, tc := range tcs {
		if got := tc.d.TimezoneOffset(); got != tc.off {
			t.Errorf("%#v.TimezoneOffset() = %d, want %d", tc.d, got, tc.off)
		}
		if got := tc.d.TimezoneOffsetHours(); got != tc.hours {
			t.Errorf("%#v.TimezoneOffsetHours() = %d, want %d", tc.d, got, tc.hours)
		}
		if got := tc.d.IsDST(); got != tc.dst {
			t.Errorf("%#v.IsDST() = %v, want %v", tc.d, got, tc.dst)
		}
	}
}

func TestSetTimezoneOffset(t *testing.T) {
	t.Parallel()
	ny := mustLoad(t, "America/New_York")
	d := Date(2024, time.January, 15, 12, 0, 0, 0, ny)
	d.SetTimezoneOffset(0)
	if want := Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC); !d.Equal(want) {
		t.Errorf("SetTimezoneOffset(0) = %#v, want %#v", d, want)
	}
	d = Date(2024, time.January, 15, 12, 0, 0, 0, ny)
	d.SetTimezoneOffset(-60)
	if want := Date(2024, time.January, 15, 11, 0, 0, 0, time.UTC); !d.Equal(want) {
		t.Errorf("SetTimezoneOffset(-60) = %#v, want %#v", d, want)
	}
}

func TestMeridiem(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		hour int
		val  string
		want int
	}{
		{0, "AM", 0},
		{0, "pm", 12},
		{11, "PM", 23},
		{12, "AM", 0},
		{12, "pm", 12},
		{15, "am", 3},
		{15, "xx", 15},
	}
	for _, tc := range tcs {
		d := Date(2024, time.March, 5, tc.hour, 0, 0, 0, time.UTC)
		if got := d.SetMeridiem(tc.val).Hour(); got != tc.want {
			t.Errorf("hour %d: SetMeridiem(%q) gives hour %d, want %d", tc.hour, tc.val, got, tc.want)
		}
	}
}

func TestMarshalText(t *testing.T) {
	t.Parallel()
	d := Date(2024, time.March, 5, 14, 7, 9, 120, time.FixedZone("", 3600))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `"2024-03-05T13:07:09.120Z"`; got != want {
		t.Errorf("json.Marshal = %s, want %s", got, want)
	}
	var got DateTime
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(d) {
		t.Errorf("json.Unmarshal(%s) = %#v, want %#v", b, got, d)
	}
	if err := got.UnmarshalText([]byte("2024-03-05")); err == nil {
		t.Errorf("UnmarshalText accepted a date")
	}
}

func TestGoString(t *testing.T) {
	t.Parallel()
	d := Date(2024, time.March, 5, 14, 7, 9, 120, time.UTC)
	if got, want := d.GoString(), `datetime.Date(2024, 3, 5, 14, 7, 9, 120, "UTC")`; got != want {
		t.Errorf("GoString() = %s, want %s", got, want)
	}
}
