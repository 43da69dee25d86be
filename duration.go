// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"time"
)

// A Duration is an elapsed amount of time, counted in milliseconds. Unlike
// [time.Duration] it has the same resolution as a [DateTime] instant.
type Duration int64

// Common durations.
const (
	Millisecond Duration = 1
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
	Week                 = 7 * Day
)

// An Amount is anything that can be interpreted as a number of milliseconds:
// a [Duration], a raw [Millis] count or an instant ([DateTime], [DateOnly]),
// which counts from the Unix epoch.
type Amount interface {
	Millis() int64
}

// Millis is a raw millisecond count.
type Millis int64

// Millis implements Amount.
func (m Millis) Millis() int64 { return int64(m) }

// Span returns the Duration composed of the given components. The components
// may be negative or outside their usual ranges.
func Span(weeks, days, hours, minutes, seconds, millis int) Duration {
	return Duration(weeks)*Week +
		Duration(days)*Day +
		Duration(hours)*Hour +
		Duration(minutes)*Minute +
		Duration(seconds)*Second +
		Duration(millis)*Millisecond
}

// DurationOf returns the Duration represented by a, which for instants is the
// time elapsed since the Unix epoch.
func DurationOf(a Amount) Duration {
	return Duration(a.Millis())
}

// FromStd converts d, truncating it to millisecond precision.
func FromStd(d time.Duration) Duration {
	return Duration(d / time.Millisecond)
}

// Millis implements Amount.
func (d Duration) Millis() int64 { return int64(d) }

// Std converts d to a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// DivideBy returns how many whole times o fits into d, rounded towards
// negative infinity. It panics if o is zero.
func (d Duration) DivideBy(o Duration) int64 {
	return floorDiv(int64(d), int64(o))
}

// String returns the duration in the format used by [time.Duration].
func (d Duration) String() string {
	return d.Std().String()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
