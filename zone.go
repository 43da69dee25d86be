// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"strings"

	"gonih.org/set"
)

// Designators for UTC used when formatting. UTCName is used by formats
// derived from RFC 822, UTCNameISO by formats derived from ISO 8601.
const (
	UTCName    = "GMT"
	UTCNameISO = "Z"
)

// utcNames are all accepted spellings of the UTC zone.
var utcNames = set.Make("UT", "UTC", "GMT", "Z", "-0000", "+0000", "-00:00", "+00:00", "-00", "+00")

// zoneOffsets maps the zone abbreviations of RFC 822 to their offset, in
// minutes west of UTC. The UTC spellings are added by init.
var zoneOffsets = map[string]int{
	"EDT": 240,
	"EST": 300,
	"CDT": 300,
	"CST": 360,
	"MDT": 360,
	"MST": 420,
	"PDT": 420,
	"PST": 480,
}

// Reverse lookups of zoneOffsets, split by daylight saving time.
var (
	standardZones = make(map[int]string)
	daylightZones = make(map[int]string)
)

func init() {
	for name, off := range zoneOffsets {
		if strings.HasSuffix(name, "DT") {
			daylightZones[off] = name
		} else {
			standardZones[off] = name
		}
	}
	for name := range utcNames {
		zoneOffsets[name] = 0
	}
}

// IsUTCName reports whether name is one of the accepted spellings of UTC, like
// "UTC", "Z" or "+00:00".
func IsUTCName(name string) bool {
	_, ok := utcNames[name]
	return ok
}

// ZoneOffset returns the offset, in minutes west of UTC, of a known zone
// abbreviation like "EST". Names are case-sensitive.
func ZoneOffset(name string) (minutes int, ok bool) {
	minutes, ok = zoneOffsets[name]
	return minutes, ok
}

// zoneName returns the abbreviation of a zone with the given offset, in
// minutes west of UTC.
func zoneName(off int, dst bool) (string, bool) {
	if dst {
		name, ok := daylightZones[off]
		return name, ok
	}
	name, ok := standardZones[off]
	return name, ok
}

// hasUTCSuffix reports whether s ends in a spelling of UTC, ignoring case.
func hasUTCSuffix(s string) bool {
	for name := range utcNames {
		if len(name) <= len(s) && strings.EqualFold(s[len(s)-len(name):], name) {
			return true
		}
	}
	return false
}
