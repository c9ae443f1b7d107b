// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xtime provides extensions to the standard time package.
package xtime

import (
	"fmt"
	"time"
)

// timestampLayouts are the ISO-8601 layouts accepted by ParseTimestamp, in the order tried.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// Date is a calendar date without a time or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// TimeToDate returns the Date that t falls on, in t's own location.
func TimeToDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseTimestamp parses an ISO-8601 timestamp.
//
// Accepted forms include a trailing Z or numeric offset, fractional seconds,
// naive local timestamps, and bare dates. Timestamps with an offset keep it,
// so the calendar date is the one observed at the source.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
