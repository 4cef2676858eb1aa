// Package timeutil converts between wall-clock time, epoch seconds and epoch
// milliseconds. All conversions are in UTC.
package timeutil

import (
	"math"
	"time"
)

// Clock allows deterministic time for tests. The toolkit runtime clock
// satisfies it.
type Clock interface {
	Now() time.Time
}

// RealClock uses time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock returns a constant time (useful for tests).
type FixedClock struct{ t time.Time }

func NewFixedClock(t time.Time) *FixedClock { return &FixedClock{t: t} }
func (f *FixedClock) Now() time.Time        { return f.t }

// Layout is the ctime-style layout used by FormatMillis and FormatTimestamp.
const Layout = time.ANSIC

func orReal(c Clock) Clock {
	if c == nil {
		return RealClock{}
	}
	return c
}

// NowMillis is the current time in milliseconds since the Unix epoch.
func NowMillis(c Clock) int64 {
	return orReal(c).Now().UTC().UnixMilli()
}

// NowSeconds is the current time in whole seconds since the Unix epoch.
func NowSeconds(c Clock) int64 {
	return orReal(c).Now().UTC().Unix()
}

// MillisSince converts an epoch timestamp in (possibly fractional) seconds to
// epoch milliseconds. The timestamp is first rounded to microseconds, then
// truncated toward zero.
func MillisSince(ts float64) int64 {
	return FromTimestamp(ts).UnixMicro() / 1_000
}

// SecondsSince truncates an epoch timestamp in seconds toward zero.
func SecondsSince(ts float64) int64 {
	return FromTimestamp(ts).UnixMicro() / 1_000_000
}

// FromTimestamp converts fractional epoch seconds to a UTC time with
// microsecond resolution.
func FromTimestamp(ts float64) time.Time {
	micros := int64(math.Round(ts * 1e6))
	return time.UnixMicro(micros).UTC()
}

// FormatMillis renders epoch milliseconds in the ctime layout, e.g.
// "Thu Jan  1 00:00:00 1970".
func FormatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(Layout)
}

// FormatTimestamp renders epoch seconds in the ctime layout.
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(Layout)
}

// ISO8601 renders the clock's current time as RFC 3339 in UTC.
func ISO8601(c Clock) string {
	return orReal(c).Now().UTC().Format(time.RFC3339)
}
