package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
)

// Microsecond multiples of each unit
const (
	MicrosecondsPerMillisecond int64 = 1000
	MicrosecondsPerSecond            = 1000 * MicrosecondsPerMillisecond
	MicrosecondsPerMinute            = 60 * MicrosecondsPerSecond
	MicrosecondsPerHour              = 60 * MicrosecondsPerMinute
	MicrosecondsPerDay               = 24 * MicrosecondsPerHour
)

// Per-unit input bounds accepted by NewTimeDelta (inclusive, symmetric around zero)
const (
	MaxDays         int64 = 99_999_999
	MaxHours        int64 = 100_000
	MaxMinutes      int64 = 100_000
	MaxSeconds      int64 = 8_639_900
	MaxMilliseconds int64 = 86_399_000_000
	MaxMicroseconds int64 = 86_399_000_000
)

// Canonical range of the total microsecond count
const (
	MaxTicks = MaxDays*MicrosecondsPerDay + (MicrosecondsPerDay - 1)
	MinTicks = -MaxTicks
)

// TimeDelta is a signed elapsed time with microsecond resolution.
// The zero value is a valid zero-length delta.
type TimeDelta struct {
	ticks int64
}

// Fields holds a floored decomposition of a TimeDelta.
// Days carries the sign; every other field is in [0, unit size).
type Fields struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
	Microseconds int64 `json:"microseconds"`
}

// Ticks recombines the fields into a total microsecond count
func (f Fields) Ticks() int64 {
	return f.Days*MicrosecondsPerDay +
		f.Hours*MicrosecondsPerHour +
		f.Minutes*MicrosecondsPerMinute +
		f.Seconds*MicrosecondsPerSecond +
		f.Milliseconds*MicrosecondsPerMillisecond +
		f.Microseconds
}

// NewTimeDelta builds a TimeDelta from unit magnitudes that need not be normalized
// relative to each other (hours=30 simply folds into an extra day).
// Each magnitude is checked against its own bound first, then the combined total
// is checked against [MinTicks, MaxTicks].
func NewTimeDelta(days, hours, minutes, seconds, milliseconds, microseconds int64) (TimeDelta, error) {
	inputs := []struct {
		field string
		value int64
		bound int64
	}{
		{"days", days, MaxDays},
		{"hours", hours, MaxHours},
		{"minutes", minutes, MaxMinutes},
		{"seconds", seconds, MaxSeconds},
		{"milliseconds", milliseconds, MaxMilliseconds},
		{"microseconds", microseconds, MaxMicroseconds},
	}
	for _, in := range inputs {
		if in.value < -in.bound || in.value > in.bound {
			return TimeDelta{}, errs.NewFieldRangeError(in.field, in.value, in.bound)
		}
	}

	// Cannot overflow int64 with the bounds above
	total := ((((days*24+hours)*60+minutes)*60+seconds)*1000+milliseconds)*1000 + microseconds

	return TimeDeltaFromMicroseconds(total)
}

// TimeDeltaFromMicroseconds wraps an already computed microsecond total
func TimeDeltaFromMicroseconds(total int64) (TimeDelta, error) {
	if total < MinTicks || total > MaxTicks {
		return TimeDelta{}, errs.NewTotalRangeError(total, MinTicks, MaxTicks)
	}
	return TimeDelta{ticks: total}, nil
}

// TimeDeltaFromDuration converts a time.Duration, truncating sub-microsecond precision toward zero
func TimeDeltaFromDuration(d time.Duration) (TimeDelta, error) {
	return TimeDeltaFromMicroseconds(d.Microseconds())
}

// MaxTimeDelta returns the largest representable delta
func MaxTimeDelta() TimeDelta {
	return TimeDelta{ticks: MaxTicks}
}

// MinTimeDelta returns the smallest (most negative) representable delta
func MinTimeDelta() TimeDelta {
	return TimeDelta{ticks: MinTicks}
}

// Ticks returns the total microsecond count
func (td TimeDelta) Ticks() int64 {
	return td.ticks
}

// IsNegative reports whether the delta is below zero
func (td TimeDelta) IsNegative() bool {
	return td.ticks < 0
}

// IsZero reports whether the delta has zero length
func (td TimeDelta) IsZero() bool {
	return td.ticks == 0
}

// split performs the floored day extraction.
// rem is always in [0, MicrosecondsPerDay).
func (td TimeDelta) split() (days, rem int64) {
	days = td.ticks / MicrosecondsPerDay
	if td.ticks >= 0 || td.ticks%MicrosecondsPerDay == 0 {
		return days, td.ticks % MicrosecondsPerDay
	}

	days--
	return days, td.ticks - days*MicrosecondsPerDay
}

// Days returns the day count, rounded toward negative infinity for negative deltas
func (td TimeDelta) Days() int64 {
	days, _ := td.split()
	return days
}

// Hours returns the hour of day in [0, 24)
func (td TimeDelta) Hours() int64 {
	_, rem := td.split()
	return rem / MicrosecondsPerHour
}

// Minutes returns the minute of hour in [0, 60)
func (td TimeDelta) Minutes() int64 {
	_, rem := td.split()
	return rem % MicrosecondsPerHour / MicrosecondsPerMinute
}

// Seconds returns the second of minute in [0, 60)
func (td TimeDelta) Seconds() int64 {
	_, rem := td.split()
	return rem % MicrosecondsPerMinute / MicrosecondsPerSecond
}

// Milliseconds returns the millisecond of second in [0, 1000)
func (td TimeDelta) Milliseconds() int64 {
	_, rem := td.split()
	return rem % MicrosecondsPerSecond / MicrosecondsPerMillisecond
}

// Microseconds returns the microsecond of millisecond in [0, 1000)
func (td TimeDelta) Microseconds() int64 {
	_, rem := td.split()
	return rem % MicrosecondsPerMillisecond
}

// Fields returns all six decomposed fields at once
func (td TimeDelta) Fields() Fields {
	days, rem := td.split()
	return Fields{
		Days:         days,
		Hours:        rem / MicrosecondsPerHour,
		Minutes:      rem % MicrosecondsPerHour / MicrosecondsPerMinute,
		Seconds:      rem % MicrosecondsPerMinute / MicrosecondsPerSecond,
		Milliseconds: rem % MicrosecondsPerSecond / MicrosecondsPerMillisecond,
		Microseconds: rem % MicrosecondsPerMillisecond,
	}
}

// String renders the floored form, e.g. "-2 days, 23:59:59.999999"
func (td TimeDelta) String() string {
	f := td.Fields()
	unit := "days"
	if f.Days == 1 || f.Days == -1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s, %02d:%02d:%02d.%03d%03d",
		f.Days, unit, f.Hours, f.Minutes, f.Seconds, f.Milliseconds, f.Microseconds)
}
