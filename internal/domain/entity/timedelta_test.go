package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
)

func TestMaxTicks(t *testing.T) {
	assert.Equal(t, int64(86_400_000_000), MicrosecondsPerDay)
	assert.Equal(t, int64(99_999_999)*86_400_000_000+86_399_999_999, MaxTicks)
	assert.Equal(t, -MaxTicks, MinTicks)
	assert.Equal(t, MaxTicks, MaxTimeDelta().Ticks())
	assert.Equal(t, MinTicks, MinTimeDelta().Ticks())
}

func TestNewTimeDelta(t *testing.T) {
	t.Run("Combines units", func(t *testing.T) {
		td, err := NewTimeDelta(1, 2, 3, 4, 5, 6)
		require.NoError(t, err)

		expected := MicrosecondsPerDay + 2*MicrosecondsPerHour + 3*MicrosecondsPerMinute +
			4*MicrosecondsPerSecond + 5*MicrosecondsPerMillisecond + 6
		assert.Equal(t, expected, td.Ticks())
		assert.False(t, td.IsNegative())
	})

	t.Run("Folds unnormalized units", func(t *testing.T) {
		td, err := NewTimeDelta(0, 30, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), td.Days())
		assert.Equal(t, int64(6), td.Hours())

		td, err = NewTimeDelta(0, 0, 0, 0, 1500, 2500)
		require.NoError(t, err)
		assert.Equal(t, int64(1), td.Seconds())
		assert.Equal(t, int64(502), td.Milliseconds())
		assert.Equal(t, int64(500), td.Microseconds())
	})

	t.Run("Mixed signs", func(t *testing.T) {
		td, err := NewTimeDelta(1, -1, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 23*MicrosecondsPerHour, td.Ticks())
		assert.Equal(t, int64(0), td.Days())
		assert.Equal(t, int64(23), td.Hours())
	})

	t.Run("Zero", func(t *testing.T) {
		td, err := NewTimeDelta(0, 0, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.True(t, td.IsZero())
		assert.Equal(t, TimeDelta{}, td)
		assert.Equal(t, Fields{}, td.Fields())
	})
}

func TestNewTimeDelta_FieldBounds(t *testing.T) {
	testCases := []struct {
		field string
		bound int64
		build func(v int64) (TimeDelta, error)
	}{
		{"days", MaxDays, func(v int64) (TimeDelta, error) { return NewTimeDelta(v, 0, 0, 0, 0, 0) }},
		{"hours", MaxHours, func(v int64) (TimeDelta, error) { return NewTimeDelta(0, v, 0, 0, 0, 0) }},
		{"minutes", MaxMinutes, func(v int64) (TimeDelta, error) { return NewTimeDelta(0, 0, v, 0, 0, 0) }},
		{"seconds", MaxSeconds, func(v int64) (TimeDelta, error) { return NewTimeDelta(0, 0, 0, v, 0, 0) }},
		{"milliseconds", MaxMilliseconds, func(v int64) (TimeDelta, error) { return NewTimeDelta(0, 0, 0, 0, v, 0) }},
		{"microseconds", MaxMicroseconds, func(v int64) (TimeDelta, error) { return NewTimeDelta(0, 0, 0, 0, 0, v) }},
	}

	for _, tc := range testCases {
		t.Run(tc.field, func(t *testing.T) {
			_, err := tc.build(tc.bound)
			assert.NoError(t, err, "upper bound must be accepted")

			_, err = tc.build(-tc.bound)
			assert.NoError(t, err, "lower bound must be accepted")

			for _, v := range []int64{tc.bound + 1, -tc.bound - 1} {
				_, err = tc.build(v)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrFieldOutOfRange)
				assert.NotErrorIs(t, err, errs.ErrTotalOutOfRange)

				rangeErr, ok := errs.AsRangeError(err)
				require.True(t, ok)
				assert.Equal(t, tc.field, rangeErr.Field)
				assert.Equal(t, v, rangeErr.Value)
			}
		})
	}

	t.Run("days boundary", func(t *testing.T) {
		td, err := NewTimeDelta(99_999_999, 0, 0, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(99_999_999), td.Days())

		_, err = NewTimeDelta(100_000_000, 0, 0, 0, 0, 0)
		assert.ErrorIs(t, err, errs.ErrOutOfRange)
	})

	t.Run("first failing field is reported", func(t *testing.T) {
		_, err := NewTimeDelta(0, MaxHours+1, MaxMinutes+1, 0, 0, 0)
		rangeErr, ok := errs.AsRangeError(err)
		require.True(t, ok)
		assert.Equal(t, "hours", rangeErr.Field)
	})
}

func TestNewTimeDelta_TotalBounds(t *testing.T) {
	t.Run("Combined overflow despite valid fields", func(t *testing.T) {
		_, err := NewTimeDelta(MaxDays, 24, 0, 0, 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
		assert.NotErrorIs(t, err, errs.ErrFieldOutOfRange)

		rangeErr, ok := errs.AsRangeError(err)
		require.True(t, ok)
		assert.Equal(t, errs.TotalField, rangeErr.Field)
		assert.Equal(t, MaxTicks, rangeErr.Max)
		assert.Equal(t, MinTicks, rangeErr.Min)
	})

	t.Run("Exact maximum", func(t *testing.T) {
		td, err := NewTimeDelta(MaxDays, 23, 59, 59, 999, 999)
		require.NoError(t, err)
		assert.Equal(t, MaxTicks, td.Ticks())

		_, err = NewTimeDelta(MaxDays, 23, 59, 59, 999, 1000)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
	})

	t.Run("Exact minimum", func(t *testing.T) {
		td, err := NewTimeDelta(-MaxDays, -23, -59, -59, -999, -999)
		require.NoError(t, err)
		assert.Equal(t, MinTicks, td.Ticks())
		assert.Equal(t, -MaxDays-1, td.Days())
		assert.Equal(t, int64(1), td.Microseconds())

		_, err = NewTimeDelta(-MaxDays, -24, 0, 0, 0, 0)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
	})

	t.Run("Large sub-day units", func(t *testing.T) {
		_, err := NewTimeDelta(MaxDays, 0, 0, 0, MaxMilliseconds, 0)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)

		td, err := NewTimeDelta(0, 0, 0, 0, MaxMilliseconds, MaxMicroseconds)
		require.NoError(t, err)
		assert.Equal(t, MaxMilliseconds*1000+MaxMicroseconds, td.Ticks())
	})
}

func TestTimeDeltaFromMicroseconds(t *testing.T) {
	for _, ticks := range []int64{0, 1, -1, MaxTicks, MinTicks} {
		td, err := TimeDeltaFromMicroseconds(ticks)
		require.NoError(t, err)
		assert.Equal(t, ticks, td.Ticks())
	}

	for _, ticks := range []int64{MaxTicks + 1, MinTicks - 1} {
		_, err := TimeDeltaFromMicroseconds(ticks)
		assert.ErrorIs(t, err, errs.ErrTotalOutOfRange)
	}
}

func TestTimeDeltaFromDuration(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Duration
		expected int64
	}{
		{"hour", time.Hour, MicrosecondsPerHour},
		{"truncates positive", 1500 * time.Nanosecond, 1},
		{"truncates negative toward zero", -1500 * time.Nanosecond, -1},
		{"sub-microsecond", 999 * time.Nanosecond, 0},
		{"negative day", -24 * time.Hour, -MicrosecondsPerDay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			td, err := TimeDeltaFromDuration(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, td.Ticks())
		})
	}
}

func TestTimeDelta_Decomposition(t *testing.T) {
	testCases := []struct {
		name     string
		ticks    int64
		expected Fields
	}{
		{"zero", 0, Fields{}},
		{"one microsecond", 1, Fields{Microseconds: 1}},
		{"mixed positive", MicrosecondsPerDay*3 + 2*MicrosecondsPerHour + 1234567,
			Fields{Days: 3, Hours: 2, Seconds: 1, Milliseconds: 234, Microseconds: 567}},
		{"exactly minus one day", -MicrosecondsPerDay, Fields{Days: -1}},
		{"exactly minus two days", -2 * MicrosecondsPerDay, Fields{Days: -2}},
		{"minus one day and one microsecond", -(MicrosecondsPerDay + 1),
			Fields{Days: -2, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999, Microseconds: 999}},
		{"minus one microsecond", -1,
			Fields{Days: -1, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999, Microseconds: 999}},
		{"minus one millisecond", -1000,
			Fields{Days: -1, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999}},
		{"minus one hour", -MicrosecondsPerHour, Fields{Days: -1, Hours: 23}},
		{"minus 1.5 seconds", -1_500_000,
			Fields{Days: -1, Hours: 23, Minutes: 59, Seconds: 58, Milliseconds: 500}},
		{"max", MaxTicks,
			Fields{Days: MaxDays, Hours: 23, Minutes: 59, Seconds: 59, Milliseconds: 999, Microseconds: 999}},
		{"min", MinTicks, Fields{Days: -MaxDays - 1, Microseconds: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			td, err := TimeDeltaFromMicroseconds(tc.ticks)
			require.NoError(t, err)

			got := Fields{
				Days:         td.Days(),
				Hours:        td.Hours(),
				Minutes:      td.Minutes(),
				Seconds:      td.Seconds(),
				Milliseconds: td.Milliseconds(),
				Microseconds: td.Microseconds(),
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("accessor mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.expected, td.Fields()); diff != "" {
				t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.ticks, td.Fields().Ticks())
		})
	}
}

func TestTimeDelta_RoundTrip(t *testing.T) {
	inputs := [][6]int64{
		{0, 0, 0, 0, 0, 0},
		{1, 2, 3, 4, 5, 6},
		{0, 23, 59, 59, 999, 999},
		{365, 0, 0, 0, 0, 1},
		{12, 100_000, 100_000, 8_639_900, 0, 0},
		{0, 0, 0, 0, 86_399_000_000, 86_399_000_000},
		{MaxDays, 23, 59, 59, 999, 999},
		{42, 7, 0, 30, 250, 125},
	}

	for _, in := range inputs {
		td, err := NewTimeDelta(in[0], in[1], in[2], in[3], in[4], in[5])
		require.NoError(t, err)

		f := td.Fields()
		assert.True(t, f.Hours >= 0 && f.Hours < 24)
		assert.True(t, f.Minutes >= 0 && f.Minutes < 60)
		assert.True(t, f.Seconds >= 0 && f.Seconds < 60)
		assert.True(t, f.Milliseconds >= 0 && f.Milliseconds < 1000)
		assert.True(t, f.Microseconds >= 0 && f.Microseconds < 1000)

		reconstructed := td.Days()*MicrosecondsPerDay +
			td.Hours()*3_600_000_000 +
			td.Minutes()*60_000_000 +
			td.Seconds()*1_000_000 +
			td.Milliseconds()*1000 +
			td.Microseconds()
		assert.Equal(t, td.Ticks(), reconstructed, "input %v", in)
	}
}

func TestTimeDelta_SignSymmetry(t *testing.T) {
	samples := []int64{
		1,
		999,
		1000,
		MicrosecondsPerHour + 17,
		MicrosecondsPerDay - 1,
		MicrosecondsPerDay + 1,
		5*MicrosecondsPerDay + 3*MicrosecondsPerHour + 7*MicrosecondsPerMinute + 123456,
		MaxTicks,
	}

	for _, ticks := range samples {
		pos, err := TimeDeltaFromMicroseconds(ticks)
		require.NoError(t, err)
		neg, err := TimeDeltaFromMicroseconds(-ticks)
		require.NoError(t, err)

		assert.Equal(t, -(pos.Days() + 1), neg.Days(), "ticks %d", ticks)

		leftover, err := TimeDeltaFromMicroseconds(MicrosecondsPerDay - ticks%MicrosecondsPerDay)
		require.NoError(t, err)

		want := leftover.Fields()
		want.Days = 0
		got := neg.Fields()
		got.Days = 0
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ticks %d: finer fields mismatch (-want +got):\n%s", ticks, diff)
		}
		assert.Equal(t, -ticks, neg.Fields().Ticks())
	}
}

func TestTimeDelta_Idempotent(t *testing.T) {
	td, err := NewTimeDelta(-3, -4, -5, -6, -7, -8)
	require.NoError(t, err)

	first := td.Fields()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first.Days, td.Days())
		assert.Equal(t, first.Hours, td.Hours())
		assert.Equal(t, first.Minutes, td.Minutes())
		assert.Equal(t, first.Seconds, td.Seconds())
		assert.Equal(t, first.Milliseconds, td.Milliseconds())
		assert.Equal(t, first.Microseconds, td.Microseconds())
		assert.Equal(t, first, td.Fields())
	}
}

func TestTimeDelta_String(t *testing.T) {
	testCases := []struct {
		ticks    int64
		expected string
	}{
		{0, "0 days, 00:00:00.000000"},
		{MicrosecondsPerDay + 2*MicrosecondsPerHour + 3*MicrosecondsPerMinute + 4_005_006, "1 day, 02:03:04.005006"},
		{-MicrosecondsPerDay, "-1 day, 00:00:00.000000"},
		{-(MicrosecondsPerDay + 1), "-2 days, 23:59:59.999999"},
		{3 * MicrosecondsPerDay, "3 days, 00:00:00.000000"},
	}

	for _, tc := range testCases {
		td, err := TimeDeltaFromMicroseconds(tc.ticks)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, td.String())
	}
}
