package lifecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func calcAt(now time.Time, opts ...Option) *Calculator {
	return New(timex.Fixed(now), append([]Option{WithLocation(time.UTC)}, opts...)...)
}

func TestWeeksBetween(t *testing.T) {
	base := day(2024, 1, 1)
	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant", base, 0},
		{"six days", base.AddDate(0, 0, 6), 0},
		{"one week", base.AddDate(0, 0, 7), 1},
		{"almost two weeks", base.Add(14*24*time.Hour - time.Nanosecond), 1},
		{"one nanosecond back", base.Add(-time.Nanosecond), -1},
		{"one day back", base.AddDate(0, 0, -1), -1},
		{"one week back", base.AddDate(0, 0, -7), -1},
		{"eight days back", base.AddDate(0, 0, -8), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeksBetween(base, tt.end))
		})
	}
}

func TestAll_ReferenceScenario(t *testing.T) {
	c := calcAt(day(2024, 1, 1))

	got := c.All(day(1990, 1, 1))

	assert.Equal(t, 34, got.AgeInYears)
	assert.Equal(t, 1774, got.WeeksLived)
	assert.Equal(t, 1774, got.CurrentWeek)
	assert.Equal(t, 1774, got.AgeInWeeks)
	assert.Equal(t, 2226, got.WeeksRemaining)
	assert.InDelta(t, 44.35, got.LifeCompletionPercentage, 1e-9)
	assert.Equal(t, 0, got.WeeksUntilNextBirthday)
	assert.Equal(t, DefaultTotalWeeks, got.TotalWeeks)
}

func TestAgeInYears(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"birthday today", day(1990, 6, 15), day(2024, 6, 15), 34},
		{"day before birthday", day(1990, 6, 15), day(2024, 6, 14), 33},
		{"earlier month", day(1990, 6, 15), day(2024, 1, 1), 33},
		{"later month", day(1990, 6, 15), day(2024, 7, 1), 34},
		{"leap day in common year", day(2000, 2, 29), day(2023, 2, 28), 22},
		{"leap day after march", day(2000, 2, 29), day(2023, 3, 1), 23},
		{"newborn", day(2024, 6, 15), day(2024, 6, 15), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calcAt(tt.now).AgeInYears(tt.birth))
		})
	}
}

func TestAgeInYears_UsesConfiguredLocation(t *testing.T) {
	birth := time.Date(1990, 1, 2, 2, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, 33, calcAt(now).AgeInYears(birth))

	east := New(timex.Fixed(now), WithLocation(time.FixedZone("UTC-5", -5*3600)))
	assert.Equal(t, 34, east.AgeInYears(birth))
}

func TestWeeksUntilNextBirthday(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"later this year", day(1990, 6, 15), day(2024, 1, 1), 23},
		{"already passed", day(1990, 1, 1), day(2024, 3, 1), 43},
		{"today at midnight", day(1990, 6, 15), day(2024, 6, 15), 0},
		{"today, late in the day", day(1990, 6, 15), time.Date(2024, 6, 15, 15, 30, 0, 0, time.UTC), 52},
		{"later this week, midday", day(1990, 3, 8), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), 0},
		{"leap day birthday", day(2000, 2, 29), day(2023, 3, 15), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calcAt(tt.now).WeeksUntilNextBirthday(tt.birth)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestNextBirthday_NeverBeforeToday(t *testing.T) {
	birth := day(1985, 11, 3)
	for now := day(2024, 1, 1); now.Year() == 2024; now = now.AddDate(0, 0, 1) {
		c := calcAt(now.Add(13 * time.Hour))
		next := c.NextBirthday(birth)
		require.False(t, next.Before(now), "now=%s next=%s", now, next)
		require.Equal(t, birth.Month(), next.Month())
		require.Equal(t, birth.Day(), next.Day())
	}
}

func TestWeeksRemaining_ClampedAtZero(t *testing.T) {
	c := calcAt(day(2024, 1, 1))
	birth := day(1920, 1, 1)

	assert.Greater(t, c.WeeksLived(birth), DefaultTotalWeeks)
	assert.Equal(t, 0, c.WeeksRemaining(birth))
	assert.Equal(t, 100.0, c.LifeCompletionPercentage(birth))
}

func TestWithTotalWeeks(t *testing.T) {
	c := calcAt(day(2024, 1, 1), WithTotalWeeks(2000))

	got := c.All(day(1990, 1, 1))

	assert.Equal(t, 2000, got.TotalWeeks)
	assert.Equal(t, 226, got.WeeksRemaining)
	assert.InDelta(t, 88.7, got.LifeCompletionPercentage, 1e-9)

	assert.Equal(t, DefaultTotalWeeks, calcAt(day(2024, 1, 1), WithTotalWeeks(0)).TotalWeeks())
}

func TestWeekStatus_ExactlyOneCurrent(t *testing.T) {
	c := calcAt(day(2024, 1, 1))
	birth := day(1990, 1, 1)
	lived := c.WeeksLived(birth)

	assert.Equal(t, StatusCurrent, c.WeekStatus(birth, lived))
	assert.Equal(t, StatusLived, c.WeekStatus(birth, lived-1))
	assert.Equal(t, StatusFuture, c.WeekStatus(birth, lived+1))
	assert.Equal(t, StatusLived, c.WeekStatus(birth, 0))

	current := 0
	for n := 0; n < DefaultTotalWeeks; n++ {
		if c.WeekStatus(birth, n) == StatusCurrent {
			current++
		}
	}
	assert.Equal(t, 1, current)
}

func TestProperties_AcrossBirthDates(t *testing.T) {
	now := day(2024, 5, 17)
	c := calcAt(now)

	for birth := day(1905, 1, 1); !birth.After(now); birth = birth.AddDate(0, 0, 37) {
		lived := c.WeeksLived(birth)
		require.GreaterOrEqual(t, lived, 0, "birth=%s", birth)
		require.LessOrEqual(t, c.WeeksRemaining(birth), DefaultTotalWeeks, "birth=%s", birth)

		p := c.LifeCompletionPercentage(birth)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 100.0)

		require.Equal(t, StatusCurrent, c.WeekStatus(birth, lived))
		require.Equal(t, StatusFuture, c.WeekStatus(birth, lived+1))
		if lived > 0 {
			require.Equal(t, StatusLived, c.WeekStatus(birth, lived-1))
		}
	}
}

func TestLifeCompletionPercentage_MonotonicInTime(t *testing.T) {
	birth := day(1970, 3, 9)
	prev := -1.0
	for now := birth; now.Before(day(2060, 1, 1)); now = now.AddDate(0, 0, 13) {
		p := calcAt(now).LifeCompletionPercentage(birth)
		require.GreaterOrEqual(t, p, prev, "now=%s", now)
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 100.0)
		prev = p
	}
}

func TestLifeCompletionPercentage_FutureBirthClampedToZero(t *testing.T) {
	c := calcAt(day(2024, 1, 1))
	assert.Equal(t, 0.0, c.LifeCompletionPercentage(day(2024, 3, 1)))
}

func TestNew_NilClockFallsBackToSystem(t *testing.T) {
	c := New(nil)
	assert.Equal(t, 0, c.WeeksLived(time.Now().Add(-time.Hour)))
}
