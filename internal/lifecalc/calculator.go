package lifecalc

import (
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

const (
	// DefaultTotalWeeks is the week budget drawn on the grid.
	DefaultTotalWeeks = 4000
	// DefaultMaxAgeYears bounds both the oldest accepted birth year and the age check.
	DefaultMaxAgeYears = 120
)

const week = 7 * 24 * time.Hour

// WeekStatus classifies a grid cell relative to the current week.
type WeekStatus string

const (
	StatusLived   WeekStatus = "lived"
	StatusCurrent WeekStatus = "current"
	StatusFuture  WeekStatus = "future"
)

// LifeCalculations is the derived, never-persisted statistics record.
type LifeCalculations struct {
	WeeksLived               int     `json:"weeksLived"`
	WeeksRemaining           int     `json:"weeksRemaining"`
	CurrentWeek              int     `json:"currentWeek"`
	AgeInYears               int     `json:"ageInYears"`
	AgeInWeeks               int     `json:"ageInWeeks"`
	LifeCompletionPercentage float64 `json:"lifeCompletionPercentage"`
	WeeksUntilNextBirthday   int     `json:"weeksUntilNextBirthday"`
	TotalWeeks               int     `json:"totalWeeks"`
}

type Calculator struct {
	clock       timex.Clock
	totalWeeks  int
	maxAgeYears int
	loc         *time.Location
}

type Option func(*Calculator)

// WithTotalWeeks overrides DefaultTotalWeeks. Non-positive values are ignored.
func WithTotalWeeks(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.totalWeeks = n
		}
	}
}

// WithMaxAgeYears overrides DefaultMaxAgeYears. Non-positive values are ignored.
func WithMaxAgeYears(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.maxAgeYears = n
		}
	}
}

// WithLocation sets the zone used for calendar fields (year, month, day).
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		if loc != nil {
			c.loc = loc
		}
	}
}

func New(clock timex.Clock, opts ...Option) *Calculator {
	if clock == nil {
		clock = timex.SystemClock
	}
	c := &Calculator{
		clock:       clock,
		totalWeeks:  DefaultTotalWeeks,
		maxAgeYears: DefaultMaxAgeYears,
		loc:         time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) TotalWeeks() int { return c.totalWeeks }

func (c *Calculator) now() time.Time { return c.clock.Now().In(c.loc) }

// WeeksBetween returns floor((end-start)/7 days). It is negative when end
// precedes start.
func WeeksBetween(start, end time.Time) int {
	d := end.Sub(start)
	q := d / week
	if d%week != 0 && d < 0 {
		q--
	}
	return int(q)
}

// CurrentWeekNumber is the zero-based index of the week containing now.
func (c *Calculator) CurrentWeekNumber(birthDate time.Time) int {
	return WeeksBetween(birthDate, c.now())
}

func (c *Calculator) WeeksLived(birthDate time.Time) int {
	return c.CurrentWeekNumber(birthDate)
}

// WeeksRemaining is never negative.
func (c *Calculator) WeeksRemaining(birthDate time.Time) int {
	return max(0, c.totalWeeks-c.WeeksLived(birthDate))
}

// AgeInYears counts completed years, decrementing when this year's birthday
// has not been reached yet.
func (c *Calculator) AgeInYears(birthDate time.Time) int {
	return ageAt(birthDate.In(c.loc), c.now())
}

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// LifeCompletionPercentage is weeks lived over the total budget, in [0, 100].
func (c *Calculator) LifeCompletionPercentage(birthDate time.Time) float64 {
	p := float64(c.WeeksLived(birthDate)) / float64(c.totalWeeks) * 100
	return min(100, max(0, p))
}

// NextBirthday returns midnight of the next occurrence of the birth
// month/day that is not before now. Once today has begun its midnight is
// already behind now, so a birthday falling today rolls to next year. A
// 29 February birthday falls on 1 March in non-leap years.
func (c *Calculator) NextBirthday(birthDate time.Time) time.Time {
	b := birthDate.In(c.loc)
	now := c.now()

	next := time.Date(now.Year(), b.Month(), b.Day(), 0, 0, 0, 0, c.loc)
	if next.Before(now) {
		next = time.Date(now.Year()+1, b.Month(), b.Day(), 0, 0, 0, 0, c.loc)
	}
	return next
}

// WeeksUntilNextBirthday counts whole weeks from now to NextBirthday.
func (c *Calculator) WeeksUntilNextBirthday(birthDate time.Time) int {
	return WeeksBetween(c.now(), c.NextBirthday(birthDate))
}

// WeekStatus classifies weekNumber; exactly one week is current for a given
// birth date and instant.
func (c *Calculator) WeekStatus(birthDate time.Time, weekNumber int) WeekStatus {
	return statusOf(weekNumber, c.CurrentWeekNumber(birthDate))
}

func statusOf(weekNumber, current int) WeekStatus {
	switch {
	case weekNumber < current:
		return StatusLived
	case weekNumber == current:
		return StatusCurrent
	default:
		return StatusFuture
	}
}

// All computes every statistic against a single clock reading.
func (c *Calculator) All(birthDate time.Time) LifeCalculations {
	pinned := *c
	pinned.clock = timex.Fixed(c.clock.Now())

	lived := pinned.WeeksLived(birthDate)
	return LifeCalculations{
		WeeksLived:               lived,
		WeeksRemaining:           pinned.WeeksRemaining(birthDate),
		CurrentWeek:              lived,
		AgeInYears:               pinned.AgeInYears(birthDate),
		AgeInWeeks:               lived,
		LifeCompletionPercentage: pinned.LifeCompletionPercentage(birthDate),
		WeeksUntilNextBirthday:   pinned.WeeksUntilNextBirthday(birthDate),
		TotalWeeks:               pinned.totalWeeks,
	}
}
