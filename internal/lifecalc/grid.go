package lifecalc

import (
	"fmt"
	"time"
)

// WeekCell is one square of the life grid.
type WeekCell struct {
	Number    int
	Status    WeekStatus
	StartDate time.Time
}

// WeekStartDate is birthDate plus weekNumber*7 calendar days.
func WeekStartDate(birthDate time.Time, weekNumber int) time.Time {
	return birthDate.AddDate(0, 0, weekNumber*7)
}

// WeekDateRange returns the first and last calendar day of weekNumber.
func WeekDateRange(birthDate time.Time, weekNumber int) (time.Time, time.Time) {
	start := WeekStartDate(birthDate, weekNumber)
	return start, start.AddDate(0, 0, 6)
}

// Grid builds TotalWeeks cells, statuses computed against one clock reading.
func (c *Calculator) Grid(birthDate time.Time) []WeekCell {
	current := c.CurrentWeekNumber(birthDate)
	cells := make([]WeekCell, c.totalWeeks)
	for i := range cells {
		cells[i] = WeekCell{
			Number:    i,
			Status:    statusOf(i, current),
			StartDate: WeekStartDate(birthDate, i),
		}
	}
	return cells
}

// Rows splits cells into rows of the given width; the last row may be short.
func Rows(cells []WeekCell, columns int) [][]WeekCell {
	if columns <= 0 {
		return nil
	}
	rows := make([][]WeekCell, 0, (len(cells)+columns-1)/columns)
	for i := 0; i < len(cells); i += columns {
		rows = append(rows, cells[i:min(i+columns, len(cells))])
	}
	return rows
}

// FormatDate renders t as "January 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatAge renders "N years, M weeks".
func (c *Calculator) FormatAge(birthDate time.Time) string {
	return fmt.Sprintf("%d years, %d weeks", c.AgeInYears(birthDate), c.WeeksLived(birthDate))
}
