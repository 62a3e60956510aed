package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
	"github.com/dmitrijs2005/weeksoflife/internal/lifecalc"
)

const ansiReset = "\x1b[0m"

var glyphs = map[lifecalc.WeekStatus]string{
	lifecalc.StatusLived:   "#",
	lifecalc.StatusCurrent: "@",
	lifecalc.StatusFuture:  ".",
}

type palette map[lifecalc.WeekStatus]string

var (
	darkPalette = palette{
		lifecalc.StatusLived:   "\x1b[92m",
		lifecalc.StatusCurrent: "\x1b[1;93m",
		lifecalc.StatusFuture:  "\x1b[2m",
	}
	lightPalette = palette{
		lifecalc.StatusLived:   "\x1b[34m",
		lifecalc.StatusCurrent: "\x1b[1;31m",
		lifecalc.StatusFuture:  "\x1b[90m",
	}
)

// gridStyle controls how renderGrid draws cells.
type gridStyle struct {
	columns   int
	cellWidth int
	colours   palette
}

// labelWidth is the "%5d | " prefix on every row.
const labelWidth = 8

// newGridStyle derives the cell width from the zoom level, narrowing it until
// the grid fits termWidth (0 means unknown). Colours are nil when disabled.
func newGridStyle(prefs models.GridPreferences, mode models.ThemeMode, t terminal) gridStyle {
	s := gridStyle{columns: models.GridColumns}

	s.cellWidth = max(1, int(math.Round(models.ClampZoom(prefs.ZoomLevel))))
	if t.width > 0 {
		for s.cellWidth > 1 && labelWidth+s.columns*s.cellWidth > t.width {
			s.cellWidth--
		}
	}

	if t.colour {
		if mode.Dark(t.systemDark) {
			s.colours = darkPalette
		} else {
			s.colours = lightPalette
		}
	}
	return s
}

// renderGrid writes one line per row of cells followed by a legend.
func renderGrid(w io.Writer, cells []lifecalc.WeekCell, s gridStyle) error {
	var b strings.Builder
	for _, row := range lifecalc.Rows(cells, s.columns) {
		fmt.Fprintf(&b, "%5d | ", row[0].Number)
		var last lifecalc.WeekStatus
		for _, c := range row {
			if s.colours != nil && c.Status != last {
				b.WriteString(s.colours[c.Status])
				last = c.Status
			}
			b.WriteString(strings.Repeat(glyphs[c.Status], s.cellWidth))
		}
		if s.colours != nil {
			b.WriteString(ansiReset)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s lived   %s this week   %s ahead\n",
		s.paint(lifecalc.StatusLived), s.paint(lifecalc.StatusCurrent), s.paint(lifecalc.StatusFuture))

	_, err := io.WriteString(w, b.String())
	return err
}

func (s gridStyle) paint(st lifecalc.WeekStatus) string {
	if s.colours == nil {
		return glyphs[st]
	}
	return s.colours[st] + glyphs[st] + ansiReset
}
