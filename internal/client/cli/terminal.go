package cli

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// terminal describes the output device. The zero value is a plain,
// colourless stream of unknown width.
type terminal struct {
	colour     bool
	width      int
	systemDark bool
}

// isTerminal and getSize are test seams for golang.org/x/term.
var (
	isTerminal = term.IsTerminal
	getSize    = term.GetSize
)

func detectTerminal(f *os.File) terminal {
	t := terminal{systemDark: systemPrefersDark(os.Getenv("COLORFGBG"))}

	fd := int(f.Fd())
	if !isTerminal(fd) {
		return t
	}
	t.colour = os.Getenv("NO_COLOR") == ""
	if w, _, err := getSize(fd); err == nil {
		t.width = w
	}
	return t
}

// systemPrefersDark reads the "fg;bg" palette hint some terminals export.
// Without a hint the terminal is assumed dark.
func systemPrefersDark(colorfgbg string) bool {
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	return bg < 7 || bg == 8
}
