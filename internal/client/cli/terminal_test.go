package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrefersDark(t *testing.T) {
	tests := map[string]bool{
		"":        true,
		"15;0":    true,
		"0;15":    false,
		"12;8":    true,
		"0;7":     false,
		"0;def;1": true,
		"garbage": true,
	}
	for in, want := range tests {
		assert.Equal(t, want, systemPrefersDark(in), "COLORFGBG=%q", in)
	}
}

func stubTerm(t *testing.T, tty bool, width int, sizeErr error) {
	t.Helper()
	origIs, origSize := isTerminal, getSize
	isTerminal = func(int) bool { return tty }
	getSize = func(int) (int, int, error) { return width, 24, sizeErr }
	t.Cleanup(func() { isTerminal, getSize = origIs, origSize })
}

func TestDetectTerminal(t *testing.T) {
	t.Setenv("COLORFGBG", "0;15")
	t.Setenv("NO_COLOR", "")

	t.Run("not a tty", func(t *testing.T) {
		stubTerm(t, false, 120, nil)
		assert.Equal(t, terminal{}, detectTerminal(os.Stdout))
	})

	t.Run("tty", func(t *testing.T) {
		stubTerm(t, true, 120, nil)
		assert.Equal(t, terminal{colour: true, width: 120}, detectTerminal(os.Stdout))
	})

	t.Run("tty without size", func(t *testing.T) {
		stubTerm(t, true, 0, errors.New("no size"))
		assert.Equal(t, terminal{colour: true}, detectTerminal(os.Stdout))
	})

	t.Run("NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		stubTerm(t, true, 80, nil)
		assert.Equal(t, terminal{width: 80}, detectTerminal(os.Stdout))
	})
}
