package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isOnboarded() bool
	Onboard(ctx context.Context) error
	Stats(ctx context.Context) error
	Grid(ctx context.Context) error
	Week(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Rename(ctx context.Context) error
	BirthDate(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Zoom(ctx context.Context, args []string) error
	Backup(ctx context.Context, args []string) error
	Restore(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
}

const (
	helpOnboarded = "Available commands: stats, grid, week <n>, profile, rename, birthdate, " +
		"theme [light|dark|system|toggle], zoom [level], backup <file>, restore <file>, reset, exit"
	helpNew = "Available commands: onboard, theme [light|dark|system|toggle], zoom [level], backup <file>, restore <file>, exit"
)

// runREPL starts a simple read–eval–print loop for the weeksoflife CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Commands needing a profile are refused until onboarding is done. The loop
// exits on EOF, on ctx cancellation, or when the user types "exit" or "quit".
//
// The same reader is shared with interactive prompts issued by commands, so
// input typed ahead is consumed in order.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("weeks %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if needsProfile(cmd) && !a.isOnboarded() {
			printlnFn("No profile yet. Run 'onboard' first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isOnboarded() {
				printlnFn(helpOnboarded)
			} else {
				printlnFn(helpNew)
			}

		case "onboard":
			_ = a.Onboard(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "grid":
			_ = a.Grid(ctx)

		case "week":
			_ = a.Week(ctx, args)

		case "profile":
			_ = a.Profile(ctx)

		case "rename":
			_ = a.Rename(ctx)

		case "birthdate":
			_ = a.BirthDate(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "zoom":
			_ = a.Zoom(ctx, args)

		case "backup":
			_ = a.Backup(ctx, args)

		case "restore":
			_ = a.Restore(ctx, args)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func needsProfile(cmd string) bool {
	switch cmd {
	case "stats", "grid", "week", "profile", "rename", "birthdate", "reset":
		return true
	}
	return false
}
