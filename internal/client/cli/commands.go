package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
	"github.com/dmitrijs2005/weeksoflife/internal/common"
	"github.com/dmitrijs2005/weeksoflife/internal/filex"
	"github.com/dmitrijs2005/weeksoflife/internal/lifecalc"
)

var errUsage = errors.New("usage")

// fail reports err to the user and returns it. Validation problems are the
// user's to fix and are only logged at debug level.
func (a *App) fail(ctx context.Context, what string, err error) error {
	var verr *lifecalc.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(a.out, verr.Reason)
	case errors.Is(err, common.ErrValidation), errors.Is(err, errUsage):
		fmt.Fprintf(a.out, "%s: %v\n", what, err)
	default:
		fmt.Fprintf(a.out, "%s failed: %v\n", what, err)
		a.log.Error(ctx, what+" failed", "error", err)
		return err
	}
	a.log.Debug(ctx, what+" rejected", "error", err)
	return err
}

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

func (a *App) Onboard(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return a.fail(ctx, "onboarding", err)
	}
	birth, err := GetDate(a.reader, "Your birth date", a.out, time.Local)
	if err != nil {
		return a.fail(ctx, "onboarding", err)
	}

	u, err := a.profile.CompleteOnboarding(ctx, name, birth)
	if err != nil {
		return a.fail(ctx, "onboarding", err)
	}
	a.refreshStats(ctx)

	fmt.Fprintf(a.out, "Welcome, %s! You are in week %d of your life.\n", u.Name, a.calc.CurrentWeekNumber(u.BirthDate))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	a.refreshStats(ctx)
	s := a.currentStats()
	if s == nil {
		return a.fail(ctx, "stats", common.ErrNotFound)
	}

	fmt.Fprintf(a.out, "Age:                      %d years\n", s.AgeInYears)
	fmt.Fprintf(a.out, "Weeks lived:              %d\n", s.WeeksLived)
	fmt.Fprintf(a.out, "Weeks remaining:          %d of %d\n", s.WeeksRemaining, s.TotalWeeks)
	fmt.Fprintf(a.out, "Life completed:           %.2f%%\n", s.LifeCompletionPercentage)
	fmt.Fprintf(a.out, "Weeks until next birthday: %d\n", s.WeeksUntilNextBirthday)
	return nil
}

func (a *App) Grid(ctx context.Context) error {
	u, ok := a.store.GetUser(ctx)
	if !ok {
		return a.fail(ctx, "grid", common.ErrNotFound)
	}
	style := newGridStyle(a.profile.GridPreferences(ctx), a.profile.Theme(ctx), a.term)
	if err := renderGrid(a.out, a.calc.Grid(u.BirthDate), style); err != nil {
		return a.fail(ctx, "grid", err)
	}
	return nil
}

func (a *App) Week(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.fail(ctx, "week", usage("week <n>"))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= a.calc.TotalWeeks() {
		return a.fail(ctx, "week", usage(fmt.Sprintf("week number must be between 0 and %d", a.calc.TotalWeeks()-1)))
	}
	u, ok := a.store.GetUser(ctx)
	if !ok {
		return a.fail(ctx, "week", common.ErrNotFound)
	}

	start, end := lifecalc.WeekDateRange(u.BirthDate.In(time.Local), n)
	fmt.Fprintf(a.out, "Week %d: %s - %s (%s)\n", n, lifecalc.FormatDate(start), lifecalc.FormatDate(end), a.calc.WeekStatus(u.BirthDate, n))
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	sess := a.profile.Load(ctx)
	if sess.User == nil {
		return a.fail(ctx, "profile", common.ErrNotFound)
	}
	u := sess.User

	fmt.Fprintf(a.out, "Name:       %s\n", u.Name)
	fmt.Fprintf(a.out, "Born:       %s\n", lifecalc.FormatDate(u.BirthDate.In(time.Local)))
	fmt.Fprintf(a.out, "Age:        %s\n", a.calc.FormatAge(u.BirthDate))
	fmt.Fprintf(a.out, "Theme:      %s\n", sess.Theme)
	fmt.Fprintf(a.out, "Created:    %s\n", u.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(a.out, "Updated:    %s\n", u.UpdatedAt.Local().Format(time.DateTime))
	return nil
}

func (a *App) Rename(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return a.fail(ctx, "rename", err)
	}
	u, err := a.profile.Rename(ctx, name)
	if err != nil {
		return a.fail(ctx, "rename", err)
	}
	fmt.Fprintf(a.out, "Name changed to %s\n", u.Name)
	return nil
}

func (a *App) BirthDate(ctx context.Context) error {
	birth, err := GetDate(a.reader, "New birth date", a.out, time.Local)
	if err != nil {
		return a.fail(ctx, "birth date", err)
	}
	u, err := a.profile.ChangeBirthDate(ctx, birth)
	if err != nil {
		return a.fail(ctx, "birth date", err)
	}
	a.refreshStats(ctx)
	fmt.Fprintf(a.out, "Birth date changed to %s\n", lifecalc.FormatDate(u.BirthDate.In(time.Local)))
	return nil
}

func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		mode := a.profile.Theme(ctx)
		appearance := "light"
		if mode.Dark(a.term.systemDark) {
			appearance = "dark"
		}
		fmt.Fprintf(a.out, "Theme: %s (%s)\n", mode, appearance)
		return nil
	}

	if args[0] == "toggle" {
		mode, err := a.profile.ToggleTheme(ctx)
		if err != nil {
			return a.fail(ctx, "theme", err)
		}
		fmt.Fprintf(a.out, "Theme: %s\n", mode)
		return nil
	}

	mode := models.ThemeMode(args[0])
	if err := a.profile.SetTheme(ctx, mode); err != nil {
		return a.fail(ctx, "theme", err)
	}
	fmt.Fprintf(a.out, "Theme: %s\n", mode)
	return nil
}

func (a *App) Zoom(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Zoom: %.2f\n", a.profile.GridPreferences(ctx).ZoomLevel)
		return nil
	}
	level, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return a.fail(ctx, "zoom", usage("zoom <level>"))
	}
	prefs, err := a.profile.SetZoom(ctx, level)
	if err != nil {
		return a.fail(ctx, "zoom", err)
	}
	fmt.Fprintf(a.out, "Zoom: %.2f\n", prefs.ZoomLevel)
	return nil
}

func (a *App) Backup(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.fail(ctx, "backup", usage("backup <file>"))
	}
	blob, err := a.store.CreateBackup(ctx)
	if err != nil {
		return a.fail(ctx, "backup", err)
	}
	if err := filex.WriteFileAtomic(args[0], blob, 0o600); err != nil {
		return a.fail(ctx, "backup", err)
	}
	a.log.Info(ctx, "backup written", "path", args[0], "bytes", len(blob))
	fmt.Fprintf(a.out, "Backup written to %s\n", args[0])
	return nil
}

func (a *App) Restore(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.fail(ctx, "restore", usage("restore <file>"))
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return a.fail(ctx, "restore", err)
	}
	if err := a.store.RestoreBackup(ctx, blob); err != nil {
		a.refreshStats(ctx)
		return a.fail(ctx, "restore", err)
	}
	a.refreshStats(ctx)
	fmt.Fprintf(a.out, "Restored from %s\n", args[0])
	return nil
}

func (a *App) Reset(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete your profile? Theme and grid settings are kept.", a.out)
	if err != nil {
		return a.fail(ctx, "reset", err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.profile.Reset(ctx); err != nil {
		return a.fail(ctx, "reset", err)
	}
	a.refreshStats(ctx)
	fmt.Fprintln(a.out, "Profile deleted. Run 'onboard' to start again.")
	return nil
}
