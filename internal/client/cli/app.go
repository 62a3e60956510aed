package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/client/config"
	"github.com/dmitrijs2005/weeksoflife/internal/client/services"
	"github.com/dmitrijs2005/weeksoflife/internal/client/storage"
	"github.com/dmitrijs2005/weeksoflife/internal/lifecalc"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"
	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

type App struct {
	config  *config.Config
	backend *storage.Backend
	store   services.Store
	profile services.ProfileService
	calc    *lifecalc.Calculator
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	term   terminal

	mu    sync.Mutex
	stats *lifecalc.LifeCalculations
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	backend, err := storage.Open(ctx, c.StorageOptions(), log)
	if err != nil {
		log.Error(ctx, "error opening storage", "storage", c.Storage, "error", err)
		return nil, err
	}

	clock := timex.SystemClock
	calc := lifecalc.New(clock)
	store := services.NewStore(backend.Repo, clock, log)

	return &App{
		config:  c,
		backend: backend,
		store:   store,
		profile: services.NewProfileService(store, calc, clock, log),
		calc:    calc,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		term:    detectTerminal(os.Stdout),
	}, nil
}

// Run blocks in the REPL until the user quits or ctx is cancelled, then
// releases the backend.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to weeksoflife (type 'help' for commands)")

	sess := a.profile.Load(ctx)
	if !sess.OnboardingCompleted || sess.User == nil {
		fmt.Fprintln(a.out, "No profile yet. Let's set one up.")
		_ = a.Onboard(ctx)
	}
	a.refreshStats(ctx)

	go a.StartStatsRefresher(ctx, a.config.RefreshInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
	return a.Close()
}

func (a *App) Close() error {
	if a.backend == nil {
		return nil
	}
	return a.backend.Close()
}

func (a *App) isOnboarded() bool {
	return a.currentStats() != nil
}

// getStatus renders the prompt prefix, e.g. "(week 1774, 44.35%)".
func (a *App) getStatus() string {
	s := a.currentStats()
	if s == nil {
		return ""
	}
	return fmt.Sprintf("(week %d, %.2f%%)", s.CurrentWeek, s.LifeCompletionPercentage)
}

func (a *App) currentStats() *lifecalc.LifeCalculations {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// refreshStats recomputes statistics from the stored profile. Without a
// profile the cached statistics are dropped.
func (a *App) refreshStats(ctx context.Context) {
	var next *lifecalc.LifeCalculations
	if u, ok := a.store.GetUser(ctx); ok {
		all := a.calc.All(u.BirthDate)
		next = &all
	}

	a.mu.Lock()
	prev := a.stats
	a.stats = next
	a.mu.Unlock()

	if prev != nil && next != nil && prev.CurrentWeek != next.CurrentWeek {
		a.log.Info(ctx, "week rolled over", "week", next.CurrentWeek)
	}
}

// StartStatsRefresher recomputes statistics every interval until ctx is done.
func (a *App) StartStatsRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.log.Warn(ctx, "stats refresher disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refreshStats(ctx)
		case <-ctx.Done():
			return
		}
	}
}
