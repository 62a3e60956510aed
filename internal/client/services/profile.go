package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
	"github.com/dmitrijs2005/weeksoflife/internal/common"
	"github.com/dmitrijs2005/weeksoflife/internal/lifecalc"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"
	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

// Session is what the presentation layer needs at start-up.
type Session struct {
	User                *models.User
	OnboardingCompleted bool
	Theme               models.ThemeMode
}

// ProfileService implements the user-facing profile flows.
//
// Contract:
//   - CompleteOnboarding validates name and birth date, creates the profile
//     (or updates an existing one) and marks onboarding as done.
//   - Rename and ChangeBirthDate validate before delegating to Store.UpdateUser,
//     so they fail with common.ErrNotFound when no profile exists.
//   - Reset removes the profile and the onboarding flag; theme and grid
//     preferences survive.
type ProfileService interface {
	Load(ctx context.Context) Session
	CompleteOnboarding(ctx context.Context, name string, birthDate time.Time) (*models.User, error)
	Rename(ctx context.Context, name string) (*models.User, error)
	ChangeBirthDate(ctx context.Context, birthDate time.Time) (*models.User, error)
	Reset(ctx context.Context) error

	Theme(ctx context.Context) models.ThemeMode
	SetTheme(ctx context.Context, mode models.ThemeMode) error
	ToggleTheme(ctx context.Context) (models.ThemeMode, error)

	GridPreferences(ctx context.Context) models.GridPreferences
	SetZoom(ctx context.Context, level float64) (models.GridPreferences, error)
}

type profileService struct {
	store Store
	calc  *lifecalc.Calculator
	clock timex.Clock
	newID func() string
	log   logging.Logger
}

func NewProfileService(store Store, calc *lifecalc.Calculator, clock timex.Clock, log logging.Logger) ProfileService {
	if clock == nil {
		clock = timex.SystemClock
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &profileService{
		store: store,
		calc:  calc,
		clock: clock,
		newID: uuid.NewString,
		log:   log.With("component", "profile"),
	}
}

func (p *profileService) Load(ctx context.Context) Session {
	u, _ := p.store.GetUser(ctx)
	return Session{
		User:                u,
		OnboardingCompleted: p.store.IsOnboardingCompleted(ctx),
		Theme:               p.Theme(ctx),
	}
}

func (p *profileService) CompleteOnboarding(ctx context.Context, name string, birthDate time.Time) (*models.User, error) {
	name = strings.TrimSpace(name)
	if err := models.ValidateName(name); err != nil {
		return nil, err
	}
	if err := p.calc.ValidateBirthDate(birthDate); err != nil {
		return nil, err
	}

	var (
		user *models.User
		err  error
	)
	if p.store.HasUser(ctx) {
		user, err = p.store.UpdateUser(ctx, models.UserPatch{Name: &name, BirthDate: &birthDate})
		if err != nil {
			return nil, err
		}
	} else {
		now := p.clock.Now()
		u := models.User{
			ID:        p.newID(),
			Name:      name,
			BirthDate: birthDate,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := models.Validate(u); err != nil {
			return nil, err
		}
		if err := p.store.SetUser(ctx, u); err != nil {
			return nil, err
		}
		user = &u
		p.log.Info(ctx, "profile created", "id", u.ID)
	}

	if err := p.store.SetOnboardingCompleted(ctx, true); err != nil {
		return nil, err
	}
	return user, nil
}

func (p *profileService) Rename(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if err := models.ValidateName(name); err != nil {
		return nil, err
	}
	return p.store.UpdateUser(ctx, models.UserPatch{Name: &name})
}

func (p *profileService) ChangeBirthDate(ctx context.Context, birthDate time.Time) (*models.User, error) {
	if err := p.calc.ValidateBirthDate(birthDate); err != nil {
		return nil, err
	}
	return p.store.UpdateUser(ctx, models.UserPatch{BirthDate: &birthDate})
}

func (p *profileService) Reset(ctx context.Context) error {
	err := errors.Join(p.store.ClearUser(ctx), p.store.ResetOnboarding(ctx))
	if err != nil {
		return err
	}
	p.log.Info(ctx, "profile reset")
	return nil
}

// Theme returns the stored mode or models.DefaultTheme.
func (p *profileService) Theme(ctx context.Context) models.ThemeMode {
	if mode, ok := p.store.GetTheme(ctx); ok {
		return mode
	}
	return models.DefaultTheme
}

func (p *profileService) SetTheme(ctx context.Context, mode models.ThemeMode) error {
	return p.store.SetTheme(ctx, mode)
}

func (p *profileService) ToggleTheme(ctx context.Context) (models.ThemeMode, error) {
	next := p.Theme(ctx).Toggle()
	if err := p.store.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// GridPreferences returns the stored preferences or the defaults.
func (p *profileService) GridPreferences(ctx context.Context) models.GridPreferences {
	if prefs, ok := p.store.GetGridPreferences(ctx); ok {
		return *prefs
	}
	return models.DefaultGridPreferences()
}

// SetZoom clamps level into the allowed range and persists it.
func (p *profileService) SetZoom(ctx context.Context, level float64) (models.GridPreferences, error) {
	if level <= 0 {
		return models.GridPreferences{}, fmt.Errorf("%w: zoom must be positive", common.ErrValidation)
	}
	prefs := p.GridPreferences(ctx)
	prefs.ZoomLevel = models.ClampZoom(level)
	if prefs.CellSize <= 0 {
		prefs.CellSize = models.DefaultCellSize
	}
	if err := p.store.SetGridPreferences(ctx, prefs); err != nil {
		return models.GridPreferences{}, err
	}
	return prefs, nil
}
