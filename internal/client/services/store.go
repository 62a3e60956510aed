package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
	"github.com/dmitrijs2005/weeksoflife/internal/client/repositories/kv"
	"github.com/dmitrijs2005/weeksoflife/internal/common"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"
	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

// Store defines typed persistence for every record kind.
//
// Contract:
//   - Getters report absence with a false/nil result and never return errors.
//   - Setters, Clear*/Reset* and UpdateUser return errors wrapping
//     common.ErrStorageWrite when the backend fails.
//   - Each record kind has its own key; there are no cross-record transactions.
type Store interface {
	SetUser(ctx context.Context, u models.User) error
	GetUser(ctx context.Context) (*models.User, bool)
	UpdateUser(ctx context.Context, patch models.UserPatch) (*models.User, error)
	ClearUser(ctx context.Context) error
	HasUser(ctx context.Context) bool

	SetTheme(ctx context.Context, mode models.ThemeMode) error
	GetTheme(ctx context.Context) (models.ThemeMode, bool)
	ClearTheme(ctx context.Context) error

	SetOnboardingCompleted(ctx context.Context, completed bool) error
	IsOnboardingCompleted(ctx context.Context) bool
	ResetOnboarding(ctx context.Context) error

	SetGridPreferences(ctx context.Context, prefs models.GridPreferences) error
	GetGridPreferences(ctx context.Context) (*models.GridPreferences, bool)
	ClearGridPreferences(ctx context.Context) error

	CreateBackup(ctx context.Context) ([]byte, error)
	RestoreBackup(ctx context.Context, blob []byte) error

	// Keys lists every stored key, sorted. Read errors yield an empty list.
	Keys(ctx context.Context) []string
	// Clear removes every record.
	Clear(ctx context.Context) error
}

type store struct {
	repo  kv.Repository
	clock timex.Clock
	log   logging.Logger
}

// NewStore binds a Store to repo. clock stamps UpdatedAt and backup
// timestamps; log receives warnings for unreadable records.
func NewStore(repo kv.Repository, clock timex.Clock, log logging.Logger) Store {
	if clock == nil {
		clock = timex.SystemClock
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &store{repo: repo, clock: clock, log: log.With("component", "store")}
}

// read returns the raw value for key, or nil when absent or unreadable.
func (s *store) read(ctx context.Context, key string) []byte {
	b, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "record read failed", "key", key, "error", err)
		return nil
	}
	return b
}

// readJSON decodes key into v and reports whether a usable value was found.
func (s *store) readJSON(ctx context.Context, key string, v any) bool {
	b := s.read(ctx, key)
	if b == nil {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.log.Warn(ctx, "record is not valid JSON", "key", key, "error", err)
		return false
	}
	return true
}

func (s *store) write(ctx context.Context, key string, value []byte) error {
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.log.Error(ctx, "record write failed", "key", key, "error", err)
		return fmt.Errorf("%w: %s: %w", common.ErrStorageWrite, key, err)
	}
	return nil
}

func (s *store) writeJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrStorageWrite, key, err)
	}
	return s.write(ctx, key, b)
}

func (s *store) remove(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.log.Error(ctx, "record delete failed", "key", key, "error", err)
		return fmt.Errorf("%w: %s: %w", common.ErrStorageWrite, key, err)
	}
	return nil
}

func (s *store) SetUser(ctx context.Context, u models.User) error {
	b, err := encodeUser(u)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrStorageWrite, common.KeyUserData, err)
	}
	return s.write(ctx, common.KeyUserData, b)
}

func (s *store) GetUser(ctx context.Context) (*models.User, bool) {
	b := s.read(ctx, common.KeyUserData)
	if b == nil {
		return nil, false
	}
	u, err := decodeUser(b)
	if err != nil {
		s.log.Warn(ctx, "user record is unreadable", "key", common.KeyUserData, "error", err)
		return nil, false
	}
	return u, true
}

// UpdateUser merges patch onto the stored user and stamps UpdatedAt.
func (s *store) UpdateUser(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	existing, ok := s.GetUser(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no existing user data", common.ErrNotFound)
	}

	updated := patch.Apply(*existing)
	updated.UpdatedAt = s.clock.Now()

	if err := s.SetUser(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *store) ClearUser(ctx context.Context) error {
	return s.remove(ctx, common.KeyUserData)
}

func (s *store) HasUser(ctx context.Context) bool {
	_, ok := s.GetUser(ctx)
	return ok
}

func (s *store) SetTheme(ctx context.Context, mode models.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown theme mode %q", common.ErrValidation, mode)
	}
	return s.writeJSON(ctx, common.KeyThemePreference, mode)
}

func (s *store) GetTheme(ctx context.Context) (models.ThemeMode, bool) {
	var mode models.ThemeMode
	if !s.readJSON(ctx, common.KeyThemePreference, &mode) {
		return "", false
	}
	if !mode.Valid() {
		s.log.Warn(ctx, "stored theme is not recognised", "key", common.KeyThemePreference, "value", string(mode))
		return "", false
	}
	return mode, true
}

func (s *store) ClearTheme(ctx context.Context) error {
	return s.remove(ctx, common.KeyThemePreference)
}

func (s *store) SetOnboardingCompleted(ctx context.Context, completed bool) error {
	return s.writeJSON(ctx, common.KeyOnboardingCompleted, completed)
}

// IsOnboardingCompleted is true only for a stored JSON true.
func (s *store) IsOnboardingCompleted(ctx context.Context) bool {
	var completed bool
	return s.readJSON(ctx, common.KeyOnboardingCompleted, &completed) && completed
}

func (s *store) ResetOnboarding(ctx context.Context) error {
	return s.remove(ctx, common.KeyOnboardingCompleted)
}

func (s *store) SetGridPreferences(ctx context.Context, prefs models.GridPreferences) error {
	if err := models.Validate(prefs); err != nil {
		return err
	}
	return s.writeJSON(ctx, common.KeyGridPreferences, prefs)
}

func (s *store) GetGridPreferences(ctx context.Context) (*models.GridPreferences, bool) {
	var prefs models.GridPreferences
	if !s.readJSON(ctx, common.KeyGridPreferences, &prefs) {
		return nil, false
	}
	return &prefs, true
}

func (s *store) ClearGridPreferences(ctx context.Context) error {
	return s.remove(ctx, common.KeyGridPreferences)
}

func (s *store) Keys(ctx context.Context) []string {
	m, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn(ctx, "listing records failed", "error", err)
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *store) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "clearing records failed", "error", err)
		return fmt.Errorf("%w: clear: %w", common.ErrStorageWrite, err)
	}
	return nil
}
