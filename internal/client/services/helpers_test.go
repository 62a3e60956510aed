package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
	"github.com/dmitrijs2005/weeksoflife/internal/client/repositories/kv"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"
	"github.com/dmitrijs2005/weeksoflife/internal/timex"
)

var errBoom = errors.New("boom")

// faultyRepo wraps a MemoryRepository and fails selected operations.
type faultyRepo struct {
	*kv.MemoryRepository

	failGet    map[string]bool
	failSet    map[string]bool
	failDelete bool
	failList   bool
	setCalls   []string
}

func newFaultyRepo() *faultyRepo {
	return &faultyRepo{
		MemoryRepository: kv.NewMemoryRepository(),
		failGet:          map[string]bool{},
		failSet:          map[string]bool{},
	}
}

func (f *faultyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet[key] {
		return nil, errBoom
	}
	return f.MemoryRepository.Get(ctx, key)
}

func (f *faultyRepo) Set(ctx context.Context, key string, value []byte) error {
	f.setCalls = append(f.setCalls, key)
	if f.failSet[key] {
		return errBoom
	}
	return f.MemoryRepository.Set(ctx, key, value)
}

func (f *faultyRepo) Delete(ctx context.Context, key string) error {
	if f.failDelete {
		return errBoom
	}
	return f.MemoryRepository.Delete(ctx, key)
}

func (f *faultyRepo) List(ctx context.Context) (map[string][]byte, error) {
	if f.failList {
		return nil, errBoom
	}
	return f.MemoryRepository.List(ctx)
}

func (f *faultyRepo) Clear(ctx context.Context) error {
	if f.failDelete {
		return errBoom
	}
	return f.MemoryRepository.Clear(ctx)
}

// mutableClock is a Clock tests can advance.
type mutableClock struct{ t time.Time }

func (c *mutableClock) Now() time.Time { return c.t }

func (c *mutableClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

var _ timex.Clock = (*mutableClock)(nil)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleUser() models.User {
	created := time.Date(2024, 1, 1, 9, 30, 15, 123456789, time.UTC)
	return models.User{
		ID:        "user-1",
		Name:      "Ann",
		BirthDate: utc(1990, 1, 1),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func newTestStore(t *testing.T) (Store, *faultyRepo, *mutableClock) {
	t.Helper()
	repo := newFaultyRepo()
	clock := &mutableClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(repo, clock, logging.Nop{}), repo, clock
}
