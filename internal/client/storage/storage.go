// Package storage opens the key-value backend selected by configuration and
// prepares it for use (migrations for SQLite, a ping for Redis).
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/weeksoflife/internal/client/migrations"
	"github.com/dmitrijs2005/weeksoflife/internal/client/repositories/kv"
	"github.com/dmitrijs2005/weeksoflife/internal/filex"
	"github.com/dmitrijs2005/weeksoflife/internal/logging"

	_ "modernc.org/sqlite"
)

// Backend kinds.
const (
	KindSQLite = "sqlite"
	KindMemory = "memory"
	KindRedis  = "redis"
)

const defaultRedisTimeout = 5 * time.Second

type Options struct {
	Kind string
	// Path is the SQLite DSN, e.g. "weeks.db" or ":memory:".
	Path string

	RedisAddr    string
	RedisDB      int
	RedisPrefix  string
	RedisTimeout time.Duration
}

// Backend is an opened repository plus whatever must be closed with it.
type Backend struct {
	Repo   kv.Repository
	closer io.Closer
}

func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// Open builds the backend named by opts.Kind.
func Open(ctx context.Context, opts Options, log logging.Logger) (*Backend, error) {
	switch opts.Kind {
	case KindSQLite, "":
		db, err := OpenSQLite(ctx, opts.Path, log)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: kv.NewSQLiteRepository(db), closer: db}, nil

	case KindMemory:
		return &Backend{Repo: kv.NewMemoryRepository()}, nil

	case KindRedis:
		client, err := ConnectRedis(ctx, opts)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: kv.NewRedisRepository(client, opts.RedisPrefix), closer: client}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Kind)
	}
}

// OpenSQLite opens dsn with the modernc driver and applies pending migrations.
// A single connection is used: the store has one writer, and ":memory:"
// databases are per-connection.
func OpenSQLite(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	if isFilePath(dsn) {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// isFilePath reports whether dsn names a plain file rather than ":memory:"
// or a "file:" URI.
func isFilePath(dsn string) bool {
	return dsn != "" && !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:")
}

func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// ConnectRedis creates a client and validates connectivity with a ping.
func ConnectRedis(ctx context.Context, opts Options) (*redis.Client, error) {
	timeout := opts.RedisTimeout
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: opts.RedisAddr,
		DB:   opts.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// gooseLogger routes goose output to the application logger at debug level.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	if g.log == nil {
		return
	}
	g.log.Debug(g.ctx, fmt.Sprintf(format, v...), "component", "migrations")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	if g.log != nil {
		g.log.Error(g.ctx, msg, "component", "migrations")
	}
	panic(msg)
}
