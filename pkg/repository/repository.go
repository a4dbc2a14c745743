package repository

import (
	"context"
	"embed"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/lunch/pkg/domain"
)

//go:embed schema.sql seed.csv
var schemaFS embed.FS

// Config represents database configuration
type Config struct {
	Path            string // database file, parent directory created if missing
	DSN             string // overrides Path if set
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Seed            bool // load the built-in restaurant list into an empty file database
}

// Repositories contains all repository instances
type Repositories struct {
	Restaurant *RestaurantRepository
	Selection  *SelectionRepository
	DB         *sqlx.DB
}

// NewRepositories opens the database, makes sure the schema exists and creates all repositories
// with a shared connection. All errors are wrapped with domain.ErrStorageInit.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	dsn, err := makeDSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageInit, err)
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", domain.ErrStorageInit, err)
	}

	if err := setupDB(ctx, db, cfg, isMemory(dsn)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageInit, err)
	}

	repos := &Repositories{
		Restaurant: NewRestaurantRepository(db),
		Selection:  NewSelectionRepository(db),
		DB:         db,
	}

	// in-memory databases are scratch stores and never seeded
	if cfg.Seed && !isMemory(dsn) {
		seed, err := schemaFS.Open("seed.csv")
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: open seed: %w", domain.ErrStorageInit, err)
		}
		defer seed.Close()
		n, err := repos.Restaurant.SeedRestaurants(ctx, seed)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: seed restaurants: %w", domain.ErrStorageInit, err)
		}
		if n > 0 {
			log.Printf("[INFO] seeded %d restaurants", n)
		}
	}

	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// makeDSN builds sqlite DSN from config, creating the data directory for file databases
func makeDSN(cfg Config) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	if cfg.Path == "" {
		return "", fmt.Errorf("database path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	// sqlite decodes %XX in file URIs, so ?, # and % in the path survive
	path := (&url.URL{Path: filepath.ToSlash(cfg.Path)}).EscapedPath()
	return fmt.Sprintf("file:%s?mode=rwc&_txlock=immediate&_pragma=busy_timeout(5000)", path), nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// setupDB configures the pool, applies pragmas, creates schema and runs migrations
func setupDB(ctx context.Context, db *sqlx.DB, cfg Config, memory bool) error {
	// each connection to :memory: is a separate database
	if memory {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 && !memory {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA busy_timeout = 5000", // 5 second timeout for locks
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if err := initSchema(ctx, db); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sqlx.DB) error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	return nil
}
