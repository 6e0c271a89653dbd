package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/roadfleet/roadfleet/internal/server/migrations"
	"github.com/roadfleet/roadfleet/internal/server/repositories/bookings"
	"github.com/roadfleet/roadfleet/internal/server/repositories/stats"
	"github.com/roadfleet/roadfleet/internal/server/repositories/users"
	"github.com/roadfleet/roadfleet/internal/server/repositories/vehicles"
)

// PostgresRepositoryManager holds PostgreSQL-backed repository implementations
// sharing one connection pool.
type PostgresRepositoryManager struct {
	db       *sql.DB
	users    *users.PostgresRepository
	vehicles *vehicles.PostgresRepository
	bookings *bookings.PostgresRepository
	stats    *stats.PostgresRepository
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Vehicles() vehicles.Repository {
	return m.vehicles
}

func (m *PostgresRepositoryManager) Bookings() bookings.Repository {
	return m.bookings
}

func (m *PostgresRepositoryManager) Stats() stats.Repository {
	return m.stats
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

// OpenDB opens a pgx-backed connection pool for the given DSN.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return db, nil
}

// NewPostgresRepositoryManager constructs the repository set over db.
func NewPostgresRepositoryManager(db *sql.DB) (*PostgresRepositoryManager, error) {
	m := &PostgresRepositoryManager{db: db}

	var err error
	if m.users, err = users.NewPostgresRepository(db); err != nil {
		return nil, err
	}
	if m.vehicles, err = vehicles.NewPostgresRepository(db); err != nil {
		return nil, err
	}
	if m.bookings, err = bookings.NewPostgresRepository(db); err != nil {
		return nil, err
	}
	if m.stats, err = stats.NewPostgresRepository(db); err != nil {
		return nil, err
	}

	return m, nil
}

// Close releases the underlying connection pool.
func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
