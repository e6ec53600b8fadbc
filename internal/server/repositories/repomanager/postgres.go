// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/migrations"
	"github.com/vkotlyar/homesense/internal/server/repositories/devices"
	"github.com/vkotlyar/homesense/internal/server/repositories/rawtemps"
	"github.com/vkotlyar/homesense/internal/server/repositories/readings"
	"github.com/vkotlyar/homesense/internal/server/repositories/sessions"
	"github.com/vkotlyar/homesense/internal/server/repositories/users"
	"github.com/vkotlyar/homesense/internal/server/repositories/wardrobe"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Sessions returns a sessions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

// Devices returns a devices.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Devices(db dbx.DBTX) devices.Repository {
	return devices.NewPostgresRepository(db)
}

// Readings returns a readings.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Readings(db dbx.DBTX) readings.Repository {
	return readings.NewPostgresRepository(db)
}

// RawTemperature returns a rawtemps.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RawTemperature(db dbx.DBTX) rawtemps.Repository {
	return rawtemps.NewPostgresRepository(db)
}

// Wardrobe returns a wardrobe.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Wardrobe(db dbx.DBTX) wardrobe.Repository {
	return wardrobe.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
