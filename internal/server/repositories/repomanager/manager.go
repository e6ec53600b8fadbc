package repomanager

import (
	"context"
	"database/sql"

	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/repositories/devices"
	"github.com/vkotlyar/homesense/internal/server/repositories/rawtemps"
	"github.com/vkotlyar/homesense/internal/server/repositories/readings"
	"github.com/vkotlyar/homesense/internal/server/repositories/sessions"
	"github.com/vkotlyar/homesense/internal/server/repositories/users"
	"github.com/vkotlyar/homesense/internal/server/repositories/wardrobe"
)

// RepositoryManager vends storage-backed repository implementations and
// exposes a schema migration hook. Repositories are bound to a DBTX at the
// call site so the same manager serves both plain connections and
// transactions.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Devices(db dbx.DBTX) devices.Repository
	Readings(db dbx.DBTX) readings.Repository
	RawTemperature(db dbx.DBTX) rawtemps.Repository
	Wardrobe(db dbx.DBTX) wardrobe.Repository
}
