// Package server initializes and runs the main application server.
// It opens the database, applies migrations, wires the services, handles
// graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/logging"
	"github.com/vkotlyar/homesense/internal/server/ai"
	"github.com/vkotlyar/homesense/internal/server/config"
	"github.com/vkotlyar/homesense/internal/server/httpapi"
	"github.com/vkotlyar/homesense/internal/server/repositories/repomanager"
	"github.com/vkotlyar/homesense/internal/server/services"
	"github.com/vkotlyar/homesense/internal/server/weather"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	rm     repomanager.RepositoryManager

	authService     *services.AuthService
	deviceService   *services.DeviceService
	readingService  *services.ReadingService
	wardrobeService *services.WardrobeService
	weatherClient   *weather.Client
	aiClient        *ai.Client
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	app := &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		rm:              rm,
		authService:     services.NewAuthService(db, rm, cfg.SessionLifetime),
		deviceService:   services.NewDeviceService(db, rm),
		readingService:  services.NewReadingService(db, rm),
		wardrobeService: services.NewWardrobeService(db, rm),
		weatherClient:   weather.New(),
		aiClient:        ai.New(),
	}

	if cfg.SeedDemoUser {
		if err := app.seedDemoUser(ctx); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	return app, nil
}

// seedDemoUser creates a demo account when the database has no users yet.
// Development convenience, guarded by config.
func (app *App) seedDemoUser(ctx context.Context) error {
	n, err := app.rm.Users(app.db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = app.authService.Signup(ctx, "Demo User", "demo@example.com", "demo", "0", "riga")
	if err != nil && !errors.Is(err, common.ErrorConflict) {
		return err
	}
	app.logger.Info(ctx, "Seeded demo user", "email", "demo@example.com")
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.config.SessionLifetime, app.logger, httpapi.Services{
		Auth:     app.authService,
		Devices:  app.deviceService,
		Readings: app.readingService,
		Wardrobe: app.wardrobeService,
		Weather:  app.weatherClient,
		AI:       app.aiClient,
	})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err.Error())
	}
}
