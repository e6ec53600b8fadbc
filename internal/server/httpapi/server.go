// Package httpapi exposes the HTTP surface: session-based authentication,
// the device registry, the sensor reading API, wardrobe items, raw ingest,
// the weather lookup, and the AI completion passthrough.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vkotlyar/homesense/internal/logging"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/readings"
	"github.com/vkotlyar/homesense/internal/server/weather"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "session_id"

// AuthService is the authentication surface the server depends on.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, pid, location string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (int64, error)
	UserInfo(ctx context.Context, userID int64) (*models.User, error)
}

// DeviceService is the device registry surface the server depends on.
type DeviceService interface {
	Register(ctx context.Context, userID int64, deviceID string) error
	Rename(ctx context.Context, userID int64, oldID, newID string) error
	Unregister(ctx context.Context, userID int64, deviceID string) error
	List(ctx context.Context, userID int64) ([]models.Device, error)
}

// ReadingService is the sensor pipeline surface the server depends on.
type ReadingService interface {
	Insert(ctx context.Context, userID int64, kind models.SensorKind, reading *models.Reading) (int64, error)
	Query(ctx context.Context, userID int64, kind models.SensorKind, filter readings.ListFilter) ([]models.Reading, error)
	Get(ctx context.Context, userID int64, kind models.SensorKind, id int64) (*models.Reading, error)
	Update(ctx context.Context, userID int64, kind models.SensorKind, id int64, deviceID string, fields readings.UpdateFields) error
	Delete(ctx context.Context, userID int64, kind models.SensorKind, id int64) error
	Count(ctx context.Context, userID int64, kind models.SensorKind) (int64, error)
	InsertRaw(ctx context.Context, sample *models.RawTemperature) (int64, error)
	RawByMAC(ctx context.Context, mac string) ([]models.RawTemperature, error)
}

// WardrobeService is the wardrobe surface the server depends on.
type WardrobeService interface {
	Add(ctx context.Context, userID int64, itemName, itemType string) (*models.WardrobeItem, error)
	List(ctx context.Context, userID int64) ([]models.WardrobeItem, error)
	Update(ctx context.Context, userID, id int64, itemName, itemType string) error
	Remove(ctx context.Context, userID, id int64) error
}

// WeatherService resolves city names to current conditions.
type WeatherService interface {
	Current(ctx context.Context, city string) (*weather.Report, error)
}

// AIService completes prompts on behalf of a user.
type AIService interface {
	Complete(ctx context.Context, email, pid, prompt string) (string, error)
}

// Services bundles the dependencies of the HTTP server.
type Services struct {
	Auth     AuthService
	Devices  DeviceService
	Readings ReadingService
	Wardrobe WardrobeService
	Weather  WeatherService
	AI       AIService
}

// Server is the HTTP front of the application.
type Server struct {
	address    string
	sessionTTL time.Duration
	logger     logging.Logger

	auth     AuthService
	devices  DeviceService
	readings ReadingService
	wardrobe WardrobeService
	weather  WeatherService
	ai       AIService

	mux *http.ServeMux
}

// NewServer wires the route table and returns a ready-to-run server.
func NewServer(address string, sessionTTL time.Duration, logger logging.Logger, svcs Services) *Server {
	s := &Server{
		address:    address,
		sessionTTL: sessionTTL,
		logger:     logger.With("module", "http_server"),
		auth:       svcs.Auth,
		devices:    svcs.Devices,
		readings:   svcs.Readings,
		wardrobe:   svcs.Wardrobe,
		weather:    svcs.Weather,
		ai:         svcs.AI,
	}
	s.mux = s.routes()
	return s
}

// Handler returns the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.mux}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
