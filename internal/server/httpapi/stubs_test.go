package httpapi

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/vkotlyar/homesense/internal/logging"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/readings"
	"github.com/vkotlyar/homesense/internal/server/weather"
)

// --- stub services ---

type stubAuth struct {
	signupOut *models.User
	signupErr error

	loginOut *models.Session
	loginErr error

	logoutErr error

	authUserID int64
	authErr    error

	infoOut *models.User
	infoErr error

	loggedOut []string
}

func (a *stubAuth) Signup(ctx context.Context, name, email, password, pid, location string) (*models.User, error) {
	if a.signupErr != nil {
		return nil, a.signupErr
	}
	return a.signupOut, nil
}
func (a *stubAuth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return a.loginOut, nil
}
func (a *stubAuth) Logout(ctx context.Context, sessionID string) error {
	a.loggedOut = append(a.loggedOut, sessionID)
	return a.logoutErr
}
func (a *stubAuth) Authenticate(ctx context.Context, sessionID string) (int64, error) {
	if a.authErr != nil {
		return 0, a.authErr
	}
	return a.authUserID, nil
}
func (a *stubAuth) UserInfo(ctx context.Context, userID int64) (*models.User, error) {
	if a.infoErr != nil {
		return nil, a.infoErr
	}
	return a.infoOut, nil
}

type stubDevices struct {
	registerErr   error
	renameErr     error
	unregisterErr error

	listOut []models.Device
	listErr error

	registered []string
}

func (d *stubDevices) Register(ctx context.Context, userID int64, deviceID string) error {
	d.registered = append(d.registered, deviceID)
	return d.registerErr
}
func (d *stubDevices) Rename(ctx context.Context, userID int64, oldID, newID string) error {
	return d.renameErr
}
func (d *stubDevices) Unregister(ctx context.Context, userID int64, deviceID string) error {
	return d.unregisterErr
}
func (d *stubDevices) List(ctx context.Context, userID int64) ([]models.Device, error) {
	return d.listOut, d.listErr
}

type stubReadings struct {
	insertOut int64
	insertErr error

	queryOut    []models.Reading
	queryErr    error
	queryFilter readings.ListFilter

	getOut *models.Reading
	getErr error

	updateErr    error
	updateDevice string
	deleteErr    error

	countOut int64
	countErr error

	rawInsertOut int64
	rawInsertErr error
	rawInserted  []*models.RawTemperature

	rawListOut []models.RawTemperature
	rawListErr error
}

func (s *stubReadings) Insert(ctx context.Context, userID int64, kind models.SensorKind, reading *models.Reading) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	return s.insertOut, nil
}
func (s *stubReadings) Query(ctx context.Context, userID int64, kind models.SensorKind, filter readings.ListFilter) ([]models.Reading, error) {
	s.queryFilter = filter
	return s.queryOut, s.queryErr
}
func (s *stubReadings) Get(ctx context.Context, userID int64, kind models.SensorKind, id int64) (*models.Reading, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getOut, nil
}
func (s *stubReadings) Update(ctx context.Context, userID int64, kind models.SensorKind, id int64, deviceID string, fields readings.UpdateFields) error {
	s.updateDevice = deviceID
	return s.updateErr
}
func (s *stubReadings) Delete(ctx context.Context, userID int64, kind models.SensorKind, id int64) error {
	return s.deleteErr
}
func (s *stubReadings) Count(ctx context.Context, userID int64, kind models.SensorKind) (int64, error) {
	return s.countOut, s.countErr
}
func (s *stubReadings) InsertRaw(ctx context.Context, sample *models.RawTemperature) (int64, error) {
	if s.rawInsertErr != nil {
		return 0, s.rawInsertErr
	}
	s.rawInserted = append(s.rawInserted, sample)
	return s.rawInsertOut, nil
}
func (s *stubReadings) RawByMAC(ctx context.Context, mac string) ([]models.RawTemperature, error) {
	return s.rawListOut, s.rawListErr
}

type stubWardrobe struct {
	addOut *models.WardrobeItem
	addErr error

	listOut []models.WardrobeItem
	listErr error

	updateErr error
	removeErr error
}

func (s *stubWardrobe) Add(ctx context.Context, userID int64, itemName, itemType string) (*models.WardrobeItem, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.addOut, nil
}
func (s *stubWardrobe) List(ctx context.Context, userID int64) ([]models.WardrobeItem, error) {
	return s.listOut, s.listErr
}
func (s *stubWardrobe) Update(ctx context.Context, userID, id int64, itemName, itemType string) error {
	return s.updateErr
}
func (s *stubWardrobe) Remove(ctx context.Context, userID, id int64) error {
	return s.removeErr
}

type stubWeather struct {
	out *weather.Report
	err error
}

func (s *stubWeather) Current(ctx context.Context, city string) (*weather.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

type stubAI struct {
	out string
	err error

	gotEmail  string
	gotPID    string
	gotPrompt string
}

func (s *stubAI) Complete(ctx context.Context, email, pid, prompt string) (string, error) {
	s.gotEmail, s.gotPID, s.gotPrompt = email, pid, prompt
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

type serverStubs struct {
	auth     *stubAuth
	devices  *stubDevices
	readings *stubReadings
	wardrobe *stubWardrobe
	weather  *stubWeather
	ai       *stubAI
}

func newTestServer(t *testing.T, stubs serverStubs) *Server {
	t.Helper()
	if stubs.auth == nil {
		stubs.auth = &stubAuth{authUserID: 1}
	}
	if stubs.devices == nil {
		stubs.devices = &stubDevices{}
	}
	if stubs.readings == nil {
		stubs.readings = &stubReadings{}
	}
	if stubs.wardrobe == nil {
		stubs.wardrobe = &stubWardrobe{}
	}
	if stubs.weather == nil {
		stubs.weather = &stubWeather{}
	}
	if stubs.ai == nil {
		stubs.ai = &stubAI{}
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", time.Hour, logger, Services{
		Auth:     stubs.auth,
		Devices:  stubs.devices,
		Readings: stubs.readings,
		Wardrobe: stubs.wardrobe,
		Weather:  stubs.weather,
		AI:       stubs.ai,
	})
}
