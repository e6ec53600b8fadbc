package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/models"
	devicesrepo "github.com/vkotlyar/homesense/internal/server/repositories/devices"
	rawtempsrepo "github.com/vkotlyar/homesense/internal/server/repositories/rawtemps"
	readingsrepo "github.com/vkotlyar/homesense/internal/server/repositories/readings"
	sessionsrepo "github.com/vkotlyar/homesense/internal/server/repositories/sessions"
	usersrepo "github.com/vkotlyar/homesense/internal/server/repositories/users"
	wardroberepo "github.com/vkotlyar/homesense/internal/server/repositories/wardrobe"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	countOut int64
	countErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}
func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}
func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}
func (f *fakeUsersRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, f.countErr
}

type fakeSessionsRepo struct {
	created    []*models.Session
	createErrs []error

	getOut *models.Session
	getErr error

	deleted []string
	delErr  error
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *models.Session) error {
	f.created = append(f.created, s)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		return err
	}
	return nil
}
func (f *fakeSessionsRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeSessionsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.delErr
}

type fakeDevicesRepo struct {
	createErr error
	renameErr error
	delErr    error

	listOut []models.Device
	listErr error

	ownedOut bool
	ownedErr error
}

func (f *fakeDevicesRepo) Create(ctx context.Context, userID int64, deviceID string) error {
	return f.createErr
}
func (f *fakeDevicesRepo) Rename(ctx context.Context, userID int64, oldID, newID string) error {
	return f.renameErr
}
func (f *fakeDevicesRepo) Delete(ctx context.Context, userID int64, deviceID string) error {
	return f.delErr
}
func (f *fakeDevicesRepo) ListByUser(ctx context.Context, userID int64) ([]models.Device, error) {
	return f.listOut, f.listErr
}
func (f *fakeDevicesRepo) Owned(ctx context.Context, userID int64, deviceID string) (bool, error) {
	return f.ownedOut, f.ownedErr
}

type fakeReadingsRepo struct {
	inserted  []*models.Reading
	insertOut int64
	insertErr error

	listOut []models.Reading
	listErr error

	getOut *models.Reading
	getErr error

	updated   []int64
	updateErr error
	delErr    error

	countOut int64
	countErr error
}

func (f *fakeReadingsRepo) Insert(ctx context.Context, kind models.SensorKind, r *models.Reading) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, r)
	return f.insertOut, nil
}
func (f *fakeReadingsRepo) List(ctx context.Context, kind models.SensorKind, userID int64, filter readingsrepo.ListFilter) ([]models.Reading, error) {
	return f.listOut, f.listErr
}
func (f *fakeReadingsRepo) GetByID(ctx context.Context, kind models.SensorKind, userID, id int64) (*models.Reading, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeReadingsRepo) Update(ctx context.Context, kind models.SensorKind, userID, id int64, fields readingsrepo.UpdateFields) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, id)
	return nil
}
func (f *fakeReadingsRepo) Delete(ctx context.Context, kind models.SensorKind, userID, id int64) error {
	return f.delErr
}
func (f *fakeReadingsRepo) Count(ctx context.Context, kind models.SensorKind, userID int64) (int64, error) {
	return f.countOut, f.countErr
}

type fakeRawTempsRepo struct {
	inserted  []*models.RawTemperature
	insertOut int64
	insertErr error

	listOut []models.RawTemperature
	listErr error
}

func (f *fakeRawTempsRepo) Insert(ctx context.Context, s *models.RawTemperature) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, s)
	return f.insertOut, nil
}
func (f *fakeRawTempsRepo) ListByMAC(ctx context.Context, mac string) ([]models.RawTemperature, error) {
	return f.listOut, f.listErr
}

type fakeWardrobeRepo struct {
	createOut int64
	createErr error

	listOut []models.WardrobeItem
	listErr error

	updateErr error
	delErr    error
}

func (f *fakeWardrobeRepo) Create(ctx context.Context, item *models.WardrobeItem) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeWardrobeRepo) ListByUser(ctx context.Context, userID int64) ([]models.WardrobeItem, error) {
	return f.listOut, f.listErr
}
func (f *fakeWardrobeRepo) Update(ctx context.Context, userID, id int64, itemName, itemType string) error {
	return f.updateErr
}
func (f *fakeWardrobeRepo) Delete(ctx context.Context, userID, id int64) error {
	return f.delErr
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	s  *fakeSessionsRepo
	d  *fakeDevicesRepo
	r  *fakeReadingsRepo
	rt *fakeRawTempsRepo
	w  *fakeWardrobeRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error       { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return m.u }
func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessionsrepo.Repository       { return m.s }
func (m *fakeRepoManager) Devices(db dbx.DBTX) devicesrepo.Repository         { return m.d }
func (m *fakeRepoManager) Readings(db dbx.DBTX) readingsrepo.Repository       { return m.r }
func (m *fakeRepoManager) RawTemperature(db dbx.DBTX) rawtempsrepo.Repository { return m.rt }
func (m *fakeRepoManager) Wardrobe(db dbx.DBTX) wardroberepo.Repository       { return m.w }
