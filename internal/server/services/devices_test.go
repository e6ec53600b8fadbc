package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
)

func TestRegister_EmptyMAC(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewDeviceService(db, &fakeRepoManager{d: &fakeDevicesRepo{}})

	if err := svc.Register(context.Background(), 7, ""); !errors.Is(err, common.ErrorInvalidRequest) {
		t.Fatalf("want common.ErrorInvalidRequest, got %v", err)
	}
}

func TestRegister_DuplicateMAC(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{d: &fakeDevicesRepo{createErr: common.ErrorConflict}}
	svc := NewDeviceService(db, rm)

	if err := svc.Register(context.Background(), 7, "AA:BB:CC"); !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
}

func TestRename_EmptyNewMAC(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewDeviceService(db, &fakeRepoManager{d: &fakeDevicesRepo{}})

	if err := svc.Rename(context.Background(), 7, "AA:BB:CC", ""); !errors.Is(err, common.ErrorInvalidRequest) {
		t.Fatalf("want common.ErrorInvalidRequest, got %v", err)
	}
}

func TestList(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{d: &fakeDevicesRepo{listOut: []models.Device{
		{ID: 1, UserID: 7, DeviceID: "AA:BB:CC"},
	}}}
	svc := NewDeviceService(db, rm)

	got, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].DeviceID != "AA:BB:CC" {
		t.Fatalf("unexpected devices: %+v", got)
	}
}
