package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
)

func TestWardrobeAdd(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{w: &fakeWardrobeRepo{createOut: 3}}
	svc := NewWardrobeService(db, rm)

	item, err := svc.Add(context.Background(), 7, "rain jacket", "outerwear")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if item.ID != 3 || item.UserID != 7 {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestWardrobeAdd_MissingFields(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	svc := NewWardrobeService(db, &fakeRepoManager{w: &fakeWardrobeRepo{}})

	if _, err := svc.Add(context.Background(), 7, "", "outerwear"); !errors.Is(err, common.ErrorInvalidRequest) {
		t.Fatalf("want common.ErrorInvalidRequest, got %v", err)
	}
}

func TestWardrobeUpdate_NotOwned(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{w: &fakeWardrobeRepo{updateErr: common.ErrorNotFound}}
	svc := NewWardrobeService(db, rm)

	err := svc.Update(context.Background(), 8, 3, "scarf", "accessory")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestWardrobeList(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{w: &fakeWardrobeRepo{listOut: []models.WardrobeItem{
		{ID: 1, UserID: 7, ItemName: "rain jacket", ItemType: "outerwear"},
	}}}
	svc := NewWardrobeService(db, rm)

	got, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].ItemName != "rain jacket" {
		t.Fatalf("unexpected items: %+v", got)
	}
}
