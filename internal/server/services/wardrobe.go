package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/repomanager"
)

// WardrobeService manages per-user wardrobe items.
type WardrobeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewWardrobeService constructs a WardrobeService.
func NewWardrobeService(db *sql.DB, m repomanager.RepositoryManager) *WardrobeService {
	return &WardrobeService{db: db, repomanager: m}
}

// Add stores a new item for the user and returns it with the assigned id.
func (s *WardrobeService) Add(ctx context.Context, userID int64, itemName, itemType string) (*models.WardrobeItem, error) {
	if itemName == "" || itemType == "" {
		return nil, common.ErrorInvalidRequest
	}
	item := &models.WardrobeItem{UserID: userID, ItemName: itemName, ItemType: itemType}
	repo := s.repomanager.Wardrobe(s.db)
	id, err := repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating wardrobe item: %w", err)
	}
	item.ID = id
	return item, nil
}

// List returns the user's items.
func (s *WardrobeService) List(ctx context.Context, userID int64) ([]models.WardrobeItem, error) {
	repo := s.repomanager.Wardrobe(s.db)
	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing wardrobe items: %w", err)
	}
	return result, nil
}

// Update replaces name and type of an owned item, or common.ErrorNotFound.
func (s *WardrobeService) Update(ctx context.Context, userID, id int64, itemName, itemType string) error {
	if itemName == "" || itemType == "" {
		return common.ErrorInvalidRequest
	}
	repo := s.repomanager.Wardrobe(s.db)
	return repo.Update(ctx, userID, id, itemName, itemType)
}

// Remove deletes an owned item, or common.ErrorNotFound.
func (s *WardrobeService) Remove(ctx context.Context, userID, id int64) error {
	repo := s.repomanager.Wardrobe(s.db)
	return repo.Delete(ctx, userID, id)
}
