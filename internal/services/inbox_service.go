package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/models"
	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/owner"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsertInboxItem struct {
	item models.InboxItem
}

func NewInsertInboxItem(userID string, req dto.CreateInboxItemRequest) (InsertInboxItem, error) {
	v := &ValidationError{}
	if userID == "" {
		v.add("userId", "is required")
	}
	v.requireText("content", req.Content)
	if err := v.err(); err != nil {
		return InsertInboxItem{}, err
	}

	item := models.InboxItem{
		UserID:  userID,
		Content: strings.TrimSpace(*req.Content),
		Notes:   req.Notes,
	}
	if req.IsProcessed != nil {
		item.IsProcessed = *req.IsProcessed
	}
	return InsertInboxItem{item: item}, nil
}

type InboxItemPatch struct {
	columns map[string]interface{}
}

func NewInboxItemPatch(req dto.UpdateInboxItemRequest) (InboxItemPatch, error) {
	v := &ValidationError{}
	v.optionalText("content", req.Content)
	if err := v.err(); err != nil {
		return InboxItemPatch{}, err
	}

	cols := make(map[string]interface{})
	if req.Content != nil {
		cols["content"] = strings.TrimSpace(*req.Content)
	}
	if req.IsProcessed != nil {
		cols["is_processed"] = *req.IsProcessed
	}
	setNullable(cols, "notes", req.Notes)
	return InboxItemPatch{columns: cols}, nil
}

type InboxService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewInboxService(db *gorm.DB) *InboxService {
	return &InboxService{db: db, now: utcNow}
}

// List returns the user's inbox, newest capture first.
func (s *InboxService) List(ctx context.Context, userID string) ([]models.InboxItem, error) {
	items := []models.InboxItem{}
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}
	return items, nil
}

func (s *InboxService) Get(ctx context.Context, id uuid.UUID, userID string) (*models.InboxItem, error) {
	var item models.InboxItem
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch inbox item: %w", err)
	}
	return &item, nil
}

func (s *InboxService) Create(ctx context.Context, in InsertInboxItem) (*models.InboxItem, error) {
	if in.item.UserID == "" {
		return nil, fieldInvalid("userId", "is required")
	}

	item := in.item
	now := s.now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create inbox item: %w", err)
	}
	return &item, nil
}

func (s *InboxService) Update(ctx context.Context, id uuid.UUID, userID string, patch InboxItemPatch) (*models.InboxItem, error) {
	if err := applyPatch(s.db.WithContext(ctx), &models.InboxItem{}, id, userID, patch.columns, s.now()); err != nil {
		return nil, err
	}
	return s.Get(ctx, id, userID)
}

func (s *InboxService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.db.WithContext(ctx).Scopes(owner.Scope(userID)).
		Where("id = ?", id).
		Delete(&models.InboxItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete inbox item: %w", err)
	}
	return nil
}
