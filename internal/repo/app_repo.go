// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the App model,
// the umbrella application record each chatroom is attached to.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an app is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexai/go-chatroom-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateApp inserts a new chatroom-mode App owned by (teamID, userID). The id
// is a randomly generated UUID, the mode is fixed to AppModeChatroom, and the
// status starts active.
func CreateApp(ctx context.Context, db *gorm.DB, teamID, userID, name, description string) (*domain.App, error) {
	a := &domain.App{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		UserID:      userID,
		Name:        name,
		Description: description,
		Mode:        domain.AppModeChatroom,
		Status:      domain.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// GetApp fetches a single app by id. Soft-deleted apps are excluded.
// Returns ErrNotFound if the record does not exist.
func GetApp(ctx context.Context, db *gorm.DB, id string) (*domain.App, error) {
	var a domain.App
	err := db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAppMeta updates name and description of a chatroom-mode app, scoped
// by id, team, user, and mode so a caller can never retitle an app they do
// not own or one belonging to a different application mode. Returns
// ErrNotFound when no row matches the scope.
func UpdateAppMeta(ctx context.Context, db *gorm.DB, id, teamID, userID, name, description string) error {
	res := db.WithContext(ctx).
		Model(&domain.App{}).
		Where("id = ? AND team_id = ? AND user_id = ? AND mode = ?", id, teamID, userID, domain.AppModeChatroom).
		Updates(map[string]any{"name": name, "description": description})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAppDeleted transitions an app owned by userID to StatusDeleted.
// Returns ErrNotFound when the app is absent, not owned, or already deleted.
func MarkAppDeleted(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Model(&domain.App{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, domain.StatusActive).
		Update("status", domain.StatusDeleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
