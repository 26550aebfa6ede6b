// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nexai/go-chatroom-backend/internal/domain"
)

// ChatroomsStats returns aggregate metadata for a user's live chatrooms: the
// total number of rows and the maximum UpdatedAt timestamp among them. The
// pair changes whenever a room is created, updated, deleted, or viewed, which
// makes it a cheap ETag input for the room list.
//
// When the user has no rooms, count is 0 and maxUpdatedAt is nil.
func ChatroomsStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).
		Model(&domain.Chatroom{}).
		Where("user_id = ? AND status = ?", userID, domain.StatusActive)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Latest updated_at without MAX() (which SQLite would return as TEXT).
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
