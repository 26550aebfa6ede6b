// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Chatroom
// model and the room listing read model.
//
// Listing queries join the apps table because a room's display metadata
// (name, description) lives on its umbrella App record; the optional name
// filter is case-insensitive and matches a substring of the app name.
package repo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexai/go-chatroom-backend/internal/domain"
)

// ChatroomListItem is the read model returned by the listing queries: one row
// per live chatroom with its app metadata folded in.
type ChatroomListItem struct {
	ChatroomID     string    `json:"chatroom_id"`
	AppID          string    `json:"app_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	MaxRound       int       `json:"max_round"`
	SmartSelection int       `json:"smart_selection"`
	Active         int       `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateChatroom inserts a new Chatroom referencing appID, owned by
// (teamID, userID), with the given round limit. The room starts active and
// with smart selection off.
func CreateChatroom(ctx context.Context, db *gorm.DB, teamID, userID, appID string, maxRound int) (*domain.Chatroom, error) {
	c := &domain.Chatroom{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		UserID:    userID,
		AppID:     appID,
		MaxRound:  maxRound,
		Status:    domain.StatusActive,
		Active:    1,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetChatroom fetches a live chatroom by id and owner. Soft-deleted rooms are
// invisible here, so every caller gets "not found" semantics for them.
func GetChatroom(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Chatroom, error) {
	var c domain.Chatroom
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, domain.StatusActive).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// chatroomListQuery builds the base query for the listing endpoints: live
// rooms owned by userID joined with their app row, optionally filtered by a
// case-insensitive app-name substring.
func chatroomListQuery(ctx context.Context, db *gorm.DB, userID, name string) *gorm.DB {
	q := db.WithContext(ctx).
		Model(&domain.Chatroom{}).
		Joins("JOIN apps ON apps.id = chatrooms.app_id").
		Where("chatrooms.user_id = ? AND chatrooms.status = ?", userID, domain.StatusActive)
	if name != "" {
		q = q.Where("LOWER(apps.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	return q
}

// CountChatrooms returns the number of live rooms visible to userID that
// match the optional name filter.
func CountChatrooms(ctx context.Context, db *gorm.DB, userID, name string) (int64, error) {
	var total int64
	err := chatroomListQuery(ctx, db, userID, name).Count(&total).Error
	return total, err
}

// ListChatroomsPage returns a page of the room list, most recently created
// first. The caller computes offset and limit (e.g., (page-1)*pageSize).
func ListChatroomsPage(ctx context.Context, db *gorm.DB, userID, name string, offset, limit int) ([]ChatroomListItem, error) {
	var out []ChatroomListItem
	err := chatroomListQuery(ctx, db, userID, name).
		Select("chatrooms.id AS chatroom_id, chatrooms.app_id, apps.name, apps.description, chatrooms.max_round, chatrooms.smart_selection, chatrooms.active, chatrooms.created_at, chatrooms.updated_at").
		Order("chatrooms.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// RecentChatrooms returns up to limit live rooms for userID ordered by recency
// of activity: rooms with unseen activity (active=1) first, then by most
// recent update. excludeID filters out the room the caller currently has open.
func RecentChatrooms(ctx context.Context, db *gorm.DB, userID, excludeID string, limit int) ([]ChatroomListItem, error) {
	q := chatroomListQuery(ctx, db, userID, "").
		Select("chatrooms.id AS chatroom_id, chatrooms.app_id, apps.name, apps.description, chatrooms.max_round, chatrooms.smart_selection, chatrooms.active, chatrooms.created_at, chatrooms.updated_at").
		Order("chatrooms.active DESC, chatrooms.updated_at DESC")
	if excludeID != "" {
		q = q.Where("chatrooms.id <> ?", excludeID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []ChatroomListItem
	err := q.Scan(&out).Error
	return out, err
}

// UpdateMaxRound sets the round limit of a live chatroom. Returns ErrNotFound
// when no row matches.
func UpdateMaxRound(ctx context.Context, db *gorm.DB, id string, maxRound int) error {
	return updateChatroomField(ctx, db, id, "max_round", maxRound)
}

// SetSmartSelection flips the smart-selection flag of a live chatroom.
// value must already be validated to 0 or 1 by the caller.
func SetSmartSelection(ctx context.Context, db *gorm.DB, id string, value int) error {
	return updateChatroomField(ctx, db, id, "smart_selection", value)
}

// MarkChatroomViewed clears the room's activity flag (active=0), which
// deprioritizes it in the recent listing. Fetching history calls this.
func MarkChatroomViewed(ctx context.Context, db *gorm.DB, id string) error {
	return updateChatroomField(ctx, db, id, "active", 0)
}

// updateChatroomField performs a single-column update on a live chatroom and
// maps zero affected rows to ErrNotFound.
func updateChatroomField(ctx context.Context, db *gorm.DB, id, column string, value any) error {
	res := db.WithContext(ctx).
		Model(&domain.Chatroom{}).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkChatroomDeleted transitions a chatroom owned by userID to
// StatusDeleted. Returns ErrNotFound when the room is absent, not owned, or
// already deleted.
func MarkChatroomDeleted(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Chatroom{}).
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
