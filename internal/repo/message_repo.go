// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ChatroomMessage model: pagination over a room's history and the bulk
// read-state flip performed when history is fetched.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexai/go-chatroom-backend/internal/domain"
)

// CreateChatroomMessage inserts a message row for a room. Messages are
// produced by chat activity outside this service; this store operation exists
// for that producer and for seeding history in tests.
func CreateChatroomMessage(ctx context.Context, db *gorm.DB, chatroomID, agentID, content string) (*domain.ChatroomMessage, error) {
	m := &domain.ChatroomMessage{
		ID:         uuid.NewString(),
		ChatroomID: chatroomID,
		AgentID:    agentID,
		Content:    content,
		IsRead:     0,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// CountChatroomMessages uses a raw COUNT so a missing table surfaces as an
// error rather than a silent zero.
func CountChatroomMessages(ctx context.Context, db *gorm.DB, chatroomID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM chatroom_messages WHERE chatroom_id = ?", chatroomID).
		Scan(&total).Error
	return total, err
}

// ListChatroomMessagesPage returns a page of a room's messages ordered
// deterministically (CreatedAt ASC, ID ASC).
func ListChatroomMessagesPage(ctx context.Context, db *gorm.DB, chatroomID string, offset, limit int) ([]domain.ChatroomMessage, error) {
	var out []domain.ChatroomMessage
	err := db.WithContext(ctx).
		Where("chatroom_id = ?", chatroomID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// MarkChatroomMessagesRead flips is_read on every message of a room. The
// history endpoint calls this unconditionally, whichever page was fetched.
func MarkChatroomMessagesRead(ctx context.Context, db *gorm.DB, chatroomID string) error {
	return db.WithContext(ctx).
		Model(&domain.ChatroomMessage{}).
		Where("chatroom_id = ? AND is_read = 0", chatroomID).
		Update("is_read", 1).Error
}
