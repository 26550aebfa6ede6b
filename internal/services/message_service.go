package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nexai/go-chatroom-backend/internal/domain"
	"github.com/nexai/go-chatroom-backend/internal/repo"
)

// MessageService serves paginated chatroom history and applies the read-state
// side effects that go with viewing it.
type MessageService struct {
	DB *gorm.DB
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

// History returns one page of a room's messages in chronological order plus
// the total count. Fetching any page counts as viewing the room: the room's
// activity highlight is cleared and every unread message in the room is
// marked read, not just the page returned. Both side effects run even when
// the requested page is past the end.
func (s *MessageService) History(ctx context.Context, caller Caller, chatroomID string, page, pageSize int) ([]domain.ChatroomMessage, int64, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.String("chatroom.id", chatroomID),
			attribute.String("user.id", caller.UserID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if _, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, 0, ErrChatroomNotFound
		}
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountChatroomMessages(ctx, s.DB, chatroomID)
	if err != nil {
		return nil, 0, err
	}

	msgs := []domain.ChatroomMessage{}
	if total > 0 && int64(offset) < total {
		msgs, err = repo.ListChatroomMessagesPage(ctx, s.DB, chatroomID, offset, pageSize)
		if err != nil {
			return nil, 0, err
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.MarkChatroomViewed(ctx, tx, chatroomID); err != nil {
			return err
		}
		return repo.MarkChatroomMessagesRead(ctx, tx, chatroomID)
	})
	if err != nil {
		return nil, 0, err
	}

	return msgs, total, nil
}
