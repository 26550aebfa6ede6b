package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nexai/go-chatroom-backend/internal/domain"
	"github.com/nexai/go-chatroom-backend/internal/repo"
)

func seedHistoryRoom(t *testing.T, s *ChatroomService, agentID string, msgs int) string {
	t.Helper()
	ctx := context.Background()
	roomID, err := s.Create(ctx, testCaller, ChatroomInput{
		Name: "history", MaxRound: 3,
		Agents: []repo.AgentEntry{{AgentID: agentID, Active: 1}},
	})
	if err != nil {
		t.Fatalf("seed room: %v", err)
	}
	for i := 0; i < msgs; i++ {
		if _, err := repo.CreateChatroomMessage(ctx, s.DB, roomID, agentID, fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}
	return roomID
}

func TestMessageService_History_RoomNotFound(t *testing.T) {
	db := newSvcDB(t)
	s := NewMessageService(db)

	_, _, err := s.History(context.Background(), testCaller, "missing", 1, 10)
	if !errors.Is(err, ErrChatroomNotFound) {
		t.Fatalf("expected ErrChatroomNotFound, got %v", err)
	}
}

func TestMessageService_History_PagingAndReadSideEffects(t *testing.T) {
	db := newSvcDB(t)
	cs := NewChatroomService(db)
	ms := NewMessageService(db)
	ctx := context.Background()

	agentID := seedSvcAgent(t, db, "u1", "speaker")
	roomID := seedHistoryRoom(t, cs, agentID, 3)

	msgs, total, err := ms.History(ctx, testCaller, roomID, 1, 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 3 || len(msgs) != 2 {
		t.Fatalf("total=%d len=%d; want 3/2", total, len(msgs))
	}
	if msgs[0].Content != "msg-0" || msgs[1].Content != "msg-1" {
		t.Fatalf("order = %q, %q; want chronological", msgs[0].Content, msgs[1].Content)
	}

	// Viewing page 1 marks the whole room read, not just the page.
	var unread int64
	if err := db.Model(&domain.ChatroomMessage{}).
		Where("chatroom_id = ? AND is_read = 0", roomID).
		Count(&unread).Error; err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 0 {
		t.Fatalf("unread = %d; want 0 after viewing any page", unread)
	}

	room, err := repo.GetChatroom(ctx, db, roomID, "u1")
	if err != nil {
		t.Fatalf("GetChatroom: %v", err)
	}
	if room.Active != 0 {
		t.Fatalf("room.Active = %d; want 0 after viewing", room.Active)
	}
}

func TestMessageService_History_PagePastEnd(t *testing.T) {
	db := newSvcDB(t)
	cs := NewChatroomService(db)
	ms := NewMessageService(db)
	ctx := context.Background()

	agentID := seedSvcAgent(t, db, "u1", "speaker")
	roomID := seedHistoryRoom(t, cs, agentID, 1)

	msgs, total, err := ms.History(ctx, testCaller, roomID, 5, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 1 || len(msgs) != 0 {
		t.Fatalf("total=%d len=%d; want 1/0", total, len(msgs))
	}

	// Side effects still apply for pages past the end.
	var unread int64
	if err := db.Model(&domain.ChatroomMessage{}).
		Where("chatroom_id = ? AND is_read = 0", roomID).
		Count(&unread).Error; err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 0 {
		t.Fatalf("unread = %d; want 0", unread)
	}
}

func TestMessageService_History_DefaultsPageParams(t *testing.T) {
	db := newSvcDB(t)
	cs := NewChatroomService(db)
	ms := NewMessageService(db)
	ctx := context.Background()

	agentID := seedSvcAgent(t, db, "u1", "speaker")
	roomID := seedHistoryRoom(t, cs, agentID, 2)

	msgs, total, err := ms.History(ctx, testCaller, roomID, -1, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if total != 2 || len(msgs) != 2 {
		t.Fatalf("total=%d len=%d; want 2/2 with default page params", total, len(msgs))
	}
}
