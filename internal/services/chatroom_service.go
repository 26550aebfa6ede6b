// Package services contains the application layer for chatroom management.
//
// This file implements ChatroomService, the application-level component that
// owns the chatroom lifecycle: creating a room together with its umbrella App
// and initial memberships, updating room metadata while reconciling the
// membership set against the incoming agent list, soft-deleting, listing, and
// assembling the detail view.
//
// Every multi-table write runs inside a single GORM transaction so a failure
// partway through never leaves an App without its Chatroom or a stale
// membership set.
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// room/user identifiers and pagination parameters where applicable.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nexai/go-chatroom-backend/internal/domain"
	"github.com/nexai/go-chatroom-backend/internal/repo"
)

// Membership annotation values in the detail view: whether an attached agent
// belongs to the calling user or to someone else on the team.
const (
	agentTypeMine = "my_agent"
	agentTypeMore = "more_agent"
)

// Caller is the authenticated identity threaded into every operation. It is
// always passed explicitly; the service keeps no ambient request state.
type Caller struct {
	UserID string
	TeamID string
}

// ChatroomInput carries the validated fields of a create or update request.
// Field-presence and enum validation happen at the HTTP boundary; by the time
// an input reaches the service it is structurally sound.
type ChatroomInput struct {
	Name        string
	Description string
	MaxRound    int
	Agents      []repo.AgentEntry
}

// AgentMemberDetail is one membership row of the detail view, annotated with
// the my_agent/more_agent ownership marker.
type AgentMemberDetail struct {
	repo.ChatroomAgentMember
	Type string `json:"type"`
}

// ChatroomDetail aggregates everything the detail endpoint returns: the
// linked App record, the annotated roster, and the room's settings.
type ChatroomDetail struct {
	ChatInfo       *domain.App         `json:"chat_info"`
	AgentList      []AgentMemberDetail `json:"agent_list"`
	MaxRound       int                 `json:"max_round"`
	SmartSelection int                 `json:"smart_selection"`
	ChatroomStatus domain.Status       `json:"chatroom_status"`
}

// ChatroomService coordinates chatroom persistence across the app, chatroom,
// and membership stores.
type ChatroomService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// RecentLimit caps the recent-rooms listing. Defaults to 10 when unset.
	RecentLimit int
}

// NewChatroomService constructs a ChatroomService with default limits.
func NewChatroomService(db *gorm.DB) *ChatroomService {
	return &ChatroomService{DB: db, RecentLimit: 10}
}

// Create inserts the App, the Chatroom referencing it, and one membership row
// per agent entry, atomically. It returns the new room's id.
func (s *ChatroomService) Create(ctx context.Context, caller Caller, in ChatroomInput) (string, error) {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("user.id", caller.UserID),
			attribute.Int("agent.count", len(in.Agents)),
		),
	)
	defer span.End()

	var roomID string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		app, err := repo.CreateApp(ctx, tx, caller.TeamID, caller.UserID, strings.TrimSpace(in.Name), in.Description)
		if err != nil {
			return err
		}
		room, err := repo.CreateChatroom(ctx, tx, caller.TeamID, caller.UserID, app.ID, in.MaxRound)
		if err != nil {
			return err
		}
		if err := repo.UpsertChatroomAgents(ctx, tx, room.ID, in.Agents); err != nil {
			return err
		}
		roomID = room.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return roomID, nil
}

// Get loads the caller's room by id. It exists so the HTTP boundary can
// establish room existence before validating a request body against it.
func (s *ChatroomService) Get(ctx context.Context, caller Caller, chatroomID string) (*domain.Chatroom, error) {
	room, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrChatroomNotFound
		}
		return nil, err
	}
	return room, nil
}

// Update rewrites the room's app metadata and round limit, then reconciles
// the membership set against the incoming agent list: memberships absent
// from the list are deleted (one row at a time, scoped by room), new ones
// are inserted, and overlapping ones are upserted so their active flag is
// refreshed. Membership converges to exactly the incoming list; resubmitting
// an unchanged list only refreshes the overlap.
func (s *ChatroomService) Update(ctx context.Context, caller Caller, chatroomID string, in ChatroomInput) error {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "Update",
		trace.WithAttributes(
			attribute.String("chatroom.id", chatroomID),
			attribute.String("user.id", caller.UserID),
			attribute.Int("agent.count", len(in.Agents)),
		),
	)
	defer span.End()

	room, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrChatroomNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateAppMeta(ctx, tx, room.AppID, caller.TeamID, caller.UserID, strings.TrimSpace(in.Name), in.Description); err != nil {
			return err
		}
		if err := repo.UpdateMaxRound(ctx, tx, room.ID, in.MaxRound); err != nil {
			return err
		}

		existingIDs, err := repo.ListChatroomAgentIDs(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		existing := make(map[string]struct{}, len(existingIDs))
		for _, id := range existingIDs {
			existing[id] = struct{}{}
		}
		incoming := make(map[string]struct{}, len(in.Agents))
		var toAdd, toUpdate []repo.AgentEntry
		for _, e := range in.Agents {
			incoming[e.AgentID] = struct{}{}
			if _, ok := existing[e.AgentID]; ok {
				toUpdate = append(toUpdate, e)
			} else {
				toAdd = append(toAdd, e)
			}
		}

		for _, id := range existingIDs {
			if _, ok := incoming[id]; !ok {
				if err := repo.DeleteChatroomAgent(ctx, tx, room.ID, id); err != nil {
					return err
				}
			}
		}
		if err := repo.UpsertChatroomAgents(ctx, tx, room.ID, toAdd); err != nil {
			return err
		}
		return repo.UpsertChatroomAgents(ctx, tx, room.ID, toUpdate)
	})
}

// Delete soft-deletes the room and its App and hard-deletes every membership
// row. Messages are deliberately retained: history survives a room's
// soft-deletion and stays reachable through the store.
func (s *ChatroomService) Delete(ctx context.Context, caller Caller, chatroomID string) error {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(
			attribute.String("chatroom.id", chatroomID),
			attribute.String("user.id", caller.UserID),
		),
	)
	defer span.End()

	room, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrChatroomNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.MarkChatroomDeleted(ctx, tx, room.ID, caller.UserID); err != nil {
			return err
		}
		if err := repo.MarkAppDeleted(ctx, tx, room.AppID, caller.UserID); err != nil {
			return err
		}
		return repo.DeleteChatroomAgents(ctx, tx, room.ID)
	})
}

// ListPage returns a page of the caller's rooms plus the unfiltered total for
// pagination metadata. Invalid page/pageSize fall back to defaults.
func (s *ChatroomService) ListPage(ctx context.Context, caller Caller, page, pageSize int, name string) ([]repo.ChatroomListItem, int64, error) {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.String("user.id", caller.UserID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountChatrooms(ctx, s.DB, caller.UserID, name)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []repo.ChatroomListItem{}, 0, nil
	}

	items, err := repo.ListChatroomsPage(ctx, s.DB, caller.UserID, name, offset, pageSize)
	return items, total, err
}

// Recent returns the caller's rooms ordered by recency of activity, excluding
// the room the caller currently has open.
func (s *ChatroomService) Recent(ctx context.Context, caller Caller, excludeID string) ([]repo.ChatroomListItem, error) {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "Recent",
		trace.WithAttributes(attribute.String("user.id", caller.UserID)),
	)
	defer span.End()

	limit := s.RecentLimit
	if limit <= 0 {
		limit = 10
	}
	items, err := repo.RecentChatrooms(ctx, s.DB, caller.UserID, excludeID, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []repo.ChatroomListItem{}
	}
	return items, nil
}

// Details aggregates the room's App record, its annotated roster, and its
// settings. Each membership row is tagged my_agent when the agent's owner is
// the caller, more_agent otherwise.
func (s *ChatroomService) Details(ctx context.Context, caller Caller, chatroomID string) (*ChatroomDetail, error) {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "Details",
		trace.WithAttributes(
			attribute.String("chatroom.id", chatroomID),
			attribute.String("user.id", caller.UserID),
		),
	)
	defer span.End()

	room, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrChatroomNotFound
		}
		return nil, err
	}

	app, err := repo.GetApp(ctx, s.DB, room.AppID)
	if err != nil {
		return nil, err
	}
	members, err := repo.ListChatroomAgents(ctx, s.DB, room.ID)
	if err != nil {
		return nil, err
	}

	roster := make([]AgentMemberDetail, 0, len(members))
	for _, m := range members {
		kind := agentTypeMore
		if m.UserID == caller.UserID {
			kind = agentTypeMine
		}
		roster = append(roster, AgentMemberDetail{ChatroomAgentMember: m, Type: kind})
	}

	return &ChatroomDetail{
		ChatInfo:       app,
		AgentList:      roster,
		MaxRound:       room.MaxRound,
		SmartSelection: room.SmartSelection,
		ChatroomStatus: room.Status,
	}, nil
}

// SetSmartSelection flips the room's smart-selection flag. value must already
// be validated to 0 or 1 by the HTTP boundary.
func (s *ChatroomService) SetSmartSelection(ctx context.Context, caller Caller, chatroomID string, value int) error {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "SetSmartSelection",
		trace.WithAttributes(
			attribute.String("chatroom.id", chatroomID),
			attribute.Int("smart_selection", value),
		),
	)
	defer span.End()

	if _, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrChatroomNotFound
		}
		return err
	}
	return repo.SetSmartSelection(ctx, s.DB, chatroomID, value)
}

// SetAgentActive updates a single membership's active flag. Preconditions, in
// order: room exists and is owned by the caller, the agent exists globally,
// active is present and in range, and the membership relation exists. When
// deactivating, the guard check and the write share one transaction so two
// concurrent deactivations cannot both pass the ">1 active" check and strand
// the room with zero active agents.
func (s *ChatroomService) SetAgentActive(ctx context.Context, caller Caller, chatroomID, agentID string, active *int) error {
	tr := otel.Tracer("services/ChatroomService")
	ctx, span := tr.Start(ctx, "SetAgentActive",
		trace.WithAttributes(
			attribute.String("chatroom.id", chatroomID),
			attribute.String("agent.id", agentID),
		),
	)
	defer span.End()

	if _, err := repo.GetChatroom(ctx, s.DB, chatroomID, caller.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrChatroomNotFound
		}
		return err
	}
	if _, err := repo.GetAgent(ctx, s.DB, agentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAgentNotFound
		}
		return err
	}
	if active == nil {
		return ErrAgentActiveRequired
	}
	if *active != 0 && *active != 1 {
		return ErrAgentActiveRange
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.GetChatroomAgent(ctx, tx, chatroomID, agentID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrAgentRelationNotFound
			}
			return err
		}
		if *active == 0 {
			n, err := repo.CountActiveChatroomAgents(ctx, tx, chatroomID)
			if err != nil {
				return err
			}
			if n <= 1 {
				return ErrLastActiveAgent
			}
		}
		return repo.SetChatroomAgentActive(ctx, tx, chatroomID, agentID, *active)
	})
}
