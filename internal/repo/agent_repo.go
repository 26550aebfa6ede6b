// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the global
// Agent registry and the ChatroomAgent membership relation.
//
// Membership upserts use an ON CONFLICT clause on (chatroom_id, agent_id) so
// re-submitting an agent that is already attached refreshes its active flag
// instead of violating the unique index.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexai/go-chatroom-backend/internal/domain"
)

// AgentEntry is one membership entry of an incoming agent list: which agent
// to attach and whether it starts active.
type AgentEntry struct {
	AgentID string
	Active  int
}

// ChatroomAgentMember is the membership read model: one row per agent
// attached to a room, with the agent's registry metadata folded in.
type ChatroomAgentMember struct {
	AgentID   string    `json:"agent_id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	Active    int       `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// GetAgent fetches a live agent from the global registry by id. This is not
// room-scoped: it answers "does this agent exist at all".
func GetAgent(ctx context.Context, db *gorm.DB, id string) (*domain.Agent, error) {
	var a domain.Agent
	err := db.WithContext(ctx).
		Where("id = ? AND status = ?", id, domain.StatusActive).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListChatroomAgents returns the full membership roster of a room joined with
// each agent's registry row, ordered by join time.
func ListChatroomAgents(ctx context.Context, db *gorm.DB, chatroomID string) ([]ChatroomAgentMember, error) {
	var out []ChatroomAgentMember
	err := db.WithContext(ctx).
		Model(&domain.ChatroomAgent{}).
		Joins("JOIN agents ON agents.id = chatroom_agents.agent_id").
		Where("chatroom_agents.chatroom_id = ?", chatroomID).
		Select("chatroom_agents.agent_id, agents.name, agents.user_id, chatroom_agents.active, chatroom_agents.created_at").
		Order("chatroom_agents.created_at ASC").
		Scan(&out).Error
	return out, err
}

// ListChatroomAgentIDs returns just the agent ids currently attached to a
// room. The update reconciliation diffs this set against the incoming list.
func ListChatroomAgentIDs(ctx context.Context, db *gorm.DB, chatroomID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&domain.ChatroomAgent{}).
		Where("chatroom_id = ?", chatroomID).
		Pluck("agent_id", &ids).Error
	return ids, err
}

// CountActiveChatroomAgents returns how many memberships of a room are
// currently active. The "last active agent" guard reads this.
func CountActiveChatroomAgents(ctx context.Context, db *gorm.DB, chatroomID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ChatroomAgent{}).
		Where("chatroom_id = ? AND active = 1", chatroomID).
		Count(&total).Error
	return total, err
}

// UpsertChatroomAgents bulk-inserts membership rows for the given entries,
// all tagged with chatroomID. Entries whose (chatroom_id, agent_id) pair
// already exists have their active flag refreshed in place.
func UpsertChatroomAgents(ctx context.Context, db *gorm.DB, chatroomID string, entries []AgentEntry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]domain.ChatroomAgent, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.ChatroomAgent{
			ID:         uuid.NewString(),
			ChatroomID: chatroomID,
			AgentID:    e.AgentID,
			Active:     e.Active,
			CreatedAt:  now,
		})
	}
	// Select pins the column list so zero-valued active flags reach the
	// INSERT (and thus the conflict refresh) instead of being dropped.
	return db.WithContext(ctx).
		Select("id", "chatroom_id", "agent_id", "active", "created_at", "updated_at").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chatroom_id"}, {Name: "agent_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active", "updated_at"}),
		}).
		Create(&rows).Error
}

// GetChatroomAgent fetches the membership relation for (chatroomID, agentID).
// Returns ErrNotFound when the agent has not joined the room.
func GetChatroomAgent(ctx context.Context, db *gorm.DB, chatroomID, agentID string) (*domain.ChatroomAgent, error) {
	var rel domain.ChatroomAgent
	err := db.WithContext(ctx).
		Where("chatroom_id = ? AND agent_id = ?", chatroomID, agentID).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// SetChatroomAgentActive updates the active flag of a single membership row.
// Returns ErrNotFound when the relation does not exist.
func SetChatroomAgentActive(ctx context.Context, db *gorm.DB, chatroomID, agentID string, active int) error {
	res := db.WithContext(ctx).
		Model(&domain.ChatroomAgent{}).
		Where("chatroom_id = ? AND agent_id = ?", chatroomID, agentID).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteChatroomAgent removes one membership row, scoped by room id.
func DeleteChatroomAgent(ctx context.Context, db *gorm.DB, chatroomID, agentID string) error {
	return db.WithContext(ctx).
		Where("chatroom_id = ? AND agent_id = ?", chatroomID, agentID).
		Delete(&domain.ChatroomAgent{}).Error
}

// DeleteChatroomAgents hard-deletes every membership row of a room. Called
// when the room itself is soft-deleted.
func DeleteChatroomAgents(ctx context.Context, db *gorm.DB, chatroomID string) error {
	return db.WithContext(ctx).
		Where("chatroom_id = ?", chatroomID).
		Delete(&domain.ChatroomAgent{}).Error
}
