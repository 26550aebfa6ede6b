// Package domain defines the persistence models for chatrooms, their umbrella
// application records, agent memberships, and chat messages. These types are
// mapped with GORM and form the core data layer of the chatroom service.
package domain

import "time"

// Status is the lifecycle state shared by App, Chatroom, and Agent rows.
// Rows are never physically removed by the lifecycle endpoints; deletion is a
// transition to StatusDeleted (soft delete).
type Status int

const (
	// StatusActive marks a live, addressable record.
	StatusActive Status = 1
	// StatusDeleted marks a soft-deleted record. Deleted rows are invisible
	// to every room-scoped operation but remain queryable through the store.
	StatusDeleted Status = 3
)

// IsActive reports whether the record is live.
func (s Status) IsActive() bool { return s == StatusActive }

// IsDeleted reports whether the record has been soft-deleted.
func (s Status) IsDeleted() bool { return s == StatusDeleted }

// AppModeChatroom is the App.Mode value reserved for chatroom applications.
// The apps table is shared with other application modes in the wider system;
// every query issued here is scoped to this mode.
const AppModeChatroom = 5

// App is the umbrella application record a chatroom is attached to. It holds
// the display metadata (name, description) and is created and soft-deleted in
// lockstep with its Chatroom.
type App struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	TeamID      string    `json:"team_id"     gorm:"type:varchar(64);not null;index"`
	UserID      string    `json:"user_id"     gorm:"type:varchar(64);not null;index"`
	Name        string    `json:"name"        gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Mode        int       `json:"mode"        gorm:"not null"`
	Status      Status    `json:"status"      gorm:"not null;default:1;check:status IN (1,3)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for App.
func (App) TableName() string { return "apps" }

// Chatroom is the addressable chat session container. Display metadata lives
// on the linked App; the room row carries the conversation settings.
//
// Fields:
//   - MaxRound: round limit for a single conversation, required at creation.
//   - SmartSelection: 0/1 flag toggled via a dedicated endpoint.
//   - Status: StatusActive or StatusDeleted (soft delete).
//   - Active: 0/1 "has unseen activity" flag. Fetching history clears it,
//     which deprioritizes the room in the recent listing.
type Chatroom struct {
	ID             string    `json:"id"              gorm:"type:char(36);primaryKey"`
	TeamID         string    `json:"team_id"         gorm:"type:varchar(64);not null;index"`
	UserID         string    `json:"user_id"         gorm:"type:varchar(64);not null;index:idx_user_chatrooms"`
	AppID          string    `json:"app_id"          gorm:"type:char(36);not null;index"`
	MaxRound       int       `json:"max_round"       gorm:"not null"`
	SmartSelection int       `json:"smart_selection" gorm:"not null;default:0;check:smart_selection IN (0,1)"`
	Status         Status    `json:"status"          gorm:"not null;default:1;check:status IN (1,3)"`
	Active         int       `json:"active"          gorm:"not null;default:1;check:active IN (0,1)"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for Chatroom.
func (Chatroom) TableName() string { return "chatrooms" }

// Agent is an entry in the global agent registry. Agents exist independently
// of any chatroom; membership is expressed through ChatroomAgent rows.
type Agent struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	TeamID    string    `json:"team_id" gorm:"type:varchar(64);not null;index"`
	UserID    string    `json:"user_id" gorm:"type:varchar(64);not null;index"`
	Name      string    `json:"name"    gorm:"type:varchar(255);not null"`
	Status    Status    `json:"status"  gorm:"not null;default:1;check:status IN (1,3)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Agent.
func (Agent) TableName() string { return "agents" }

// ChatroomAgent ties an agent to a chatroom. The (chatroom_id, agent_id) pair
// is unique; Active controls whether the agent currently participates. A room
// must always retain at least one active membership; the service layer
// enforces this, not the schema.
//
// Active carries no column default: GORM drops zero-valued fields that have
// one from the INSERT, which would silently store active=0 entries as 1.
type ChatroomAgent struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	ChatroomID string    `json:"chatroom_id" gorm:"type:char(36);not null;uniqueIndex:ux_chatroom_agent,priority:1"`
	AgentID    string    `json:"agent_id"    gorm:"type:char(36);not null;uniqueIndex:ux_chatroom_agent,priority:2"`
	Active     int       `json:"active"      gorm:"not null;check:active IN (0,1)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for ChatroomAgent.
func (ChatroomAgent) TableName() string { return "chatroom_agents" }

// ChatroomMessage is a persisted chat message. Messages are produced by chat
// activity outside this service and are append-only here except for the
// IsRead flag, which the history endpoint flips in bulk.
type ChatroomMessage struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	ChatroomID string    `json:"chatroom_id" gorm:"type:char(36);not null;index:idx_chatroom_msgs,priority:1"`
	AgentID    string    `json:"agent_id"    gorm:"type:char(36);index"`
	Content    string    `json:"content"     gorm:"type:text;not null"`
	IsRead     int       `json:"is_read"     gorm:"not null;default:0;check:is_read IN (0,1)"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index:idx_chatroom_msgs,priority:2"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for ChatroomMessage.
func (ChatroomMessage) TableName() string { return "chatroom_messages" }
