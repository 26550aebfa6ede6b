// Chatroom HTTP handlers.
//
// This file exposes the chatroom lifecycle endpoints:
//   - POST   /chatrooms                                  (create)
//   - GET    /chatrooms                                  (list, paginated, ETag support)
//   - GET    /chatrooms/recent                           (recent rooms)
//   - DELETE /chatrooms/{chatroom_id}                    (soft delete)
//   - GET    /chatrooms/{chatroom_id}/details            (detail view)
//   - POST   /chatrooms/{chatroom_id}/update_chatroom    (update)
//
// Handlers are transport-thin: they validate input in a fixed field order,
// call application services, and translate results into envelopes. Business
// rejections ride on HTTP 200 with success=false; only transport and
// infrastructure failures use error status codes.
//
// Idempotency:
// If the client supplies an Idempotency-Key header on create and a previous
// successful result exists for (user, key), the handler returns the recorded
// chatroom id and sets `Idempotency-Replayed: true`.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nexai/go-chatroom-backend/internal/domain"
	"github.com/nexai/go-chatroom-backend/internal/repo"
	"github.com/nexai/go-chatroom-backend/internal/services"
	"github.com/nexai/go-chatroom-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ChatroomService defines the chatroom lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ChatroomService interface {
	// Create provisions a chatroom with its application record and initial
	// agent memberships, returning the new room id.
	Create(ctx context.Context, caller services.Caller, in services.ChatroomInput) (string, error)
	// Update rewrites room metadata and reconciles the membership set.
	Update(ctx context.Context, caller services.Caller, chatroomID string, in services.ChatroomInput) error
	// Get loads a room owned by the caller, mapping missing rooms to
	// services.ErrChatroomNotFound.
	Get(ctx context.Context, caller services.Caller, chatroomID string) (*domain.Chatroom, error)
	// Delete soft-deletes a room owned by the caller.
	Delete(ctx context.Context, caller services.Caller, chatroomID string) error
	// ListPage returns a page of the caller's rooms and the total count.
	ListPage(ctx context.Context, caller services.Caller, page, pageSize int, name string) ([]repo.ChatroomListItem, int64, error)
	// Recent returns the caller's rooms by recency, excluding excludeID.
	Recent(ctx context.Context, caller services.Caller, excludeID string) ([]repo.ChatroomListItem, error)
	// Details assembles the room's detail view.
	Details(ctx context.Context, caller services.Caller, chatroomID string) (*services.ChatroomDetail, error)
	// SetSmartSelection flips the room's smart-selection flag.
	SetSmartSelection(ctx context.Context, caller services.Caller, chatroomID string, value int) error
	// SetAgentActive updates one membership's active flag. active is a
	// pointer so presence and range are validated after existence checks.
	SetAgentActive(ctx context.Context, caller services.Caller, chatroomID, agentID string, active *int) error
}

// MessageService defines history retrieval for chatroom messages.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MessageService interface {
	// History returns a page of a room's messages and the total count,
	// applying the room's read-state side effects.
	History(ctx context.Context, caller services.Caller, chatroomID string, page, pageSize int) ([]domain.ChatroomMessage, int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for chatrooms and their messages.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	roomSvc ChatroomService
	msgSvc  MessageService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(roomSvc ChatroomService, msgSvc MessageService) *Handlers {
	return &Handlers{roomSvc: roomSvc, msgSvc: msgSvc}
}

// caller extracts the authenticated identity from Gin context (set by
// upstream middleware). If absent, it falls back to the "X-User-ID" and
// "X-Team-ID" headers (tests use them), and finally to demo values. It never
// touches c.Request if it's nil.
func caller(c *gin.Context) services.Caller {
	out := services.Caller{UserID: "demo-user", TeamID: "demo-team"}
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			out.UserID = s
		}
	} else if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			out.UserID = h
		}
	}
	if v, ok := c.Get("teamID"); ok {
		if s, ok := v.(string); ok && s != "" {
			out.TeamID = s
		}
	} else if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-Team-ID")); h != "" {
			out.TeamID = h
		}
	}
	return out
}

//
// DTOs
//

// AgentRef is one entry of a chatroom's agent list in create and update
// payloads. Both fields are pointers so field presence can be validated
// independently of zero values.
type AgentRef struct {
	AgentID *string `json:"agent_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Active  *int    `json:"active"   example:"1"`
}

// SaveChatroomRequest is the JSON payload shared by the create and update
// endpoints. Required fields are pointers: a missing field and a zero value
// are different validation failures.
type SaveChatroomRequest struct {
	Name        *string    `json:"name" example:"Quarterly planning"`
	Description string     `json:"description" example:"Planning room for Q3"`
	MaxRound    *int       `json:"max_round" example:"10"`
	AgentList   []AgentRef `json:"agent"`
}

// CreateChatroomResponse carries the id of a newly created chatroom.
type CreateChatroomResponse struct {
	ChatroomID string `json:"chatroom_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListChatroomsResponse wraps a page of chatrooms and pagination information.
type ListChatroomsResponse struct {
	Chatrooms  []repo.ChatroomListItem `json:"chatrooms"`
	Pagination Pagination              `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// validateSaveRequest checks the shared create/update payload field by field,
// in a fixed order, and returns the symbolic code of the first failure. The
// order is part of the API contract: clients surface one error at a time.
func validateSaveRequest(req *SaveChatroomRequest) (services.ChatroomInput, string) {
	var in services.ChatroomInput

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return in, CodeChatroomNameRequired
	}
	if req.MaxRound == nil {
		return in, CodeChatroomMaxRoundRequired
	}
	if len(req.AgentList) == 0 {
		return in, CodeChatroomAgentRequired
	}
	agents := make([]repo.AgentEntry, 0, len(req.AgentList))
	for _, ref := range req.AgentList {
		if ref.AgentID == nil || strings.TrimSpace(*ref.AgentID) == "" || ref.Active == nil {
			return in, CodeChatroomAgentItemKeys
		}
		if *ref.Active != 0 && *ref.Active != 1 {
			return in, CodeAgentActiveRange
		}
		agents = append(agents, repo.AgentEntry{AgentID: strings.TrimSpace(*ref.AgentID), Active: *ref.Active})
	}

	in = services.ChatroomInput{
		Name:        strings.TrimSpace(*req.Name),
		Description: req.Description,
		MaxRound:    *req.MaxRound,
		Agents:      agents,
	}
	return in, ""
}

// serviceDB exposes the concrete service's GORM handle for best-effort
// transport features (ETag, idempotency records). Returns nil when the
// service is a test double.
func (h *Handlers) serviceDB() *gorm.DB {
	if svc, ok := h.roomSvc.(*services.ChatroomService); ok {
		return svc.DB
	}
	return nil
}

// idempotencyKey reads a client-supplied Idempotency-Key header, if any.
func idempotencyKey(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("Idempotency-Key"))
}

//
// Handlers
//

// CreateChatroom godoc
// @ID          createChatroom
// @Summary     Create a chatroom
// @Description Creates a chatroom with its application record and initial agent roster.
// @Description Supports idempotency via the Idempotency-Key header (same key → same chatroom id).
// @Tags        Chatrooms
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       X-Team-ID        header  string  false "Team ID (demo header)"  example(team42)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
// @Param       Accept-Language  header  string  false "Response message language"  example(zh-CN)
// @Param       body             body    handlers.SaveChatroomRequest  true  "Chatroom payload"
//
// @Success     200  {object}  handlers.Envelope{data=handlers.CreateChatroomResponse}
// @Failure     400  {object}  handlers.Envelope  "Malformed JSON"
// @Failure     500  {object}  handlers.Envelope  "Internal error"
// @Router      /chatrooms [post]
func (h *Handlers) CreateChatroom(c *gin.Context) {
	ctx := c.Request.Context()

	var req SaveChatroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidJSONBody)
		return
	}
	in, code := validateSaveRequest(&req)
	if code != "" {
		softFail(c, code)
		return
	}

	cur := caller(c)

	// Idempotency replay path: return the recorded room for a seen key.
	idemKey := idempotencyKey(c)
	if idemKey != "" {
		if db := h.serviceDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, cur.UserID, "", idemKey, time.Now().UTC()); err == nil && rec != nil {
				c.Header("Idempotency-Replayed", "true")
				ok(c, CreateChatroomResponse{ChatroomID: rec.ResourceID})
				return
			}
		}
	}

	id, err := h.roomSvc.Create(ctx, cur, in)
	if err != nil {
		fail(c, http.StatusInternalServerError, CodeInternal)
		return
	}

	// Idempotency store path, best effort.
	if idemKey != "" {
		if db := h.serviceDB(); db != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, db, cur.UserID, "", idemKey, id, http.StatusOK, ttl)
		}
	}

	ok(c, CreateChatroomResponse{ChatroomID: id})
}

// ListChatrooms godoc
// @ID          listChatrooms
// @Summary     List chatrooms (paginated)
// @Description Returns a page of the user's chatrooms, optionally filtered by name.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Chatrooms
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"       example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       name           query   string  false "Case-insensitive name filter"
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.Envelope{data=handlers.ListChatroomsResponse}
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms [get]
func (h *Handlers) ListChatrooms(c *gin.Context) {
	ctx := c.Request.Context()
	cur := caller(c)
	page, pageSize := clampPagination(c)
	name := strings.TrimSpace(c.Query("name"))

	// ETag pre-check (best effort).
	if db := h.serviceDB(); db != nil {
		count, maxTS, err := repo.ChatroomsStats(ctx, db, cur.UserID)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"chatrooms:%s:%d:%d"`, cur.UserID, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.roomSvc.ListPage(ctx, cur, page, pageSize, name)
	if err != nil {
		fail(c, http.StatusInternalServerError, CodeInternal)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, ListChatroomsResponse{
		Chatrooms: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// RecentChatrooms godoc
// @ID          recentChatrooms
// @Summary     List recent chatrooms
// @Description Returns the user's chatrooms ordered by activity and recency of update.
// @Description The room named by chatroom_id is excluded so the open room never lists itself.
// @Tags        Chatrooms
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  query   string  false "Room to exclude (the one currently open)"
//
// @Success     200  {object} handlers.Envelope{data=[]repo.ChatroomListItem}
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/recent [get]
func (h *Handlers) RecentChatrooms(c *gin.Context) {
	items, err := h.roomSvc.Recent(c.Request.Context(), caller(c), strings.TrimSpace(c.Query("chatroom_id")))
	if err != nil {
		fail(c, http.StatusInternalServerError, CodeInternal)
		return
	}
	ok(c, items)
}

// DeleteChatroom godoc
// @ID          deleteChatroom
// @Summary     Delete a chatroom
// @Description Soft-deletes the chatroom and its application record and removes its memberships.
// @Description Message history is retained.
// @Tags        Chatrooms
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  path    string  true  "Chatroom ID (UUID)"     format(uuid)
//
// @Success     200  {object} handlers.Envelope
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/{chatroom_id} [delete]
func (h *Handlers) DeleteChatroom(c *gin.Context) {
	chatroomID := strings.TrimSpace(c.Param("chatroom_id"))
	if chatroomID == "" {
		softFail(c, CodeChatroomIDRequired)
		return
	}

	err := h.roomSvc.Delete(c.Request.Context(), caller(c), chatroomID)
	switch {
	case err == nil:
		okCode(c, CodeChatroomDeleteSuccess, nil)
	case err == services.ErrChatroomNotFound:
		softFail(c, CodeChatroomNotExist)
	default:
		fail(c, http.StatusInternalServerError, CodeInternal)
	}
}

// ChatroomDetails godoc
// @ID          chatroomDetails
// @Summary     Get chatroom details
// @Description Returns the room's application record, annotated agent roster, and settings.
// @Description A missing room yields success=true with code chatroom_does_not_exist and null
// @Description data, matching the established client contract for this endpoint.
// @Tags        Chatrooms
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  path    string  true  "Chatroom ID (UUID)"     format(uuid)
//
// @Success     200  {object} handlers.Envelope{data=services.ChatroomDetail}
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/{chatroom_id}/details [get]
func (h *Handlers) ChatroomDetails(c *gin.Context) {
	chatroomID := strings.TrimSpace(c.Param("chatroom_id"))
	if chatroomID == "" {
		softFail(c, CodeChatroomIDRequired)
		return
	}

	d, err := h.roomSvc.Details(c.Request.Context(), caller(c), chatroomID)
	switch {
	case err == nil:
		ok(c, d)
	case err == services.ErrChatroomNotFound:
		// Success envelope with a sentinel code and null data.
		okCode(c, CodeChatroomNotExist, nil)
	default:
		fail(c, http.StatusInternalServerError, CodeInternal)
	}
}

// UpdateChatroom godoc
// @ID          updateChatroom
// @Summary     Update a chatroom
// @Description Rewrites the room's name, description, and round limit, and reconciles the
// @Description agent roster to exactly the submitted list.
// @Tags        Chatrooms
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  path    string  true  "Chatroom ID (UUID)"     format(uuid)
// @Param       body         body    handlers.SaveChatroomRequest  true  "Chatroom payload"
//
// @Success     200  {object} handlers.Envelope{data=handlers.CreateChatroomResponse}
// @Failure     400  {object} handlers.Envelope "Malformed JSON"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/{chatroom_id}/update_chatroom [post]
func (h *Handlers) UpdateChatroom(c *gin.Context) {
	chatroomID := strings.TrimSpace(c.Param("chatroom_id"))
	if chatroomID == "" {
		softFail(c, CodeChatroomIDRequired)
		return
	}

	var req SaveChatroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidJSONBody)
		return
	}

	cur := caller(c)

	// Room existence is checked before any body field: updating a missing
	// room reports chatroom_does_not_exist even when the body is also bad.
	if _, err := h.roomSvc.Get(c.Request.Context(), cur, chatroomID); err != nil {
		if err == services.ErrChatroomNotFound {
			softFail(c, CodeChatroomNotExist)
			return
		}
		fail(c, http.StatusInternalServerError, CodeInternal)
		return
	}

	in, code := validateSaveRequest(&req)
	if code != "" {
		softFail(c, code)
		return
	}

	err := h.roomSvc.Update(c.Request.Context(), cur, chatroomID, in)
	switch {
	case err == nil:
		ok(c, CreateChatroomResponse{ChatroomID: chatroomID})
	case err == services.ErrChatroomNotFound:
		softFail(c, CodeChatroomNotExist)
	default:
		fail(c, http.StatusInternalServerError, CodeInternal)
	}
}
