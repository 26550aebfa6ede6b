// Chatroom settings handlers.
//
// This file exposes the per-room toggle endpoints:
//   - POST /chatrooms/{chatroom_id}/smart_selection                    (smart-selection flag)
//   - PUT  /chatrooms/{chatroom_id}/agents/{agent_id}/setting          (membership active flag)
//
// Both endpoints accept a single 0/1 field validated for presence before
// range, mirroring the validation order of the lifecycle endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexai/go-chatroom-backend/internal/services"
)

// SmartSelectionRequest is the JSON payload for the smart-selection toggle.
type SmartSelectionRequest struct {
	// SmartSelection enables (1) or disables (0) smart selection.
	SmartSelection *int `json:"smart_selection" example:"1"`
}

// AgentSettingRequest is the JSON payload for the membership active toggle.
type AgentSettingRequest struct {
	// Active enables (1) or disables (0) the agent within the room.
	Active *int `json:"active" example:"0"`
}

// SetSmartSelection godoc
// @ID          setSmartSelection
// @Summary     Toggle smart selection
// @Description Enables or disables smart agent selection for the chatroom.
// @Tags        Chatrooms
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  path    string  true  "Chatroom ID (UUID)"     format(uuid)
// @Param       body         body    handlers.SmartSelectionRequest  true  "Toggle payload"
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Malformed JSON"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/{chatroom_id}/smart_selection [post]
func (h *Handlers) SetSmartSelection(c *gin.Context) {
	chatroomID := strings.TrimSpace(c.Param("chatroom_id"))
	if chatroomID == "" {
		softFail(c, CodeChatroomIDRequired)
		return
	}

	var req SmartSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidJSONBody)
		return
	}
	if req.SmartSelection == nil {
		softFail(c, CodeSmartSelectionRequired)
		return
	}
	if *req.SmartSelection != 0 && *req.SmartSelection != 1 {
		softFail(c, CodeSmartSelectionRange)
		return
	}

	err := h.roomSvc.SetSmartSelection(c.Request.Context(), caller(c), chatroomID, *req.SmartSelection)
	switch {
	case err == nil:
		ok(c, nil)
	case err == services.ErrChatroomNotFound:
		softFail(c, CodeChatroomNotExist)
	default:
		fail(c, http.StatusInternalServerError, CodeInternal)
	}
}

// SetAgentSetting godoc
// @ID          setAgentSetting
// @Summary     Toggle an agent within a chatroom
// @Description Activates or deactivates one agent membership. Deactivation is refused when it
// @Description would leave the room without any active agent.
// @Tags        Chatrooms
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  path    string  true  "Chatroom ID (UUID)"     format(uuid)
// @Param       agent_id     path    string  true  "Agent ID (UUID)"        format(uuid)
// @Param       body         body    handlers.AgentSettingRequest  true  "Toggle payload"
//
// @Success     200  {object} handlers.Envelope
// @Failure     400  {object} handlers.Envelope "Malformed JSON"
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/{chatroom_id}/agents/{agent_id}/setting [put]
func (h *Handlers) SetAgentSetting(c *gin.Context) {
	chatroomID := strings.TrimSpace(c.Param("chatroom_id"))
	if chatroomID == "" {
		softFail(c, CodeChatroomIDRequired)
		return
	}
	agentID := strings.TrimSpace(c.Param("agent_id"))
	if agentID == "" {
		softFail(c, CodeAgentIDRequired)
		return
	}

	var req AgentSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidJSONBody)
		return
	}

	// Active presence and range are judged by the service, after the room
	// and agent existence checks, so a missing room wins over a bad flag.
	err := h.roomSvc.SetAgentActive(c.Request.Context(), caller(c), chatroomID, agentID, req.Active)
	switch {
	case err == nil:
		ok(c, nil)
	case err == services.ErrChatroomNotFound:
		softFail(c, CodeChatroomNotExist)
	case err == services.ErrAgentNotFound:
		softFail(c, CodeAgentNotExist)
	case err == services.ErrAgentActiveRequired:
		softFail(c, CodeAgentActiveRequired)
	case err == services.ErrAgentActiveRange:
		softFail(c, CodeAgentActiveRange)
	case err == services.ErrAgentRelationNotFound:
		softFail(c, CodeAgentRelationNotExist)
	case err == services.ErrLastActiveAgent:
		softFail(c, CodeAgentLessThanOne)
	default:
		fail(c, http.StatusInternalServerError, CodeInternal)
	}
}
