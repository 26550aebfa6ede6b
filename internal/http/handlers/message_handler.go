// Chatroom message history handler.
//
// This file exposes:
//   - GET /chatrooms/{chatroom_id}/chatroom_message   (paginated history)
//
// Fetching history is not a pure read: it clears the room's activity
// highlight and marks every message in the room as read. The side effects
// belong to the service layer; the handler only shapes the response.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexai/go-chatroom-backend/internal/domain"
	"github.com/nexai/go-chatroom-backend/internal/services"
)

// HistoryResponse contains a page of chatroom messages and pagination
// metadata.
type HistoryResponse struct {
	Messages   []domain.ChatroomMessage `json:"messages"`
	Pagination Pagination               `json:"pagination"`
}

// ChatroomHistory godoc
// @ID          chatroomHistory
// @Summary     Get chatroom message history
// @Description Returns a page of the room's messages in chronological order. Viewing any page
// @Description clears the room's activity highlight and marks all of its messages as read.
// @Tags        Messages
// @Produce     json
//
// @Param       X-User-ID    header  string  false "User ID (demo header)"  example(user123)
// @Param       chatroom_id  path    string  true  "Chatroom ID (UUID)"     format(uuid)
// @Param       page         query   int     false "Page number"            minimum(1) default(1)
// @Param       page_size    query   int     false "Items per page"         minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.Envelope{data=handlers.HistoryResponse}
// @Failure     500  {object} handlers.Envelope "Internal error"
// @Router      /chatrooms/{chatroom_id}/chatroom_message [get]
func (h *Handlers) ChatroomHistory(c *gin.Context) {
	chatroomID := strings.TrimSpace(c.Param("chatroom_id"))
	if chatroomID == "" {
		softFail(c, CodeChatroomIDRequired)
		return
	}

	page, pageSize := clampPagination(c)

	msgs, total, err := h.msgSvc.History(c.Request.Context(), caller(c), chatroomID, page, pageSize)
	switch {
	case err == nil:
	case err == services.ErrChatroomNotFound:
		softFail(c, CodeChatroomNotExist)
		return
	default:
		fail(c, http.StatusInternalServerError, CodeInternal)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, HistoryResponse{
		Messages: msgs,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}
