// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the uniform response envelope used by every endpoint.
// All bodies, success or failure, share one shape so clients can branch on a
// single contract:
//
//	{
//	  "success": true,
//	  "code": "success",
//	  "message": "success",
//	  "data": { ... }
//	}
//
// Conventions:
//   - Business-rule rejections (validation failures, missing chatrooms) are
//     "soft" errors: HTTP 200 with success=false and a symbolic code.
//   - Transport and infrastructure failures (malformed JSON, rate limits,
//     storage errors) use real HTTP status codes, still wrapped in the
//     envelope.
//   - message is never hardcoded in a handler; it is resolved from the code
//     through the i18n catalog using the request's Accept-Language header.
//   - fail() centralizes error logging so 5xx responses always reach the
//     request-scoped logger with their request id.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexai/go-chatroom-backend/internal/http/middleware"
	"github.com/nexai/go-chatroom-backend/internal/i18n"
)

// Envelope is the standard response body returned by all endpoints.
//
// Fields:
//   - Success: whether the operation was accepted. False for both soft
//     business errors and hard HTTP failures.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: localized human-readable text resolved from Code.
//   - Data: the operation payload; null when there is none.
//
// This struct is used in OpenAPI documentation via Swagger annotations.
type Envelope struct {
	Success bool   `json:"success" example:"true"`
	Code    string `json:"code"    example:"success"`
	Message string `json:"message" example:"success"`
	Data    any    `json:"data"`
}

// message resolves code into the language negotiated from the request's
// Accept-Language header.
func message(c *gin.Context, code string) string {
	accept := ""
	if c != nil && c.Request != nil {
		accept = c.GetHeader("Accept-Language")
	}
	return i18n.Text(i18n.Match(accept), code)
}

// ok writes a 200 success envelope with the generic success code.
func ok(c *gin.Context, data any) {
	okCode(c, CodeSuccess, data)
}

// okCode writes a 200 success envelope with an explicit code. Used by the
// endpoints whose success responses carry a non-generic code, such as the
// delete confirmation.
func okCode(c *gin.Context, code string, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Code:    code,
		Message: message(c, code),
		Data:    data,
	})
}

// softFail writes a business-rule rejection: HTTP 200, success=false. The
// request reached the application and was understood; the operation itself
// was refused. Rejections are counted per code since the 200 status hides
// them from the standard HTTP metrics.
func softFail(c *gin.Context, code string) {
	middleware.ObserveSoftError(code)
	c.JSON(http.StatusOK, Envelope{
		Success: false,
		Code:    code,
		Message: message(c, code),
		Data:    nil,
	})
}

// fail aborts the request with an enveloped error at a real HTTP status.
//
// Server errors (>=500) are logged using the request-scoped logger from
// middleware so they carry the request id.
func fail(c *gin.Context, status int, code string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Code:    code,
		Message: message(c, code),
		Data:    nil,
	})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code string) { fail(c, status, code) }
