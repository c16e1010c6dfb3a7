package web

// errors.go provides unified error responses for the API.
//
// The technical error is logged with the request id for correlation; the
// client receives the coded user message from core.MapError.

import (
	"net/http"

	"github.com/JonMunkholm/omareport/internal/core"
	"github.com/JonMunkholm/omareport/internal/logging"
	"github.com/go-chi/render"
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs err and writes its coded message with statusCode.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	msg := core.MapError(err)

	logging.FromContext(r.Context()).Warn("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"code", msg.Code,
		"error", err.Error(),
	)

	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:   err.Error(),
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}
