// Package handlers provides HTTP handlers and middleware for the Frontdesk API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/scrypster/frontdesk/pkg/types"
)

// RespondRequest is the request body for POST /api/respond.
type RespondRequest struct {
	Query string `json:"query"`
}

// RespondResponse is the response body for POST /api/respond and for each
// websocket reply. ReplyID is assigned per response; SessionID is only set
// on websocket replies.
type RespondResponse struct {
	ReplyID   string `json:"reply_id"`
	SessionID string `json:"session_id,omitempty"`
	types.MatchResult
}

// HealthResponse is the response body for GET /api/healthz.
type HealthResponse struct {
	Status            string `json:"status"`
	IndexSize         int    `json:"index_size"`
	FallbackAvailable bool   `json:"fallback_available"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// respondJSON writes data as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; log rather than attempting a second write.
		log.Printf("handlers: failed to encode JSON response: %v", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, statusCode int, message string, err error) {
	errResp := ErrorResponse{
		Error: message,
		Code:  http.StatusText(statusCode),
	}
	if err != nil {
		errResp.Details = map[string]interface{}{
			"error": err.Error(),
		}
	}
	respondJSON(w, statusCode, errResp)
}
