package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/scrypster/frontdesk/internal/agent"
)

// QueryHandlers contains HTTP handlers for the question-answering API.
type QueryHandlers struct {
	agent *agent.Agent
}

// NewQueryHandlers creates a new QueryHandlers instance.
func NewQueryHandlers(a *agent.Agent) *QueryHandlers {
	return &QueryHandlers{agent: a}
}

// Respond handles POST /api/respond — run one query through the cascade.
// Empty input is not an HTTP error: the agent reports it in the result's
// source field so all presentation layers treat it uniformly.
func (h *QueryHandlers) Respond(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result := h.agent.Respond(r.Context(), req.Query)

	respondJSON(w, http.StatusOK, RespondResponse{
		ReplyID:     uuid.NewString(),
		MatchResult: result,
	})
}

// Healthz handles GET /api/healthz — liveness plus index/fallback status.
func (h *QueryHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:            "ok",
		IndexSize:         h.agent.IndexSize(),
		FallbackAvailable: h.agent.FallbackConfigured(),
	})
}
