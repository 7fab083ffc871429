package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"nhooyr.io/websocket" //nolint:staticcheck // TODO: migrate to github.com/coder/websocket

	"github.com/scrypster/frontdesk/internal/agent"
)

// ChatHandler serves an interactive chat session over a websocket.
// Each text message is one query; each reply carries the session ID and the
// full match result. Queries within a session are processed sequentially —
// the cascade itself is synchronous.
type ChatHandler struct {
	agent *agent.Agent
}

// NewChatHandler creates a websocket chat handler.
func NewChatHandler(a *agent.Agent) *ChatHandler {
	return &ChatHandler{agent: a}
}

// ServeHTTP handles GET /ws/chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("handlers: websocket accept failed: %v", err)
		return
	}
	defer conn.CloseNow()

	sessionID := uuid.NewString()
	ctx := r.Context()

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			// Client closed or context cancelled; nothing to report.
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		result := h.agent.Respond(ctx, string(data))

		reply := RespondResponse{
			ReplyID:     uuid.NewString(),
			SessionID:   sessionID,
			MatchResult: result,
		}

		if err := writeJSON(ctx, conn, reply); err != nil {
			log.Printf("handlers: websocket write failed: %v", err)
			return
		}
	}
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, buf)
}
