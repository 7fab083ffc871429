// Package server provides HTTP server initialization and lifecycle management
// for the Frontdesk API.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/scrypster/frontdesk/internal/agent"
	"github.com/scrypster/frontdesk/internal/config"
	"github.com/scrypster/frontdesk/web/handlers"
)

// Start initializes and starts the HTTP server, serving until ctx is done.
// Returns the actual address being listened on (useful for testing with port 0).
func Start(ctx context.Context, cfg *config.Config, a *agent.Agent) (string, error) {
	mux := http.NewServeMux()

	queryHandlers := handlers.NewQueryHandlers(a)
	mux.HandleFunc("/api/respond", queryHandlers.Respond)
	mux.HandleFunc("/api/healthz", queryHandlers.Healthz)
	mux.Handle("/ws/chat", handlers.NewChatHandler(a))

	// 10 req/sec sustained, burst of 20.
	rateLimiter := handlers.NewRateLimiter(10.0, 20)

	var handler http.Handler = mux
	handler = handlers.RateLimitMiddleware(handler, rateLimiter)
	handler = handlers.RequireAuth(handler, cfg)
	handler = handlers.SecurityHeaders(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("server: failed to listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("server: serve error: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server: shutdown error: %v", err)
		}
	}()

	return listener.Addr().String(), nil
}
