package http

import (
	"log/slog"
	"time"

	"fooddelivery/internal/generated/servers"
)

const defaultKeepAlive = 15 * time.Second

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	availability Availability
	events       EventStream
	handlers     Handlers
	logger       *slog.Logger
	keepAlive    time.Duration
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the registry, the event stream and
// the command and query handlers.
func NewServer(availability Availability, events EventStream, handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		availability: availability,
		events:       events,
		handlers:     handlers,
		logger:       logger.With("component", "HttpServer"),
		keepAlive:    defaultKeepAlive,
	}
}
