package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fooddelivery/internal/adapters/out/pgnotify"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// StreamEvents godoc
//
//	@Summary		Server-sent events for one channel
//	@Description	seller-{sellerId} carries new orders, {userId} carries order status and notifications, sellers carries availability broadcasts.
//	@Tags			events
//	@Produce		text/event-stream
//	@Param			channel	query	string	true	"Channel name"
//	@Success		200
//	@Failure		400	{object}	servers.Error
//	@Router			/api/v1/events [get]
func (s *Server) StreamEvents(ctx echo.Context, params servers.StreamEventsParams) error {
	channel := strings.TrimSpace(params.Channel)
	if channel == "" {
		return badRequest(ctx, "channel is required")
	}

	events, cancel := s.events.Subscribe(channel)
	defer cancel()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	s.logger.Debug("event stream opened", "channel", channel)
	defer s.logger.Debug("event stream closed", "channel", channel)

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case env, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(w, env); err != nil {
				s.logger.Debug("event stream write failed", "channel", channel, "error", err)
				return nil
			}
			w.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeEvent(w *echo.Response, env pgnotify.Envelope) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", env.Event, env.Payload)
	return err
}
