package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"frases/internal/notify"
)

// EventsHandler streams change notifications to clients over SSE.
type EventsHandler struct {
	hub *notify.Hub
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(hub *notify.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream godoc
// @Summary Server-sent events stream of quote-updated notifications
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (h *EventsHandler) Stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	events, cancel := h.hub.Subscribe()
	defer cancel()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case ev := <-events:
			// no payload, the event name is the whole signal
			if _, err := fmt.Fprintf(res, "event: %s\ndata: {}\n\n", ev); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
