package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"frases/internal/notify"
)

func TestEventsHandler_StreamDeliversEvent(t *testing.T) {
	hub := notify.NewHub()
	h := NewEventsHandler(hub)

	e := echo.New()
	e.GET("/events", h.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		e.ServeHTTP(rec, req)
		close(done)
	}()

	// wait for the subscription, emit one event, then disconnect
	for i := 0; i < 100 && hub.Count() == 0; i++ {
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, 1, hub.Count())
	hub.Broadcast(notify.EventQuoteUpdated)
	time.Sleep(10 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "event: quote-updated")
	assert.Equal(t, 0, hub.Count())
}

func TestEventsHandler_ClosedClientEndsStream(t *testing.T) {
	hub := notify.NewHub()
	h := NewEventsHandler(hub)

	e := echo.New()
	e.GET("/events", h.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, hub.Count())
}
