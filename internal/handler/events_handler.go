package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tanzimhossain222/chrono-boost/internal/events"
	"github.com/Tanzimhossain222/chrono-boost/internal/middleware"
)

const eventBuffer = 32

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream pushes the user's timer events over SSE until the client goes away.
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": gin.H{"code": "unauthorized", "message": "unauthorized"},
		})
		return
	}

	ch, cancel := h.hub.Subscribe(userID, eventBuffer)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event.Data)
			return true
		}
	})
}
