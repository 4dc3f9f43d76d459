// Package events fans timer activity out to connected clients. The hub is
// the only place the backend pushes to the UI; everything else is
// request/response.
package events

import "sync"

const (
	TypeTick       = "tick"
	TypeCompleted  = "completed"
	TypeState      = "state"
	TypeTheme      = "theme"
	TypeBadgeClear = "badge_clear"
)

// Event is one pushed message. Type names the stream event and Data is its
// JSON payload.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a buffered listener for one user's events. The cancel
// func unregisters and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(userID string, buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	listeners, ok := h.subs[userID]
	if !ok {
		listeners = make(map[chan Event]struct{})
		h.subs[userID] = listeners
	}
	listeners[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if listeners, ok := h.subs[userID]; ok {
				delete(listeners, ch)
				if len(listeners) == 0 {
					delete(h.subs, userID)
				}
			}
			close(ch)
			h.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish fans an event out to every listener of the user. A listener whose
// buffer is full misses the event; publishing never blocks the timer.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Listeners reports how many channels are subscribed for the user.
func (h *Hub) Listeners(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[userID])
}
