package events_test

import (
	"testing"

	"github.com/Tanzimhossain222/chrono-boost/internal/events"
)

func TestPublishReachesOnlyTheUsersListeners(t *testing.T) {
	hub := events.NewHub()

	aliceCh, cancelAlice := hub.Subscribe("alice", 4)
	defer cancelAlice()
	bobCh, cancelBob := hub.Subscribe("bob", 4)
	defer cancelBob()

	hub.Publish("alice", events.Event{Type: events.TypeTick, Data: "a"})

	select {
	case event := <-aliceCh:
		if event.Type != events.TypeTick {
			t.Fatalf("expected tick, got %s", event.Type)
		}
	default:
		t.Fatal("expected alice to receive the event")
	}

	select {
	case event := <-bobCh:
		t.Fatalf("expected nothing for bob, got %+v", event)
	default:
	}
}

func TestPublishSkipsFullListeners(t *testing.T) {
	hub := events.NewHub()

	ch, cancel := hub.Subscribe("alice", 1)
	defer cancel()

	hub.Publish("alice", events.Event{Type: events.TypeTick, Data: 1})
	hub.Publish("alice", events.Event{Type: events.TypeTick, Data: 2})

	first := <-ch
	if first.Data != 1 {
		t.Fatalf("expected the first event, got %+v", first)
	}
	select {
	case event := <-ch:
		t.Fatalf("expected the overflow event dropped, got %+v", event)
	default:
	}
}

func TestCancelUnsubscribesAndClosesChannel(t *testing.T) {
	hub := events.NewHub()

	ch, cancel := hub.Subscribe("alice", 1)
	cancel()
	cancel()

	if _, open := <-ch; open {
		t.Fatal("expected channel closed after cancel")
	}
	if hub.Listeners("alice") != 0 {
		t.Fatalf("expected no listeners, got %d", hub.Listeners("alice"))
	}

	// Publishing to a cancelled listener must not panic.
	hub.Publish("alice", events.Event{Type: events.TypeTick})
}
