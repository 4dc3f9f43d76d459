// Package ticker drives every running countdown from one loop. Handlers
// only flip flags; the clocks themselves advance here, one second at a time,
// through the same snapshot writes the rest of the app uses.
package ticker

import (
	"context"
	"log"
	"time"
)

// Advancer moves one user's countdown forward by one elapsed second.
type Advancer interface {
	AdvanceTick(ctx context.Context, userID string) error
}

// RunningLister names the users whose persisted sessions are counting down.
type RunningLister interface {
	RunningUsers(ctx context.Context) ([]string, error)
}

type Ticker struct {
	store    RunningLister
	advancer Advancer
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func New(store RunningLister, advancer Advancer) *Ticker {
	return &Ticker{
		store:    store,
		advancer: advancer,
		interval: time.Second,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the loop in its own goroutine.
func (t *Ticker) Start() {
	go t.run()
}

// Stop ends the loop and waits for an in-flight pass to finish.
func (t *Ticker) Stop() {
	close(t.stopCh)
	<-t.doneCh
}

func (t *Ticker) run() {
	defer close(t.doneCh)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			t.advanceAll()
		}
	}
}

// advanceAll ticks every running user once. Failures are logged and the
// pass moves on; a user whose tick failed simply catches up a second late.
func (t *Ticker) advanceAll() {
	ctx := context.Background()

	users, err := t.store.RunningUsers(ctx)
	if err != nil {
		log.Printf("ticker: list running users: %v", err)
		return
	}

	for _, userID := range users {
		if err := t.advancer.AdvanceTick(ctx, userID); err != nil {
			log.Printf("ticker: advance user %s: %v", userID, err)
		}
	}
}
