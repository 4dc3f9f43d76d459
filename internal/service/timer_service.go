package service

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/Tanzimhossain222/chrono-boost/internal/errors"
	"github.com/Tanzimhossain222/chrono-boost/internal/events"
	"github.com/Tanzimhossain222/chrono-boost/internal/model"
	"github.com/Tanzimhossain222/chrono-boost/internal/notify"
	"github.com/Tanzimhossain222/chrono-boost/internal/repository"
)

// errSessionIdle aborts a tick write for a session that stopped between the
// ticker's listing and the advance.
var errSessionIdle = errors.New("session idle")

// TimerService owns every session mutation. Commands and ticks all go
// through the store's Mutate so each write replaces the full snapshot.
type TimerService struct {
	store      SnapshotStore
	hub        *events.Hub
	now        func() time.Time
	clearDelay time.Duration
}

func NewTimerService(store SnapshotStore, hub *events.Hub) *TimerService {
	return &TimerService{
		store:      store,
		hub:        hub,
		now:        time.Now,
		clearDelay: notify.BadgeClearDelay,
	}
}

func (s *TimerService) State(ctx context.Context, userID string) (*StateView, *apperrors.APIError) {
	stored, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, storeError(err, "failed to load state")
	}
	view := toStateView(stored, s.now().UTC())
	return &view, nil
}

func (s *TimerService) Start(ctx context.Context, userID string) (*StateView, *apperrors.APIError) {
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		snapshot.Session.Start()
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to start timer")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, s.now().UTC())
	return &view, nil
}

func (s *TimerService) Pause(ctx context.Context, userID string) (*StateView, *apperrors.APIError) {
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		snapshot.Session.Pause()
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to pause timer")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, s.now().UTC())
	return &view, nil
}

func (s *TimerService) Reset(ctx context.Context, userID string) (*StateView, *apperrors.APIError) {
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		snapshot.Session.Reset(snapshot.Settings)
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to reset timer")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, s.now().UTC())
	return &view, nil
}

// Complete skips to the end of the current interval. Skipped focus intervals
// still count toward the day's totals.
func (s *TimerService) Complete(ctx context.Context, userID string) (*StateView, *apperrors.APIError) {
	now := s.now().UTC()
	var exited string
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		exited = snapshot.Session.Complete(snapshot.Settings)
		if exited == model.ModeFocus {
			snapshot.RecordFocusCompletion(now)
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to complete interval")
	}

	s.emitCompletion(userID, exited, stored)
	view := toStateView(stored, now)
	return &view, nil
}

func (s *TimerService) UpdateSettings(ctx context.Context, userID string, patch model.SettingsPatch) (*StateView, *apperrors.APIError) {
	now := s.now().UTC()
	var themeChanged bool
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		next := patch.Apply(snapshot.Settings)
		if problems := next.Validate(); problems != nil {
			apiErr := apperrors.BadRequest("invalid_settings", "settings are out of range")
			apiErr.Details = problems
			return apiErr
		}

		themeChanged = next.Theme != snapshot.Settings.Theme

		// A changed duration for the current mode takes effect immediately,
		// discarding partial progress.
		mode := snapshot.Session.Mode
		if next.MinutesFor(mode) != snapshot.Settings.MinutesFor(mode) {
			snapshot.Session.RemainingMinutes = next.MinutesFor(mode)
			snapshot.Session.RemainingSeconds = 0
		}

		snapshot.Settings = next
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to update settings")
	}

	if themeChanged {
		s.hub.Publish(userID, events.Event{
			Type: events.TypeTheme,
			Data: themePayload{Theme: stored.Snapshot.Settings.Theme},
		})
	}
	s.publishState(userID, stored.Revision)

	view := toStateView(stored, now)
	return &view, nil
}

// AdvanceTick moves one user's countdown forward by one second and emits the
// matching events. The background ticker calls this once per running user
// per elapsed second; a session paused in the meantime is left alone.
func (s *TimerService) AdvanceTick(ctx context.Context, userID string) error {
	now := s.now().UTC()
	var (
		completed bool
		exited    string
	)
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		if !snapshot.Session.Running {
			return errSessionIdle
		}
		completed, exited = snapshot.Session.Tick(snapshot.Settings)
		if completed && exited == model.ModeFocus {
			snapshot.RecordFocusCompletion(now)
		}
		return nil
	})
	if errors.Is(err, errSessionIdle) {
		return nil
	}
	if err != nil {
		return err
	}

	session := stored.Snapshot.Session
	s.hub.Publish(userID, events.Event{
		Type: events.TypeTick,
		Data: tickPayload{
			Mode:             session.Mode,
			RemainingMinutes: session.RemainingMinutes,
			RemainingSeconds: session.RemainingSeconds,
			Running:          session.Running,
			BadgeText:        notify.BadgeText(session.RemainingMinutes, session.RemainingSeconds),
			BadgeColor:       notify.BadgeColor(session.Mode),
		},
	})

	if completed {
		s.emitCompletion(userID, exited, stored)
	}
	return nil
}

func (s *TimerService) emitCompletion(userID, exited string, stored *repository.StoredSnapshot) {
	s.hub.Publish(userID, events.Event{
		Type: events.TypeCompleted,
		Data: completedPayload{
			Exited:       exited,
			Notification: notify.ForCompletion(exited, stored.Snapshot.Settings),
			Session:      stored.Snapshot.Session,
		},
	})
	s.publishState(userID, stored.Revision)

	time.AfterFunc(s.clearDelay, func() {
		s.hub.Publish(userID, events.Event{Type: events.TypeBadgeClear})
	})
}

func (s *TimerService) publishState(userID string, revision int64) {
	s.hub.Publish(userID, events.Event{Type: events.TypeState, Data: statePayload{Revision: revision}})
}
