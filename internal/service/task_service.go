package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Tanzimhossain222/chrono-boost/internal/errors"
	"github.com/Tanzimhossain222/chrono-boost/internal/events"
	"github.com/Tanzimhossain222/chrono-boost/internal/model"
)

type TaskService struct {
	store SnapshotStore
	hub   *events.Hub
	now   func() time.Time
}

func NewTaskService(store SnapshotStore, hub *events.Hub) *TaskService {
	return &TaskService{store: store, hub: hub, now: time.Now}
}

func (s *TaskService) Add(ctx context.Context, userID, text string) (*StateView, *apperrors.APIError) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.BadRequest("invalid_task_text", "task text is required")
	}

	now := s.now().UTC()
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		snapshot.Tasks = append(snapshot.Tasks, model.Task{
			ID:        uuid.NewString(),
			Text:      trimmed,
			CreatedAt: now,
		})
		snapshot.RecomputeDailyStats(now)
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to add task")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, now)
	return &view, nil
}

func (s *TaskService) Toggle(ctx context.Context, userID, taskID string) (*StateView, *apperrors.APIError) {
	now := s.now().UTC()
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		task := snapshot.FindTask(taskID)
		if task == nil {
			return apperrors.NotFound("task_not_found", "task not found")
		}
		task.Toggle(now)
		snapshot.RecomputeDailyStats(now)
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to toggle task")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, now)
	return &view, nil
}

func (s *TaskService) Rename(ctx context.Context, userID, taskID, text string) (*StateView, *apperrors.APIError) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.BadRequest("invalid_task_text", "task text is required")
	}

	now := s.now().UTC()
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		task := snapshot.FindTask(taskID)
		if task == nil {
			return apperrors.NotFound("task_not_found", "task not found")
		}
		task.Text = trimmed
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to rename task")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, now)
	return &view, nil
}

func (s *TaskService) Remove(ctx context.Context, userID, taskID string) (*StateView, *apperrors.APIError) {
	now := s.now().UTC()
	stored, err := s.store.Mutate(ctx, userID, func(snapshot *model.Snapshot) error {
		if snapshot.FindTask(taskID) == nil {
			return apperrors.NotFound("task_not_found", "task not found")
		}
		kept := make([]model.Task, 0, len(snapshot.Tasks)-1)
		for _, task := range snapshot.Tasks {
			if task.ID != taskID {
				kept = append(kept, task)
			}
		}
		snapshot.Tasks = kept
		snapshot.RecomputeDailyStats(now)
		return nil
	})
	if err != nil {
		return nil, storeError(err, "failed to remove task")
	}

	s.publishState(userID, stored.Revision)
	view := toStateView(stored, now)
	return &view, nil
}

func (s *TaskService) publishState(userID string, revision int64) {
	s.hub.Publish(userID, events.Event{Type: events.TypeState, Data: statePayload{Revision: revision}})
}
