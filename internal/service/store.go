package service

import (
	"context"
	"errors"

	apperrors "github.com/Tanzimhossain222/chrono-boost/internal/errors"
	"github.com/Tanzimhossain222/chrono-boost/internal/model"
	"github.com/Tanzimhossain222/chrono-boost/internal/repository"
)

// SnapshotStore is the persistence the services run on. Mutate must load the
// aggregate, apply fn and write the whole snapshot back atomically, bumping
// the revision; an error from fn aborts the write and comes back verbatim.
type SnapshotStore interface {
	CreateInitial(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*repository.StoredSnapshot, error)
	Mutate(ctx context.Context, userID string, fn func(*model.Snapshot) error) (*repository.StoredSnapshot, error)
}

// storeError maps a store failure to the API error the handler should see.
// Domain failures raised inside Mutate callbacks pass through unchanged.
func storeError(err error, message string) *apperrors.APIError {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("state_not_found", "state not found")
	}
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return apperrors.Internal(message)
}
