package service

import (
	"context"
	"sort"

	apperrors "github.com/Tanzimhossain222/chrono-boost/internal/errors"
	"github.com/Tanzimhossain222/chrono-boost/internal/model"
)

type StatsService struct {
	store SnapshotStore
}

func NewStatsService(store SnapshotStore) *StatsService {
	return &StatsService{store: store}
}

// Daily returns the per-day aggregate rows oldest first.
func (s *StatsService) Daily(ctx context.Context, userID string) ([]model.DailyStat, *apperrors.APIError) {
	stored, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, storeError(err, "failed to load stats")
	}

	stats := make([]model.DailyStat, len(stored.Snapshot.DailyStats))
	copy(stats, stored.Snapshot.DailyStats)
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})
	return stats, nil
}
