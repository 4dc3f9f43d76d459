package service

import (
	"time"

	"github.com/Tanzimhossain222/chrono-boost/internal/model"
	"github.com/Tanzimhossain222/chrono-boost/internal/notify"
	"github.com/Tanzimhossain222/chrono-boost/internal/repository"
)

// StateView is the full aggregate as every endpoint returns it. Mutations
// respond with the updated view so clients can replace their copy wholesale.
type StateView struct {
	Session    model.Session     `json:"session"`
	Settings   model.Settings    `json:"settings"`
	Tasks      []model.Task      `json:"tasks"`
	DailyStats []model.DailyStat `json:"dailyStats"`
	Revision   int64             `json:"revision"`
	ServerTime time.Time         `json:"serverTime"`
}

func toStateView(stored *repository.StoredSnapshot, now time.Time) StateView {
	return StateView{
		Session:    stored.Snapshot.Session,
		Settings:   stored.Snapshot.Settings,
		Tasks:      stored.Snapshot.Tasks,
		DailyStats: stored.Snapshot.DailyStats,
		Revision:   stored.Revision,
		ServerTime: now,
	}
}

type tickPayload struct {
	Mode             string `json:"mode"`
	RemainingMinutes int    `json:"remainingMinutes"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Running          bool   `json:"running"`
	BadgeText        string `json:"badgeText"`
	BadgeColor       string `json:"badgeColor"`
}

type completedPayload struct {
	Exited       string              `json:"exited"`
	Notification notify.Notification `json:"notification"`
	Session      model.Session       `json:"session"`
}

type statePayload struct {
	Revision int64 `json:"revision"`
}

type themePayload struct {
	Theme string `json:"theme"`
}
