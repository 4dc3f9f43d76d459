package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// SchemaVersion tags persisted snapshots so later layouts can migrate old
// payloads instead of misreading them.
const SchemaVersion = 1

// Snapshot is one user's whole persisted aggregate. Countdown, preferences,
// tasks and per-day totals travel together and are always written back as a
// unit, so the last writer wins on the full snapshot.
type Snapshot struct {
	SchemaVersion int         `json:"schemaVersion"`
	Session       Session     `json:"session"`
	Settings      Settings    `json:"settings"`
	Tasks         []Task      `json:"tasks"`
	DailyStats    []DailyStat `json:"dailyStats"`
}

func NewSnapshot() Snapshot {
	settings := DefaultSettings()
	return Snapshot{
		SchemaVersion: SchemaVersion,
		Session:       NewSession(settings),
		Settings:      settings,
		Tasks:         []Task{},
		DailyStats:    []DailyStat{},
	}
}

// FindTask returns a pointer into Tasks, nil when the id is unknown.
func (s *Snapshot) FindTask(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// RecordFocusCompletion bumps today's completed-focus total and refreshes the
// derived columns of the same row.
func (s *Snapshot) RecordFocusCompletion(now time.Time) {
	key := DayKey(now)
	row := s.dailyStatFor(key)
	row.CompletedFocusCount++
	s.refreshDailyStat(row, key)
}

// RecomputeDailyStats rebuilds today's derived columns: focus minutes from
// the focus duration currently in effect and the completed-task count from
// completedAt stamps. The completed-focus total itself is untouched.
func (s *Snapshot) RecomputeDailyStats(now time.Time) {
	key := DayKey(now)
	row := s.dailyStatFor(key)
	s.refreshDailyStat(row, key)
}

func (s *Snapshot) dailyStatFor(key string) *DailyStat {
	for i := range s.DailyStats {
		if s.DailyStats[i].Date == key {
			return &s.DailyStats[i]
		}
	}
	s.DailyStats = append(s.DailyStats, DailyStat{Date: key})
	return &s.DailyStats[len(s.DailyStats)-1]
}

func (s *Snapshot) refreshDailyStat(row *DailyStat, key string) {
	row.TotalFocusMinutes = row.CompletedFocusCount * s.Settings.FocusMinutes
	completed := 0
	for i := range s.Tasks {
		task := &s.Tasks[i]
		if task.Completed && task.CompletedAt != nil && DayKey(*task.CompletedAt) == key {
			completed++
		}
	}
	row.CompletedTaskCount = completed
}

func EncodeSnapshot(snapshot Snapshot) ([]byte, error) {
	snapshot.SchemaVersion = SchemaVersion
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot rebuilds a snapshot from its persisted form. Each section is
// decoded on its own; a damaged or missing section falls back to its default
// while the readable sections are kept. Only an unparseable payload returns
// an error, and even then the returned snapshot is a usable default.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	snapshot := NewSnapshot()

	var raw struct {
		SchemaVersion int             `json:"schemaVersion"`
		Session       json.RawMessage `json:"session"`
		Settings      json.RawMessage `json:"settings"`
		Tasks         json.RawMessage `json:"tasks"`
		DailyStats    json.RawMessage `json:"dailyStats"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return snapshot, fmt.Errorf("decode snapshot: %w", err)
	}

	// Settings first so the session bounds can be checked against them.
	if len(raw.Settings) > 0 {
		var settings Settings
		if err := json.Unmarshal(raw.Settings, &settings); err == nil {
			settings.Sanitize()
			snapshot.Settings = settings
		}
	}

	if len(raw.Session) > 0 {
		var session Session
		if err := json.Unmarshal(raw.Session, &session); err == nil {
			session.Sanitize(snapshot.Settings)
			snapshot.Session = session
		} else {
			snapshot.Session = NewSession(snapshot.Settings)
		}
	} else {
		snapshot.Session = NewSession(snapshot.Settings)
	}

	if len(raw.Tasks) > 0 {
		var tasks []Task
		if err := json.Unmarshal(raw.Tasks, &tasks); err == nil {
			kept := make([]Task, 0, len(tasks))
			for _, task := range tasks {
				if task.ID == "" || strings.TrimSpace(task.Text) == "" {
					continue
				}
				kept = append(kept, task)
			}
			snapshot.Tasks = kept
		}
	}

	if len(raw.DailyStats) > 0 {
		var stats []DailyStat
		if err := json.Unmarshal(raw.DailyStats, &stats); err == nil {
			kept := make([]DailyStat, 0, len(stats))
			for _, stat := range stats {
				if stat.Date == "" {
					continue
				}
				kept = append(kept, stat)
			}
			snapshot.DailyStats = kept
		}
	}

	return snapshot, nil
}
