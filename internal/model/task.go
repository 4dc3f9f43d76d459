package model

import "time"

type Task struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Toggle flips completion. CompletedAt is stamped only on the open->done
// transition and cleared again when the task is reopened.
func (t *Task) Toggle(now time.Time) {
	if t.Completed {
		t.Completed = false
		t.CompletedAt = nil
		return
	}
	t.Completed = true
	at := now.UTC()
	t.CompletedAt = &at
}
