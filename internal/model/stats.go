package model

import "time"

const dayKeyLayout = "2006-01-02"

// DailyStat is one calendar day's aggregate row. Date is a UTC day key in
// YYYY-MM-DD form and there is at most one row per key.
type DailyStat struct {
	Date                string `json:"date"`
	CompletedFocusCount int    `json:"completedFocusCount"`
	TotalFocusMinutes   int    `json:"totalFocusMinutes"`
	CompletedTaskCount  int    `json:"completedTaskCount"`
}

// DayKey converts an instant to its UTC calendar-day key.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}
