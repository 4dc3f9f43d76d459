package model_test

import (
	"testing"

	"github.com/Tanzimhossain222/chrono-boost/internal/model"
)

func testSettings() model.Settings {
	settings := model.DefaultSettings()
	settings.FocusMinutes = 25
	settings.ShortBreakMinutes = 5
	settings.LongBreakMinutes = 15
	settings.LongBreakInterval = 4
	return settings
}

func TestNewSessionStartsIdleInFocus(t *testing.T) {
	settings := testSettings()
	session := model.NewSession(settings)

	if session.Mode != model.ModeFocus {
		t.Fatalf("expected focus mode, got %s", session.Mode)
	}
	if session.Running {
		t.Fatal("expected new session to be stopped")
	}
	if session.RemainingMinutes != 25 || session.RemainingSeconds != 0 {
		t.Fatalf("expected 25:00 on the clock, got %d:%02d", session.RemainingMinutes, session.RemainingSeconds)
	}
	if session.CycleIndex != 1 {
		t.Fatalf("expected cycle index 1, got %d", session.CycleIndex)
	}
}

func TestResetLoadsConfiguredDurationForMode(t *testing.T) {
	settings := testSettings()

	cases := []struct {
		mode    string
		minutes int
	}{
		{model.ModeFocus, 25},
		{model.ModeShortBreak, 5},
		{model.ModeLongBreak, 15},
	}

	for _, tc := range cases {
		session := model.Session{Mode: tc.mode, RemainingMinutes: 1, RemainingSeconds: 30, Running: true, CycleIndex: 1}
		session.Reset(settings)

		if session.Running {
			t.Fatalf("mode %s: expected reset to stop the countdown", tc.mode)
		}
		if session.RemainingMinutes != tc.minutes || session.RemainingSeconds != 0 {
			t.Fatalf("mode %s: expected %d:00, got %d:%02d", tc.mode, tc.minutes, session.RemainingMinutes, session.RemainingSeconds)
		}
	}
}

func TestTickBorrowsMinuteOnSecondsUnderflow(t *testing.T) {
	settings := testSettings()
	session := model.Session{Mode: model.ModeFocus, RemainingMinutes: 1, RemainingSeconds: 0, Running: true, CycleIndex: 1}

	completed, _ := session.Tick(settings)
	if completed {
		t.Fatal("expected no completion at 1:00")
	}
	if session.RemainingMinutes != 0 || session.RemainingSeconds != 59 {
		t.Fatalf("expected 0:59 after one tick, got %d:%02d", session.RemainingMinutes, session.RemainingSeconds)
	}
}

func TestTickingNTimesRemovesExactlyNSeconds(t *testing.T) {
	settings := testSettings()
	session := model.Session{Mode: model.ModeFocus, RemainingMinutes: 2, RemainingSeconds: 5, Running: true, CycleIndex: 1}

	total := session.RemainingTotalSeconds()
	for n := 1; n <= total; n++ {
		completed, _ := session.Tick(settings)
		if completed {
			t.Fatalf("unexpected completion on tick %d", n)
		}
		if got := session.RemainingTotalSeconds(); got != total-n {
			t.Fatalf("after %d ticks expected %d seconds left, got %d", n, total-n, got)
		}
	}
}

func TestTickIsNoopWhileStopped(t *testing.T) {
	settings := testSettings()
	session := model.Session{Mode: model.ModeFocus, RemainingMinutes: 10, RemainingSeconds: 0, Running: false, CycleIndex: 1}

	completed, _ := session.Tick(settings)
	if completed {
		t.Fatal("expected no completion while stopped")
	}
	if session.RemainingMinutes != 10 || session.RemainingSeconds != 0 {
		t.Fatalf("expected clock untouched, got %d:%02d", session.RemainingMinutes, session.RemainingSeconds)
	}
}

func TestTickAtZeroFiresCompletion(t *testing.T) {
	settings := testSettings()
	session := model.Session{Mode: model.ModeFocus, RemainingMinutes: 0, RemainingSeconds: 0, Running: true, CycleIndex: 1}

	completed, exited := session.Tick(settings)
	if !completed {
		t.Fatal("expected tick at 0:00 to complete the interval")
	}
	if exited != model.ModeFocus {
		t.Fatalf("expected to exit focus, got %s", exited)
	}
	if session.Mode != model.ModeShortBreak {
		t.Fatalf("expected short break after first focus, got %s", session.Mode)
	}
	if session.RemainingMinutes != 5 || session.RemainingSeconds != 0 {
		t.Fatalf("expected 5:00 on the clock, got %d:%02d", session.RemainingMinutes, session.RemainingSeconds)
	}
}

func TestCompleteVisitsLongBreakEveryIntervalthFocus(t *testing.T) {
	settings := testSettings()
	session := model.NewSession(settings)

	var visited []string
	for i := 0; i < 4; i++ {
		session.Complete(settings)
		visited = append(visited, session.Mode)
		// Finish the break to get back into focus.
		session.Complete(settings)
		if session.Mode != model.ModeFocus {
			t.Fatalf("expected to return to focus after a break, got %s", session.Mode)
		}
	}

	want := []string{model.ModeShortBreak, model.ModeShortBreak, model.ModeShortBreak, model.ModeLongBreak}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("completion %d: expected %s, got %s", i+1, want[i], visited[i])
		}
	}
	if session.CompletedFocusCount != 4 {
		t.Fatalf("expected 4 completed focus sessions, got %d", session.CompletedFocusCount)
	}
	if session.CycleIndex != 2 {
		t.Fatalf("expected cycle index 2 after leaving the long break, got %d", session.CycleIndex)
	}
}

func TestCompleteHonorsAutoStartFlags(t *testing.T) {
	settings := testSettings()
	settings.AutoStartBreaks = true
	settings.AutoStartFocus = false

	session := model.NewSession(settings)
	session.Complete(settings)
	if !session.Running {
		t.Fatal("expected break to auto-start")
	}

	session.Complete(settings)
	if session.Running {
		t.Fatal("expected focus to stay stopped")
	}

	settings.AutoStartFocus = true
	session.Complete(settings)
	session.Complete(settings)
	if !session.Running {
		t.Fatal("expected focus to auto-start")
	}
}

func TestStartAndPauseAreIdempotent(t *testing.T) {
	settings := testSettings()
	session := model.NewSession(settings)

	session.Start()
	session.Start()
	if !session.Running {
		t.Fatal("expected session to run after start")
	}

	session.Pause()
	session.Pause()
	if session.Running {
		t.Fatal("expected session to stop after pause")
	}
	if session.RemainingMinutes != 25 || session.RemainingSeconds != 0 {
		t.Fatalf("expected clock untouched by start/pause, got %d:%02d", session.RemainingMinutes, session.RemainingSeconds)
	}
}

func TestSanitizeRepairsBrokenSession(t *testing.T) {
	settings := testSettings()
	session := model.Session{
		Mode:                "nap",
		RemainingMinutes:    -3,
		RemainingSeconds:    99,
		CompletedFocusCount: -1,
		CycleIndex:          0,
	}

	session.Sanitize(settings)

	if session.Mode != model.ModeFocus {
		t.Fatalf("expected unknown mode to fall back to focus, got %s", session.Mode)
	}
	if session.RemainingMinutes != 25 || session.RemainingSeconds != 0 {
		t.Fatalf("expected clock reloaded to 25:00, got %d:%02d", session.RemainingMinutes, session.RemainingSeconds)
	}
	if session.CompletedFocusCount != 0 || session.CycleIndex != 1 {
		t.Fatalf("expected counters floored, got count=%d cycle=%d", session.CompletedFocusCount, session.CycleIndex)
	}
}
