package model_test

import (
	"testing"

	"github.com/Tanzimhossain222/chrono-boost/internal/model"
)

func TestValidateRejectsOutOfRangeDurations(t *testing.T) {
	cases := []struct {
		name  string
		field string
		apply func(*model.Settings)
	}{
		{"focus too low", "focusMinutes", func(s *model.Settings) { s.FocusMinutes = 0 }},
		{"focus too high", "focusMinutes", func(s *model.Settings) { s.FocusMinutes = 61 }},
		{"short break too low", "shortBreakMinutes", func(s *model.Settings) { s.ShortBreakMinutes = 0 }},
		{"short break too high", "shortBreakMinutes", func(s *model.Settings) { s.ShortBreakMinutes = 31 }},
		{"long break too low", "longBreakMinutes", func(s *model.Settings) { s.LongBreakMinutes = 0 }},
		{"long break too high", "longBreakMinutes", func(s *model.Settings) { s.LongBreakMinutes = 61 }},
		{"interval too low", "longBreakInterval", func(s *model.Settings) { s.LongBreakInterval = 1 }},
		{"interval too high", "longBreakInterval", func(s *model.Settings) { s.LongBreakInterval = 9 }},
		{"unknown theme", "theme", func(s *model.Settings) { s.Theme = "sepia" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := model.DefaultSettings()
			tc.apply(&settings)

			problems := settings.Validate()
			if problems == nil {
				t.Fatal("expected validation to fail")
			}
			if _, ok := problems[tc.field]; !ok {
				t.Fatalf("expected problem on %s, got %v", tc.field, problems)
			}
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if problems := model.DefaultSettings().Validate(); problems != nil {
		t.Fatalf("expected defaults to validate, got %v", problems)
	}
}

func TestPatchAppliesOnlyProvidedFields(t *testing.T) {
	base := model.DefaultSettings()

	focus := 50
	theme := model.ThemeDark
	autoStart := true
	patch := model.SettingsPatch{
		FocusMinutes:    &focus,
		Theme:           &theme,
		AutoStartBreaks: &autoStart,
	}

	next := patch.Apply(base)
	if next.FocusMinutes != 50 {
		t.Fatalf("expected focusMinutes 50, got %d", next.FocusMinutes)
	}
	if next.Theme != model.ThemeDark {
		t.Fatalf("expected dark theme, got %s", next.Theme)
	}
	if !next.AutoStartBreaks {
		t.Fatal("expected autoStartBreaks set")
	}
	if next.ShortBreakMinutes != base.ShortBreakMinutes || next.LongBreakInterval != base.LongBreakInterval {
		t.Fatal("expected untouched fields to keep their values")
	}
	if base.FocusMinutes != 25 {
		t.Fatal("expected the base settings to stay unchanged")
	}
}

func TestSanitizeFallsBackPerField(t *testing.T) {
	settings := model.Settings{
		FocusMinutes:      999,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  -1,
		LongBreakInterval: 6,
		Theme:             "neon",
	}

	settings.Sanitize()

	if settings.FocusMinutes != 25 {
		t.Fatalf("expected focusMinutes to fall back to 25, got %d", settings.FocusMinutes)
	}
	if settings.ShortBreakMinutes != 10 {
		t.Fatalf("expected valid shortBreakMinutes kept, got %d", settings.ShortBreakMinutes)
	}
	if settings.LongBreakMinutes != 15 {
		t.Fatalf("expected longBreakMinutes to fall back to 15, got %d", settings.LongBreakMinutes)
	}
	if settings.LongBreakInterval != 6 {
		t.Fatalf("expected valid interval kept, got %d", settings.LongBreakInterval)
	}
	if settings.Theme != model.ThemeSystem {
		t.Fatalf("expected theme to fall back to system, got %s", settings.Theme)
	}
}

func TestMinutesForMode(t *testing.T) {
	settings := model.DefaultSettings()
	if settings.MinutesFor(model.ModeFocus) != 25 {
		t.Fatal("expected focus duration")
	}
	if settings.MinutesFor(model.ModeShortBreak) != 5 {
		t.Fatal("expected short break duration")
	}
	if settings.MinutesFor(model.ModeLongBreak) != 15 {
		t.Fatal("expected long break duration")
	}
}
