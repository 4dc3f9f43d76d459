package model

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

type Settings struct {
	FocusMinutes         int    `json:"focusMinutes"`
	ShortBreakMinutes    int    `json:"shortBreakMinutes"`
	LongBreakMinutes     int    `json:"longBreakMinutes"`
	LongBreakInterval    int    `json:"longBreakInterval"`
	AutoStartBreaks      bool   `json:"autoStartBreaks"`
	AutoStartFocus       bool   `json:"autoStartFocus"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	SoundsEnabled        bool   `json:"soundsEnabled"`
	Theme                string `json:"theme"`
}

func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:         25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		LongBreakInterval:    4,
		AutoStartBreaks:      false,
		AutoStartFocus:       false,
		NotificationsEnabled: true,
		SoundsEnabled:        true,
		Theme:                ThemeSystem,
	}
}

// Validate reports out-of-range fields as a field->message map, nil when the
// settings are acceptable. Values are never clamped; callers must reject the
// whole update when this returns problems.
func (s Settings) Validate() map[string]string {
	problems := map[string]string{}
	if s.FocusMinutes < 1 || s.FocusMinutes > 60 {
		problems["focusMinutes"] = "must be between 1 and 60"
	}
	if s.ShortBreakMinutes < 1 || s.ShortBreakMinutes > 30 {
		problems["shortBreakMinutes"] = "must be between 1 and 30"
	}
	if s.LongBreakMinutes < 1 || s.LongBreakMinutes > 60 {
		problems["longBreakMinutes"] = "must be between 1 and 60"
	}
	if s.LongBreakInterval < 2 || s.LongBreakInterval > 8 {
		problems["longBreakInterval"] = "must be between 2 and 8"
	}
	if !validTheme(s.Theme) {
		problems["theme"] = "must be one of light, dark, system"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// Sanitize replaces every out-of-range field with its default, leaving the
// valid fields alone. Used when loading persisted settings that may have
// been written by an older or corrupted client.
func (s *Settings) Sanitize() {
	defaults := DefaultSettings()
	if s.FocusMinutes < 1 || s.FocusMinutes > 60 {
		s.FocusMinutes = defaults.FocusMinutes
	}
	if s.ShortBreakMinutes < 1 || s.ShortBreakMinutes > 30 {
		s.ShortBreakMinutes = defaults.ShortBreakMinutes
	}
	if s.LongBreakMinutes < 1 || s.LongBreakMinutes > 60 {
		s.LongBreakMinutes = defaults.LongBreakMinutes
	}
	if s.LongBreakInterval < 2 || s.LongBreakInterval > 8 {
		s.LongBreakInterval = defaults.LongBreakInterval
	}
	if !validTheme(s.Theme) {
		s.Theme = defaults.Theme
	}
}

// MinutesFor returns the configured duration for a mode.
func (s Settings) MinutesFor(mode string) int {
	switch mode {
	case ModeShortBreak:
		return s.ShortBreakMinutes
	case ModeLongBreak:
		return s.LongBreakMinutes
	default:
		return s.FocusMinutes
	}
}

// SettingsPatch carries a partial settings update; nil fields keep their
// current value.
type SettingsPatch struct {
	FocusMinutes         *int    `json:"focusMinutes"`
	ShortBreakMinutes    *int    `json:"shortBreakMinutes"`
	LongBreakMinutes     *int    `json:"longBreakMinutes"`
	LongBreakInterval    *int    `json:"longBreakInterval"`
	AutoStartBreaks      *bool   `json:"autoStartBreaks"`
	AutoStartFocus       *bool   `json:"autoStartFocus"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	SoundsEnabled        *bool   `json:"soundsEnabled"`
	Theme                *string `json:"theme"`
}

// Apply overlays the patch on a copy of base and returns it. The result is
// not validated.
func (p SettingsPatch) Apply(base Settings) Settings {
	next := base
	if p.FocusMinutes != nil {
		next.FocusMinutes = *p.FocusMinutes
	}
	if p.ShortBreakMinutes != nil {
		next.ShortBreakMinutes = *p.ShortBreakMinutes
	}
	if p.LongBreakMinutes != nil {
		next.LongBreakMinutes = *p.LongBreakMinutes
	}
	if p.LongBreakInterval != nil {
		next.LongBreakInterval = *p.LongBreakInterval
	}
	if p.AutoStartBreaks != nil {
		next.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartFocus != nil {
		next.AutoStartFocus = *p.AutoStartFocus
	}
	if p.NotificationsEnabled != nil {
		next.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.SoundsEnabled != nil {
		next.SoundsEnabled = *p.SoundsEnabled
	}
	if p.Theme != nil {
		next.Theme = *p.Theme
	}
	return next
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeSystem
}
