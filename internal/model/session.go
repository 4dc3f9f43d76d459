package model

const (
	ModeFocus      = "focus"
	ModeShortBreak = "short_break"
	ModeLongBreak  = "long_break"
)

// Session is the countdown state machine. It is mutated only by the four
// commands (Start, Pause, Reset, Complete) and by the one-second Tick.
type Session struct {
	RemainingMinutes    int    `json:"remainingMinutes"`
	RemainingSeconds    int    `json:"remainingSeconds"`
	Running             bool   `json:"running"`
	Mode                string `json:"mode"`
	CompletedFocusCount int    `json:"completedFocusCount"`
	CycleIndex          int    `json:"cycleIndex"`
}

// NewSession returns a pristine focus session for the given settings:
// full focus duration on the clock, not running, first cycle.
func NewSession(settings Settings) Session {
	return Session{
		RemainingMinutes: settings.FocusMinutes,
		RemainingSeconds: 0,
		Running:          false,
		Mode:             ModeFocus,
		CycleIndex:       1,
	}
}

// Start begins the countdown. Starting an already running session is a no-op.
func (s *Session) Start() {
	s.Running = true
}

// Pause freezes the countdown. Pausing a stopped session is a no-op.
func (s *Session) Pause() {
	s.Running = false
}

// Reset reloads the duration configured for the current mode and stops the
// countdown. Counters are untouched.
func (s *Session) Reset(settings Settings) {
	s.RemainingMinutes = settings.MinutesFor(s.Mode)
	s.RemainingSeconds = 0
	s.Running = false
}

// Tick advances a running countdown by one second. Seconds borrow from
// minutes on underflow. A tick that arrives with both at zero fires Complete
// instead of decrementing further; completed reports whether that happened
// and exited names the mode that finished.
func (s *Session) Tick(settings Settings) (completed bool, exited string) {
	if !s.Running {
		return false, ""
	}
	if s.RemainingMinutes == 0 && s.RemainingSeconds == 0 {
		return true, s.Complete(settings)
	}
	if s.RemainingSeconds == 0 {
		s.RemainingMinutes--
		s.RemainingSeconds = 59
		return false, ""
	}
	s.RemainingSeconds--
	return false, ""
}

// Complete finishes the current interval and enters the next mode.
// Finishing focus increments the completed counter; every
// longBreakInterval-th completion earns a long break, the rest a short one.
// Finishing either break returns to focus, and leaving a long break starts
// the next cycle. The new mode gets its full configured duration, and
// running is set from the matching auto-start flag.
func (s *Session) Complete(settings Settings) (exited string) {
	exited = s.Mode
	switch s.Mode {
	case ModeFocus:
		s.CompletedFocusCount++
		if s.CompletedFocusCount%settings.LongBreakInterval == 0 {
			s.Mode = ModeLongBreak
		} else {
			s.Mode = ModeShortBreak
		}
		s.Running = settings.AutoStartBreaks
	case ModeLongBreak:
		s.CycleIndex++
		s.Mode = ModeFocus
		s.Running = settings.AutoStartFocus
	default:
		s.Mode = ModeFocus
		s.Running = settings.AutoStartFocus
	}
	s.RemainingMinutes = settings.MinutesFor(s.Mode)
	s.RemainingSeconds = 0
	return exited
}

// RemainingTotalSeconds is the countdown flattened to seconds.
func (s *Session) RemainingTotalSeconds() int {
	return s.RemainingMinutes*60 + s.RemainingSeconds
}

// Sanitize repairs fields that came back out of range from persistence. An
// unknown mode becomes focus, a broken countdown reloads the mode's
// configured duration, and the counters are floored at their minimums.
func (s *Session) Sanitize(settings Settings) {
	if !validMode(s.Mode) {
		s.Mode = ModeFocus
	}
	if s.RemainingMinutes < 0 || s.RemainingMinutes > 60 || s.RemainingSeconds < 0 || s.RemainingSeconds > 59 {
		s.RemainingMinutes = settings.MinutesFor(s.Mode)
		s.RemainingSeconds = 0
	}
	if s.CompletedFocusCount < 0 {
		s.CompletedFocusCount = 0
	}
	if s.CycleIndex < 1 {
		s.CycleIndex = 1
	}
}

func validMode(mode string) bool {
	return mode == ModeFocus || mode == ModeShortBreak || mode == ModeLongBreak
}
