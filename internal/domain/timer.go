// Package domain holds the pomodoro timer state machine, free of any
// terminal or storage concerns.
package domain

import "time"

// Phase represents the current interval type.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns the status-bar display name for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseShortBreak:
		return "break"
	case PhaseLongBreak:
		return "long break"
	default:
		return "work"
	}
}

// Durations holds the configured interval lengths driving phase transitions.
type Durations struct {
	Work             time.Duration
	ShortBreak       time.Duration
	LongBreak        time.Duration
	CyclesBeforeLong int
}

// Timer is the countdown state machine. All methods take the current
// instant explicitly so the machine can be exercised without a real clock.
type Timer struct {
	Phase           Phase
	CyclesCompleted int
	Remaining       time.Duration
	Paused          bool

	lastTick time.Time
}

// New creates a timer at the start of a work phase, paused until the user
// explicitly resumes.
func New(d Durations, now time.Time) *Timer {
	return &Timer{
		Phase:     PhaseWork,
		Remaining: d.Work,
		Paused:    true,
		lastTick:  now,
	}
}

// Advance charges the wall-clock time elapsed since the last tick against
// the remaining countdown. When the countdown reaches zero the phase
// advances. Reports whether a phase transition occurred. Paused timers are
// left untouched; lastTick is refreshed on resume, not here, so a pause
// never accumulates phantom elapsed time.
func (t *Timer) Advance(d Durations, now time.Time) bool {
	if t.Paused {
		return false
	}

	elapsed := now.Sub(t.lastTick)
	t.lastTick = now
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed < t.Remaining {
		t.Remaining -= elapsed
		return false
	}

	t.Remaining = 0
	t.AdvancePhase(d)
	return true
}

// AdvancePhase moves to the next phase. A work phase that reaches the
// long-break threshold yields a long break and resets the cycle counter;
// otherwise it yields a short break and counts the cycle. Either break
// returns to work. The new phase starts paused with a full countdown.
func (t *Timer) AdvancePhase(d Durations) {
	switch t.Phase {
	case PhaseWork:
		if t.CyclesCompleted+1 >= d.CyclesBeforeLong {
			t.Phase = PhaseLongBreak
			t.Remaining = d.LongBreak
			t.CyclesCompleted = 0
		} else {
			t.Phase = PhaseShortBreak
			t.Remaining = d.ShortBreak
			t.CyclesCompleted++
		}
	default:
		t.Phase = PhaseWork
		t.Remaining = d.Work
	}
	t.Paused = true
}

// Reset returns the timer to a fresh paused work phase regardless of
// current state.
func (t *Timer) Reset(d Durations, now time.Time) {
	t.Phase = PhaseWork
	t.CyclesCompleted = 0
	t.Remaining = d.Work
	t.Paused = true
	t.lastTick = now
}

// TogglePause flips the paused flag. Resuming re-anchors lastTick to now
// so the paused interval is not counted as elapsed time.
func (t *Timer) TogglePause(now time.Time) {
	t.Paused = !t.Paused
	if !t.Paused {
		t.lastTick = now
	}
}

// Touch re-anchors the tick measurement without changing anything else.
// Used when returning from the config screen, where the timer is frozen.
func (t *Timer) Touch(now time.Time) {
	t.lastTick = now
}

// PhaseDuration returns the configured full length of the current phase.
func (t *Timer) PhaseDuration(d Durations) time.Duration {
	switch t.Phase {
	case PhaseShortBreak:
		return d.ShortBreak
	case PhaseLongBreak:
		return d.LongBreak
	default:
		return d.Work
	}
}

// Progress returns how much of the current phase has elapsed (0.0 to 1.0).
func (t *Timer) Progress(d Durations) float64 {
	total := t.PhaseDuration(d)
	if total <= 0 {
		return 0
	}
	p := 1 - float64(t.Remaining)/float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
