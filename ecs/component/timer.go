package component

type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed seconds towards Duration. A repeating timer wraps and
// reports JustFinished on every tick that crosses the boundary; a one-shot
// timer stays finished.
type Timer struct {
	Duration float64
	Mode     TimerMode

	elapsed      float64
	finished     bool
	justFinished bool
}

func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) *Timer {
	t.justFinished = false
	if t.Mode == TimerOnce && t.finished {
		return t
	}
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return t
	}

	t.justFinished = true
	switch t.Mode {
	case TimerRepeating:
		if t.Duration > 0 {
			for t.elapsed >= t.Duration {
				t.elapsed -= t.Duration
			}
		} else {
			t.elapsed = 0
		}
		t.finished = true
	default:
		t.elapsed = t.Duration
		t.finished = true
	}
	return t
}

func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}
