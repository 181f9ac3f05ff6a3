package replay

import "time"

// PlaybackState is the clock's lifecycle state.
type PlaybackState int

const (
	StateRunning PlaybackState = iota
	StatePaused
	StateStopped // terminal, no further transitions
)

func (s PlaybackState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	// DefaultSpeedFactor divides recorded gaps into real-time waits.
	DefaultSpeedFactor = 20.0
	// MinSpeedFactor and MaxSpeedFactor bound user speed adjustments.
	MinSpeedFactor = 0.1
	MaxSpeedFactor = 100.0
	// speedStep is the multiplicative step for speed-up/slow-down inputs.
	speedStep = 1.5

	// DefaultLongPauseThresholdMs marks recorded gaps worth compressing.
	DefaultLongPauseThresholdMs = 120_000
	// LongPauseHold is how long the long-pause banner stays on screen in
	// place of waiting out the recorded gap.
	LongPauseHold = 4 * time.Second
	// PausePollInterval bounds input latency while playback is paused.
	PausePollInterval = 100 * time.Millisecond
)

// Clock paces delivery of successive trace events: it scales recorded gaps
// by a speed factor, compresses abnormally long idle gaps into a fixed hold,
// and tracks the running/paused/stopped state machine.
type Clock struct {
	speed       float64
	longPauseMs int64
	state       PlaybackState
}

// NewClock returns a running clock. The speed factor is clamped into
// [MinSpeedFactor, MaxSpeedFactor]; a threshold <= 0 falls back to the
// default.
func NewClock(speedFactor float64, longPauseThresholdMs int64) *Clock {
	if longPauseThresholdMs <= 0 {
		longPauseThresholdMs = DefaultLongPauseThresholdMs
	}
	return &Clock{
		speed:       clampSpeed(speedFactor),
		longPauseMs: longPauseThresholdMs,
		state:       StateRunning,
	}
}

func clampSpeed(s float64) float64 {
	if s < MinSpeedFactor {
		return MinSpeedFactor
	}
	if s > MaxSpeedFactor {
		return MaxSpeedFactor
	}
	return s
}

// Speed returns the current speed factor.
func (c *Clock) Speed() float64 { return c.speed }

// SpeedUp raises the speed factor one step and returns the new value.
func (c *Clock) SpeedUp() float64 {
	c.speed = clampSpeed(c.speed * speedStep)
	return c.speed
}

// SpeedDown lowers the speed factor one step and returns the new value.
func (c *Clock) SpeedDown() float64 {
	c.speed = clampSpeed(c.speed / speedStep)
	return c.speed
}

// NextWait returns the real-time delay to observe between an event at
// prevMs and the next one at nextMs. Out-of-order timestamps floor to a
// zero gap. Gaps beyond the long-pause threshold return the fixed
// LongPauseHold with longPause=true instead of the scaled delta; these
// represent the author googling or fetching coffee, not activity worth
// waiting out.
func (c *Clock) NextWait(prevMs, nextMs int64) (wait time.Duration, longPause bool) {
	delta := nextMs - prevMs
	if delta < 0 {
		delta = 0
	}
	if delta > c.longPauseMs {
		return LongPauseHold, true
	}
	return time.Duration(float64(delta) / c.speed * float64(time.Millisecond)), false
}

// State returns the current playback state.
func (c *Clock) State() PlaybackState { return c.state }

// TogglePause flips between Running and Paused and returns the new state.
// A stopped clock stays stopped.
func (c *Clock) TogglePause() PlaybackState {
	switch c.state {
	case StateRunning:
		c.state = StatePaused
	case StatePaused:
		c.state = StateRunning
	}
	return c.state
}

// Stop moves the clock into its terminal state. Triggered by a quit request
// or by stream exhaustion.
func (c *Clock) Stop() {
	c.state = StateStopped
}
