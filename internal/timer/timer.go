package timer

import (
	"context"
	"time"

	"dayboard/internal/model"
	"dayboard/internal/store"
)

// Notifier receives the timer-completed signal, exactly once per finished
// countdown.
type Notifier interface {
	TimerCompleted()
}

// Machine is the pomodoro countdown state machine. It has three observable
// states: idle (not running, full countdown), paused (not running, partial
// countdown) and running. Every transition and every tick is persisted
// through the store, so an interrupted run can be resumed from the saved
// second count.
type Machine struct {
	store    *store.Store
	notifier Notifier
}

// New returns a machine over the store's persisted timer state. notifier may
// be nil.
func New(s *store.Store, notifier Notifier) *Machine {
	return &Machine{store: s, notifier: notifier}
}

// State returns the current timer state.
func (m *Machine) State() model.TimerState {
	return m.store.Document().Timer
}

// Start arms the countdown. No-op when already running.
func (m *Machine) Start() {
	m.store.UpdateTimer(func(t *model.TimerState) {
		if t.IsRunning {
			return
		}
		if t.Seconds <= 0 {
			t.Seconds = model.FullTimerSeconds
		}
		t.IsRunning = true
	})
}

// Pause stops the countdown, keeping the remaining seconds.
func (m *Machine) Pause() {
	m.store.UpdateTimer(func(t *model.TimerState) {
		t.IsRunning = false
	})
}

// Reset returns the timer to a full idle countdown from any state.
func (m *Machine) Reset() {
	m.store.UpdateTimer(func(t *model.TimerState) {
		*t = model.DefaultTimer()
	})
}

// Tick consumes one second of a running countdown and reports whether the
// countdown completed on this tick. Completion resets the timer in the same
// persisted step, so a zero-second running state never reaches disk, and
// notifies once. Ticking a stopped machine does nothing.
func (m *Machine) Tick() (completed bool) {
	m.store.UpdateTimer(func(t *model.TimerState) {
		if !t.IsRunning || t.Seconds <= 0 {
			return
		}
		t.Seconds--
		if t.Seconds == 0 {
			*t = model.DefaultTimer()
			completed = true
		}
	})
	if completed && m.notifier != nil {
		m.notifier.TimerCompleted()
	}
	return completed
}

// Run starts (or resumes) the countdown and drives it at one tick per second
// until it completes or ctx is cancelled. Cancellation pauses the timer with
// its remaining seconds; ticks are never interrupted mid-step. onTick, if
// non-nil, observes the state after each tick.
func (m *Machine) Run(ctx context.Context, onTick func(model.TimerState)) (completed bool) {
	m.Start()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Pause()
			return false
		case <-ticker.C:
			done := m.Tick()
			if onTick != nil {
				onTick(m.State())
			}
			if done {
				return true
			}
		}
	}
}
