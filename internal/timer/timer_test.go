package timer_test

import (
	"testing"

	"dayboard/internal/model"
	"dayboard/internal/storage"
	"dayboard/internal/store"
	"dayboard/internal/timer"
)

type countingNotifier struct {
	completions int
}

func (n *countingNotifier) TimerCompleted() { n.completions++ }

func newMachine(t *testing.T) (*timer.Machine, *countingNotifier, *store.Store) {
	t.Helper()
	s := store.Open(storage.New(t.TempDir()))
	n := &countingNotifier{}
	return timer.New(s, n), n, s
}

func TestFullCountdown(t *testing.T) {
	m, n, _ := newMachine(t)

	m.Start()
	if st := m.State(); !st.IsRunning || st.Seconds != model.FullTimerSeconds {
		t.Fatalf("state after start = %+v, want running full countdown", st)
	}

	var completions int
	for i := 0; i < model.FullTimerSeconds; i++ {
		if m.Tick() {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("completed ticks = %d, want exactly 1", completions)
	}
	if n.completions != 1 {
		t.Errorf("notifications = %d, want exactly 1", n.completions)
	}
	st := m.State()
	if st.IsRunning || st.Seconds != model.FullTimerSeconds {
		t.Errorf("final state = %+v, want idle full countdown", st)
	}
}

func TestTickWhileStopped(t *testing.T) {
	m, n, _ := newMachine(t)

	if m.Tick() {
		t.Error("tick on idle machine reported completion")
	}
	if st := m.State(); st.Seconds != model.FullTimerSeconds {
		t.Errorf("seconds = %d, want untouched %d", st.Seconds, model.FullTimerSeconds)
	}
	if n.completions != 0 {
		t.Errorf("notifications = %d, want 0", n.completions)
	}
}

func TestPauseRetainsSeconds(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Start()
	for i := 0; i < 10; i++ {
		m.Tick()
	}
	m.Pause()

	st := m.State()
	if st.IsRunning {
		t.Error("expected paused machine to not be running")
	}
	if want := model.FullTimerSeconds - 10; st.Seconds != want {
		t.Errorf("seconds = %d, want %d", st.Seconds, want)
	}

	// Paused machines do not tick.
	m.Tick()
	if got := m.State().Seconds; got != model.FullTimerSeconds-10 {
		t.Errorf("seconds after tick while paused = %d, want unchanged", got)
	}
}

func TestStartIsNoOpWhileRunning(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Start()
	m.Tick()
	m.Start()

	if got := m.State().Seconds; got != model.FullTimerSeconds-1 {
		t.Errorf("seconds = %d, start while running must not reset", got)
	}
}

func TestResumeAfterPause(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Start()
	for i := 0; i < 60; i++ {
		m.Tick()
	}
	m.Pause()
	m.Start()

	st := m.State()
	if !st.IsRunning {
		t.Error("expected machine running after resume")
	}
	if want := model.FullTimerSeconds - 60; st.Seconds != want {
		t.Errorf("seconds = %d, want resumed %d", st.Seconds, want)
	}
}

func TestReset(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Start()
	for i := 0; i < 5; i++ {
		m.Tick()
	}
	m.Reset()

	st := m.State()
	if st.IsRunning || st.Seconds != model.FullTimerSeconds {
		t.Errorf("state after reset = %+v, want idle full countdown", st)
	}
}

func TestCrashRecoveredRunningState(t *testing.T) {
	base := t.TempDir()

	s := store.Open(storage.New(base))
	m := timer.New(s, nil)
	m.Start()
	for i := 0; i < 120; i++ {
		m.Tick()
	}
	// Process dies here; no pause was persisted.

	reopened := store.Open(storage.New(base))
	m2 := timer.New(reopened, nil)

	st := m2.State()
	if !st.IsRunning {
		t.Fatal("expected persisted running state to survive restart")
	}
	if want := model.FullTimerSeconds - 120; st.Seconds != want {
		t.Errorf("seconds = %d, want %d (no wall-clock compensation)", st.Seconds, want)
	}

	// The recovered machine keeps counting from where it stopped.
	m2.Tick()
	if got := m2.State().Seconds; got != model.FullTimerSeconds-121 {
		t.Errorf("seconds after resumed tick = %d, want %d", got, model.FullTimerSeconds-121)
	}
}
