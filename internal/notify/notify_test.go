package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"dayboard/internal/notify"
)

func TestTerminalBellAndMessage(t *testing.T) {
	var buf bytes.Buffer
	n := &notify.Terminal{Out: &buf}

	n.TimerCompleted()

	got := buf.String()
	if !strings.HasPrefix(got, "\a") {
		t.Error("expected output to start with a terminal bell")
	}
	if !strings.Contains(got, "Pomodoro complete") {
		t.Errorf("output = %q, want completion message", got)
	}
}
