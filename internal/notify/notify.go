package notify

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
)

// Terminal announces timer completion on the terminal: a bell plus a message,
// and optionally a user-configured shell command (fire and forget; failures
// are logged, never surfaced).
type Terminal struct {
	// Out defaults to stdout.
	Out io.Writer
	// Command, when non-empty, is run via the shell on completion.
	Command string
}

func (t *Terminal) TimerCompleted() {
	out := t.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprint(out, "\a")
	fmt.Fprintln(out, "Pomodoro complete! Time for a break.")

	if t.Command != "" {
		if err := exec.Command("sh", "-c", t.Command).Run(); err != nil {
			log.Printf("dayboard: notify command failed: %v", err)
		}
	}
}
