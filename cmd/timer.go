package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dayboard/internal/model"
	"dayboard/internal/notify"
	"dayboard/internal/timer"
)

var timerCmd = &cobra.Command{
	Use:   "timer [start|pause|reset|status]",
	Short: "Control the 25-minute pomodoro timer",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTimer,
}

func runTimer(cmd *cobra.Command, args []string) error {
	action := "status"
	if len(args) > 0 {
		action = args[0]
	}

	s, cfg := openStore()
	mach := timer.New(s, &notify.Terminal{Command: cfg.NotifyCommand})

	switch action {
	case "start":
		runCountdown(mach)
	case "pause":
		if !mach.State().IsRunning {
			fmt.Fprintln(os.Stderr, "No running timer to pause.")
			os.Exit(1)
		}
		mach.Pause()
		fmt.Printf("Paused at %s.\n", formatCountdown(mach.State().Seconds))
	case "reset":
		mach.Reset()
		fmt.Printf("Timer reset to %s.\n", formatCountdown(model.FullTimerSeconds))
	case "status":
		printTimerStatus(mach.State())
	default:
		fmt.Fprintf(os.Stderr, "Unknown timer action %q (want start, pause, reset or status).\n", action)
		os.Exit(1)
	}
	return nil
}

// runCountdown drives the timer in the foreground until it completes or the
// user interrupts. A previously interrupted run (the document still says
// isRunning) resumes from its saved second count.
func runCountdown(mach *timer.Machine) {
	if st := mach.State(); st.IsRunning {
		fmt.Printf("Resuming interrupted session at %s.\n", formatCountdown(st.Seconds))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mach.Start()
	fmt.Printf("Timer running, %s remaining. Press Ctrl-C to pause.\n", formatCountdown(mach.State().Seconds))

	completed := mach.Run(ctx, func(st model.TimerState) {
		fmt.Printf("\r%s ", formatCountdown(st.Seconds))
	})
	fmt.Println()

	if !completed {
		fmt.Printf("Paused at %s. Run 'dayboard timer start' to resume.\n", formatCountdown(mach.State().Seconds))
	}
}

func printTimerStatus(st model.TimerState) {
	switch {
	case st.IsRunning:
		// Only seen when a run was interrupted without a clean pause.
		fmt.Printf("Interrupted at %s. Run 'dayboard timer start' to resume.\n", formatCountdown(st.Seconds))
	case st.Seconds == model.FullTimerSeconds:
		fmt.Printf("Idle, %s on the clock.\n", formatCountdown(st.Seconds))
	default:
		fmt.Printf("Paused at %s.\n", formatCountdown(st.Seconds))
	}
}

// formatCountdown formats remaining seconds as MM:SS.
func formatCountdown(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
