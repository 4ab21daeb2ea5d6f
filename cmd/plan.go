package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dayboard/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan <hour> [text...]",
	Short: "Plan an hour of the timetable (no text clears the slot)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	hour, err := strconv.Atoi(args[0])
	if err != nil || hour < plan.FirstHour || hour > plan.LastHour {
		fmt.Fprintf(os.Stderr, "Hour must be a number between %d and %d.\n", plan.FirstHour, plan.LastHour)
		os.Exit(1)
	}

	text := strings.Join(args[1:], " ")

	s, _ := openStore()
	s.SetTimetableEntry(hour, text)

	if strings.TrimSpace(text) == "" {
		fmt.Printf("Cleared %02d:00.\n", hour)
	} else {
		fmt.Printf("Planned %02d:00  %s\n", hour, text)
	}
	return nil
}
