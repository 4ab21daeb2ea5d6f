package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dayboard/internal/plan"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's tasks, progress and timetable",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func runToday(cmd *cobra.Command, args []string) error {
	now := time.Now()

	s, _ := openStore()
	doc := s.Document()

	fmt.Printf("%s, %s!\n", greeting(now), doc.Settings.UserName)

	date := plan.DateOf(now)
	p := plan.DailyProgress(doc, date)
	fmt.Printf("\n%s  %d/%d done (%d%%)  %s\n", date, p.Completed, p.Total, p.Percentage, progressBar(p.Percentage, 20))

	tasks := plan.SortForDisplay(plan.TasksDueOn(doc, date))
	if len(tasks) == 0 {
		fmt.Println("Nothing due today.")
	} else {
		for _, t := range tasks {
			fmt.Printf("%s  %s\n", shortID(t.ID), formatTask(t))
		}
	}

	fmt.Println("\nTimetable:")
	for _, b := range plan.HourlyBlocks(doc, now) {
		marker := "  "
		if b.Current {
			marker = "> "
		}
		fmt.Printf("%s%02d:00  %s\n", marker, b.Hour, b.Text)
	}
	return nil
}

// greeting picks a salutation for the current wall-clock hour.
func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// progressBar renders percentage as a fixed-width ASCII bar.
func progressBar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
