package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dayboard/internal/plan"
)

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly board, Monday to Sunday",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Show the week containing this date (YYYY-MM-DD)")
}

func runWeek(cmd *cobra.Command, args []string) error {
	now := time.Now()

	ref := now
	if weekDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", weekDate, now.Location())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid date %q, want YYYY-MM-DD.\n", weekDate)
			os.Exit(1)
		}
		ref = parsed
	}

	s, _ := openStore()
	doc := s.Document()

	today := plan.DateOf(now)
	for _, col := range plan.WeeklyBoard(doc, ref) {
		day, _ := time.Parse("2006-01-02", col.Date)
		header := fmt.Sprintf("%s %s", day.Weekday().String()[:3], col.Date)
		if col.Date == today {
			header += "  (today)"
		}
		fmt.Println(header)

		if len(col.Tasks) == 0 {
			fmt.Println("  –")
			continue
		}
		for _, t := range col.Tasks {
			fmt.Printf("  %s  %s\n", shortID(t.ID), formatTask(t))
		}
	}
	return nil
}
