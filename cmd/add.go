package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dayboard/internal/model"
)

var (
	addPriority string
	addDue      string
)

var addCmd = &cobra.Command{
	Use:   "add <title...>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addPriority, "priority", "medium", "Priority: high, medium or low")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addDue != "" {
		if _, err := time.Parse("2006-01-02", addDue); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid due date %q, want YYYY-MM-DD.\n", addDue)
			os.Exit(1)
		}
	}

	s, _ := openStore()
	task, ok := s.AddTask(strings.Join(args, " "), model.ParsePriority(addPriority), addDue)
	if !ok {
		fmt.Fprintln(os.Stderr, "Nothing to add: the title is empty.")
		os.Exit(1)
	}

	fmt.Printf("Added %s  %s\n", shortID(task.ID), formatTask(task))
	return nil
}
