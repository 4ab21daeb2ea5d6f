package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayboard/internal/model"
	"dayboard/internal/plan"
)

var (
	listFilter string
	listDue    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "Show all, active or completed tasks")
	listCmd.Flags().StringVar(&listDue, "due", "", "Only tasks due on this date (YYYY-MM-DD)")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := plan.ParseFilter(listFilter)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s, _ := openStore()
	doc := s.Document()

	tasks := doc.Tasks
	if listDue != "" {
		tasks = plan.TasksDueOn(doc, listDue)
	}
	tasks = plan.SortForDisplay(plan.FilterByStatus(tasks, filter))

	printTasks(tasks)
	return nil
}

func printTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}
	for _, t := range tasks {
		fmt.Printf("%s  %s\n", shortID(t.ID), formatTask(t))
	}
}

// shortID returns the display prefix of a task id. Commands taking an id
// accept any unique prefix, so this is enough to act on a task.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTask(t model.Task) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	due := ""
	if t.DueDate != nil {
		due = ", due " + *t.DueDate
	}
	return fmt.Sprintf("%s %s (%s%s)", box, t.Title, t.Priority, due)
}
