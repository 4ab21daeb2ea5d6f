package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dayboard/internal/model"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task between done and open",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	s, _ := openStore()

	task, err := findTask(s.Document(), args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s.ToggleTask(task.ID)
	state := "done"
	if task.Completed {
		state = "open again"
	}
	fmt.Printf("Marked %q %s.\n", task.Title, state)
	return nil
}

// findTask resolves a full task id or a unique id prefix.
func findTask(doc model.Document, idOrPrefix string) (model.Task, error) {
	var matches []model.Task
	for _, t := range doc.Tasks {
		if t.ID == idOrPrefix {
			return t, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Task{}, fmt.Errorf("no task matches %q", idOrPrefix)
	default:
		return model.Task{}, fmt.Errorf("%q is ambiguous: %d tasks match", idOrPrefix, len(matches))
	}
}
