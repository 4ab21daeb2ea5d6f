package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dayboard/internal/config"
	"dayboard/internal/storage"
	"dayboard/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dayboard",
	Short: "dayboard – a personal day planner in your terminal",
	Long: `dayboard is a single-binary, file-based day planner: tasks, an hourly
timetable, a weekly board and a pomodoro timer.
All state is stored as a human-readable JSON document in ~/.dayboard/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
}

// openStore loads the config and materializes the document store. Nothing
// here is fatal except an undeterminable data directory.
func openStore() (*store.Store, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	dir := cfg.DataDir
	if dir == "" {
		dir, err = storage.BaseDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	return store.Open(storage.New(dir)), cfg
}
