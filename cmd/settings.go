package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	settingsName string
	settingsDark bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&settingsName, "name", "", "Display name used in greetings")
	settingsCmd.Flags().BoolVar(&settingsDark, "dark", false, "Dark mode on or off")
}

func runSettings(cmd *cobra.Command, args []string) error {
	s, _ := openStore()

	changed := false
	if cmd.Flags().Changed("name") {
		s.SetUserName(settingsName)
		changed = true
	}
	if cmd.Flags().Changed("dark") {
		s.SetDarkMode(settingsDark)
		changed = true
	}

	settings := s.Document().Settings
	if changed {
		fmt.Println("Settings updated.")
	}
	fmt.Printf("  Name: %s\n", settings.UserName)
	fmt.Printf("  Dark mode: %v\n", settings.DarkMode)
	return nil
}
