package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole document to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, yaml")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, _ := openStore()
	doc := s.Document()

	switch exportFormat {
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding YAML:", err)
			os.Exit(2)
		}
		fmt.Print(string(data))
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q (want json or yaml).\n", exportFormat)
		os.Exit(1)
	}
	return nil
}
