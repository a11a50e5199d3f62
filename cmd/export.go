package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/export"
	"github.com/RifqiMT/working-hours-tracker/internal/filter"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered entries as CSV or JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	criteria := criteriaFromFlags(cmd)
	entries := filter.Apply(st.Entries(profile), criteria, timecalc.Today(time.Now()), cfg.StandardWorkMinutes)

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(struct {
			Profile string      `json:"profile"`
			Entries interface{} `json:"entries"`
		}{Profile: profile, Entries: entries}); err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
	default: // csv
		if err := export.WriteCSV(out, entries); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	if exportOut != "" {
		fmt.Printf("Exported %d entries to %s.\n", len(entries), exportOut)
	}
	return nil
}
