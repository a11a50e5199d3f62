package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/importer"
	"github.com/RifqiMT/working-hours-tracker/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a CSV or JSON file and merge them in",
	Long: `Import entries from a CSV or JSON export and merge them into the active
profile. Entries are deduplicated by (date, clock-in): incoming data wins on
conflict, but a replaced entry keeps its internal id. Invalid rows are
reported as warnings; the remaining rows still import.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	st, cfg := openStore()
	profile := activeProfile(cfg)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var incoming []model.Entry
	var warnings []importer.RowError
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		incoming, warnings, err = importer.ParseJSON(data, cfg.DefaultTimezone)
	case ".csv":
		incoming, warnings, err = importer.ParseCSV(strings.NewReader(string(data)), cfg.DefaultTimezone)
	default:
		fmt.Fprintf(os.Stderr, "unsupported file type %q (want .csv or .json)\n", filepath.Ext(path))
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	merged := importer.Merge(st.Entries(profile), incoming)
	if err := st.SetEntries(profile, merged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Imported %d entries into profile %q.\n", len(incoming), profile)
	if len(warnings) > 0 {
		fmt.Printf("%d rows skipped:\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  - %s\n", w.Error())
		}
	}
	return nil
}
