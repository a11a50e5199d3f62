package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/filter"
	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
	"github.com/RifqiMT/working-hours-tracker/internal/zone"
)

var listViewTimezone string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries matching the filters",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().StringVar(&listViewTimezone, "view-timezone", "", "Display clock times in this IANA timezone")
}

func runList(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	criteria := criteriaFromFlags(cmd)
	entries := filter.Apply(st.Entries(profile), criteria, timecalc.Today(time.Now()), cfg.StandardWorkMinutes)
	printEntries(entries, listViewTimezone, cfg.DefaultTimezone)
	return nil
}

// printEntries renders entries sorted by date, one line each, optionally
// projected into a view timezone.
func printEntries(entries []model.Entry, viewTZ, defaultTZ string) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	for _, e := range sorted {
		date := e.Date
		clockIn := orDash(e.ClockIn)
		clockOut := orDash(e.ClockOut)
		if p := zone.ProjectEntry(e, viewTZ, defaultTZ); p != nil {
			date = p.Date
			clockIn = p.ClockIn
			clockOut = p.ClockOut
			if p.ClockOutNextDay {
				clockOut += " (+1)"
			}
		}

		dur := ""
		if d, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes); ok {
			dur = fmt.Sprintf(" (%s)", timecalc.FormatDuration(d))
		}
		desc := ""
		if e.Description != "" {
			desc = "  " + e.Description
		}
		loc := ""
		if e.Location != "" {
			loc = "  " + string(e.Location)
		}

		fmt.Printf("%s  %s–%s  %-8s%s%s%s\n", date, clockIn, clockOut, e.Status(), loc, dur, desc)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
