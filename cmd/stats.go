package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/filter"
	"github.com/RifqiMT/working-hours-tracker/internal/stats"
	"github.com/RifqiMT/working-hours-tracker/internal/store"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics for the filtered entries",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	addFilterFlags(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	criteria := criteriaFromFlags(cmd)
	entries := filter.Apply(st.Entries(profile), criteria, timecalc.Today(time.Now()), cfg.StandardWorkMinutes)
	summary := stats.ComputeSummary(entries, cfg.StandardWorkMinutes)

	fmt.Printf("Profile: %s\n", profile)
	if role := st.Role(profile); role != "" {
		fmt.Printf("Role: %s\n", role)
	}
	fmt.Println("--------------------------------")
	fmt.Printf("%-22s%s\n", "Total working hours", timecalc.FormatDuration(summary.TotalWorkMinutes))
	fmt.Printf("%-22s%s\n", "Total overtime", timecalc.FormatDuration(summary.TotalOvertimeMinutes))
	fmt.Printf("%-22s%s\n", "Avg working hours", timecalc.FormatDuration(summary.AvgWorkMinutes))
	fmt.Printf("%-22s%s\n", "Avg overtime", timecalc.FormatDuration(summary.AvgOvertimeMinutes))
	fmt.Println("--------------------------------")
	fmt.Printf("%-22s%d\n", "Work days", summary.WorkDays)
	fmt.Printf("%-22s%s\n", "Vacation", vacationLine(summary.VacationDays, criteria, st, profile))
	fmt.Printf("%-22s%d\n", "Holidays", summary.HolidayDays)
	fmt.Printf("%-22s%d\n", "Sick days", summary.SickDays)
	return nil
}

// vacationLine shows "used / allowance" when a year filter is active and an
// allowance is configured for it, otherwise just the used count.
func vacationLine(used int, criteria filter.Criteria, st *store.Store, profile string) string {
	if criteria.Year != nil {
		if allowance, ok := st.VacationAllowance(profile, strconv.Itoa(*criteria.Year)); ok {
			return fmt.Sprintf("%d / %d", used, allowance)
		}
	}
	return strconv.Itoa(used)
}
