package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/period"
	"github.com/RifqiMT/working-hours-tracker/internal/stats"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

var reportBasis string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show working hours and overtime aggregated by period",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBasis, "basis", string(period.Monthly), "Aggregation basis: weekly, monthly, quarterly, annual")
}

func runReport(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	g, err := period.ParseGranularity(reportBasis)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	buckets := stats.AggregateByPeriod(st.Entries(profile), g, cfg.StandardWorkMinutes)
	if len(buckets) == 0 {
		fmt.Println("No work entries to aggregate.")
		return nil
	}

	fmt.Printf("%-12s%-12s%-12s%-12s%-12s%s\n", "Period", "Work", "Overtime", "Avg work", "Avg OT", "Days")
	fmt.Println("------------------------------------------------------------------")
	labels := make([]string, len(buckets))
	work := make([]int, len(buckets))
	overtime := make([]int, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		work[i] = b.TotalWorkMinutes
		overtime[i] = b.TotalOvertimeMinutes
		fmt.Printf("%-12s%-12s%-12s%-12s%-12s%d\n",
			b.Label,
			timecalc.FormatDuration(b.TotalWorkMinutes),
			timecalc.FormatDuration(b.TotalOvertimeMinutes),
			timecalc.FormatDuration(b.AvgWorkMinutes),
			timecalc.FormatDuration(b.AvgOvertimeMinutes),
			b.WorkDays,
		)
	}
	fmt.Println("------------------------------------------------------------------")

	workEx := stats.MinMaxMedian(work, labels)
	otEx := stats.MinMaxMedian(overtime, labels)
	fmt.Printf("Work:     min %s (%s), max %s (%s), median %s (%s)\n",
		timecalc.FormatDuration(int(workEx.MinValue)), workEx.MinPeriod,
		timecalc.FormatDuration(int(workEx.MaxValue)), workEx.MaxPeriod,
		timecalc.FormatDuration(int(workEx.MedianValue)), workEx.MedianPeriod)
	fmt.Printf("Overtime: min %s (%s), max %s (%s), median %s (%s)\n",
		timecalc.FormatDuration(int(otEx.MinValue)), otEx.MinPeriod,
		timecalc.FormatDuration(int(otEx.MaxValue)), otEx.MaxPeriod,
		timecalc.FormatDuration(int(otEx.MedianValue)), otEx.MedianPeriod)
	return nil
}
