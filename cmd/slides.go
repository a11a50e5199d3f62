package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/export"
	"github.com/RifqiMT/working-hours-tracker/internal/period"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

var (
	slidesTrends bool
	slidesBasis  string
	slidesJSON   bool
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Build the per-year highlights summary (slide-deck shape)",
	Args:  cobra.NoArgs,
	RunE:  runSlides,
}

func init() {
	slidesCmd.Flags().BoolVar(&slidesTrends, "trends", false, "Include trend series with min/max/median")
	slidesCmd.Flags().StringVar(&slidesBasis, "basis", string(period.Monthly), "Trend basis: weekly, monthly, quarterly, annual")
	slidesCmd.Flags().BoolVar(&slidesJSON, "json", false, "Emit the deck as JSON instead of text")
}

func runSlides(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	g, err := period.ParseGranularity(slidesBasis)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	deck := export.BuildDeck(profile, st.Role(profile), st.Entries(profile), cfg.StandardWorkMinutes, slidesTrends, g)

	if slidesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(deck); err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		return nil
	}

	fmt.Printf("Key highlights – %s", deck.Profile)
	if deck.Role != "" {
		fmt.Printf(" (%s)", deck.Role)
	}
	fmt.Println()
	for _, y := range deck.Years {
		fmt.Println()
		fmt.Printf("%s\n", y.Year)
		fmt.Println("--------------------------------")
		fmt.Printf("  Working days: %d (WFO %d, WFH %d)\n", y.Days.WorkDays, y.Days.WorkWFO, y.Days.WorkWFH)
		fmt.Printf("  Vacation %d · Sick %d · Holidays %d\n", y.Days.VacationDays, y.Days.SickDays, y.Days.HolidayDays)
		fmt.Printf("  Working hours: %s total, %s avg/day\n", y.TotalWork, y.AvgWork)
		fmt.Printf("  Overtime:      %s total, %s avg/day\n", y.TotalOvertime, y.AvgOvertime)
	}
	for _, t := range deck.Trends {
		fmt.Println()
		fmt.Printf("%s (%s)\n", t.Name, slidesBasis)
		fmt.Printf("  min %s (%s), max %s (%s), median %s (%s)\n",
			timecalc.FormatDuration(int(t.Extremes.MinValue)), t.Extremes.MinPeriod,
			timecalc.FormatDuration(int(t.Extremes.MaxValue)), t.Extremes.MaxPeriod,
			timecalc.FormatDuration(int(t.Extremes.MedianValue)), t.Extremes.MedianPeriod)
	}
	return nil
}
