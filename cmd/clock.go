package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

var (
	inDate string
	inTime string

	outTime        string
	outBreak       float64
	outBreakUnit   string
	outLocation    string
	outDescription string
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in: start a pending work day",
	Args:  cobra.NoArgs,
	RunE:  runIn,
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out: save the pending work day as an entry",
	Args:  cobra.NoArgs,
	RunE:  runOut,
}

func init() {
	inCmd.Flags().StringVar(&inDate, "date", "", "Date of the work day (YYYY-MM-DD, default today)")
	inCmd.Flags().StringVar(&inTime, "time", "", "Clock-in time (HH:mm, default now)")

	outCmd.Flags().StringVar(&outTime, "time", "", "Clock-out time (HH:mm, default now)")
	outCmd.Flags().Float64Var(&outBreak, "break", 0, "Break taken during the day")
	outCmd.Flags().StringVar(&outBreakUnit, "break-unit", "minutes", "Break unit: minutes or hours")
	outCmd.Flags().StringVar(&outLocation, "location", string(model.LocationWFO), "Work location: WFO, WFH, or Anywhere")
	outCmd.Flags().StringVar(&outDescription, "description", "", "Free-text description for the day")
}

func runIn(cmd *cobra.Command, args []string) error {
	now := time.Now()
	st, cfg := openStore()
	profile := activeProfile(cfg)

	date := inDate
	if date == "" {
		date = timecalc.Today(now)
	}
	if _, ok := timecalc.ParseDate(date); !ok {
		fmt.Fprintf(os.Stderr, "invalid --date value %q (want YYYY-MM-DD)\n", date)
		os.Exit(1)
	}
	clockIn := inTime
	if clockIn == "" {
		clockIn = timecalc.NowTimeOfDay(now)
	}
	if norm := timecalc.NormalizeTimeOfDay(clockIn); norm != "" {
		clockIn = norm
	} else {
		fmt.Fprintf(os.Stderr, "invalid --time value %q (want HH:mm)\n", clockIn)
		os.Exit(1)
	}

	// A new clock-in supersedes any stale pending state.
	if prev := st.LastClock(profile); prev != nil {
		fmt.Fprintf(os.Stderr, "Warning: replacing pending clock-in from %s %s\n", prev.Date, prev.Time)
	}
	if err := st.SetLastClock(profile, &model.LastClock{Action: "in", Date: date, Time: clockIn}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Clocked in at %s for %s. Run \"workhours out\" to save the entry.\n",
		clockIn, timecalc.FormatDateWithDay(date))
	return nil
}

func runOut(cmd *cobra.Command, args []string) error {
	now := time.Now()
	st, cfg := openStore()
	profile := activeProfile(cfg)

	last := st.LastClock(profile)
	if last == nil || last.Action != "in" {
		fmt.Fprintln(os.Stderr, "No pending clock-in. Use \"workhours in\" first or \"workhours add\" for a manual entry.")
		os.Exit(1)
	}

	clockOut := outTime
	if clockOut == "" {
		clockOut = timecalc.NowTimeOfDay(now)
	}
	if norm := timecalc.NormalizeTimeOfDay(clockOut); norm != "" {
		clockOut = norm
	} else {
		fmt.Fprintf(os.Stderr, "invalid --time value %q (want HH:mm)\n", clockOut)
		os.Exit(1)
	}

	entry := model.Entry{
		Date:         last.Date,
		ClockIn:      last.Time,
		ClockOut:     clockOut,
		BreakMinutes: timecalc.BreakToMinutes(outBreak, outBreakUnit),
		DayStatus:    model.StatusWork,
		Location:     model.NormalizeLocation(outLocation),
		Description:  outDescription,
		Timezone:     cfg.DefaultTimezone,
	}

	saved, err := st.UpsertEntry(profile, entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := st.SetLastClock(profile, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if dur, ok := timecalc.WorkingMinutes(saved.ClockIn, saved.ClockOut, saved.BreakMinutes); ok {
		overtime := timecalc.Overtime(dur, cfg.StandardWorkMinutes)
		fmt.Printf("Saved %s %s–%s: %s worked", saved.Date, saved.ClockIn, saved.ClockOut, timecalc.FormatDuration(dur))
		if overtime > 0 {
			fmt.Printf(", %s overtime", timecalc.FormatDuration(overtime))
		}
		fmt.Println(".")
	} else {
		fmt.Printf("Saved %s %s–%s (no computable duration).\n", saved.Date, saved.ClockIn, saved.ClockOut)
	}
	return nil
}
