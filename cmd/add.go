package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

var (
	addDate        string
	addClockIn     string
	addClockOut    string
	addBreak       float64
	addBreakUnit   string
	addStatus      string
	addLocation    string
	addDescription string
	addTimezone    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a day entry manually",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Date of the entry (YYYY-MM-DD, required)")
	addCmd.Flags().StringVar(&addClockIn, "in", "", "Clock-in time (HH:mm)")
	addCmd.Flags().StringVar(&addClockOut, "out", "", "Clock-out time (HH:mm)")
	addCmd.Flags().Float64Var(&addBreak, "break", 0, "Break taken during the day")
	addCmd.Flags().StringVar(&addBreakUnit, "break-unit", "minutes", "Break unit: minutes or hours")
	addCmd.Flags().StringVar(&addStatus, "status", string(model.StatusWork), "Day status: work, sick, holiday, or vacation")
	addCmd.Flags().StringVar(&addLocation, "location", string(model.LocationWFO), "Work location: WFO, WFH, or Anywhere")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Free-text description")
	addCmd.Flags().StringVar(&addTimezone, "timezone", "", "IANA timezone of the clock times (default from config)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	// The date is the one field the user must supply.
	if addDate == "" {
		fmt.Fprintln(os.Stderr, "Please select a date (--date YYYY-MM-DD).")
		os.Exit(1)
	}
	if _, ok := timecalc.ParseDate(addDate); !ok {
		fmt.Fprintf(os.Stderr, "invalid --date value %q (want YYYY-MM-DD)\n", addDate)
		os.Exit(1)
	}

	status := model.DayStatus(addStatus)
	if !model.ValidStatus(status) {
		status = model.StatusWork
	}

	entry := model.Entry{
		Date:         addDate,
		ClockIn:      timecalc.NormalizeTimeOfDay(addClockIn),
		ClockOut:     timecalc.NormalizeTimeOfDay(addClockOut),
		BreakMinutes: timecalc.BreakToMinutes(addBreak, addBreakUnit),
		DayStatus:    status,
		Location:     model.NormalizeLocation(addLocation),
		Description:  addDescription,
		Timezone:     addTimezone,
	}
	if entry.Timezone == "" {
		entry.Timezone = cfg.DefaultTimezone
	}

	// Non-work days carry a fixed standard span so they count consistently.
	if status != model.StatusWork {
		entry.ClockIn = model.DefaultNonWork.ClockIn
		entry.ClockOut = model.DefaultNonWork.ClockOut
		entry.BreakMinutes = model.DefaultNonWork.BreakMinutes
		entry.Location = model.DefaultNonWork.Location
	}

	saved, err := st.UpsertEntry(profile, entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Saved %s entry for %s", saved.Status(), timecalc.FormatDateWithDay(saved.Date))
	if dur, ok := timecalc.WorkingMinutes(saved.ClockIn, saved.ClockOut, saved.BreakMinutes); ok {
		fmt.Printf(" (%s)", timecalc.FormatDuration(dur))
	}
	fmt.Println(".")
	return nil
}
