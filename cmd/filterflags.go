package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/filter"
	"github.com/RifqiMT/working-hours-tracker/internal/model"
)

// addFilterFlags registers the shared filter dimensions on a command.
// A flag left unset places no constraint on that dimension.
func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("year", 0, "Filter: calendar year")
	f.Int("month", 0, "Filter: calendar month (1-12)")
	f.Int("day", 0, "Filter: day of month (1-31)")
	f.Int("week", 0, "Filter: ISO week number (1-53)")
	f.Int("weekday", 0, "Filter: day of week (0=Sunday .. 6=Saturday)")
	f.String("status", "", "Filter: day status (work, sick, holiday, vacation)")
	f.String("location", "", "Filter: location (WFO, WFH, Anywhere)")
	f.String("overtime", "", "Filter: overtime or no-overtime")
	f.String("description", "", "Filter: available or not-available")
	f.String("duration", "", "Filter: has-duration or no-duration")
	f.StringSlice("dates", nil, "Filter: explicit date set (YYYY-MM-DD, overrides year/month/day)")
	f.Bool("all", false, "Include entries dated after today")
}

// criteriaFromFlags builds filter criteria from the flags the user actually
// set. Invalid enum values are usage errors.
func criteriaFromFlags(cmd *cobra.Command) filter.Criteria {
	f := cmd.Flags()
	var c filter.Criteria

	if f.Changed("year") {
		v, _ := f.GetInt("year")
		c.Year = &v
	}
	if f.Changed("month") {
		v, _ := f.GetInt("month")
		m := time.Month(v)
		c.Month = &m
	}
	if f.Changed("day") {
		v, _ := f.GetInt("day")
		c.Day = &v
	}
	if f.Changed("week") {
		v, _ := f.GetInt("week")
		c.Week = &v
	}
	if f.Changed("weekday") {
		v, _ := f.GetInt("weekday")
		wd := time.Weekday(v)
		c.Weekday = &wd
	}
	if f.Changed("status") {
		v, _ := f.GetString("status")
		status := model.DayStatus(strings.ToLower(v))
		if !model.ValidStatus(status) {
			fmt.Fprintf(os.Stderr, "invalid --status value %q\n", v)
			os.Exit(1)
		}
		c.Status = &status
	}
	if f.Changed("location") {
		v, _ := f.GetString("location")
		loc := model.NormalizeLocation(v)
		if loc == "" {
			fmt.Fprintf(os.Stderr, "invalid --location value %q\n", v)
			os.Exit(1)
		}
		c.Location = &loc
	}
	if f.Changed("overtime") {
		v, _ := f.GetString("overtime")
		ot := filter.OvertimeFilter(v)
		if ot != filter.Overtime && ot != filter.NoOvertime {
			fmt.Fprintf(os.Stderr, "invalid --overtime value %q (want overtime or no-overtime)\n", v)
			os.Exit(1)
		}
		c.Overtime = &ot
	}
	if f.Changed("description") {
		v, _ := f.GetString("description")
		p := filter.PresenceFilter(v)
		if p != filter.DescriptionAvailable && p != filter.DescriptionNotAvailable {
			fmt.Fprintf(os.Stderr, "invalid --description value %q (want available or not-available)\n", v)
			os.Exit(1)
		}
		c.Description = &p
	}
	if f.Changed("duration") {
		v, _ := f.GetString("duration")
		d := filter.DurationFilter(v)
		if d != filter.HasDuration && d != filter.NoDuration {
			fmt.Fprintf(os.Stderr, "invalid --duration value %q (want has-duration or no-duration)\n", v)
			os.Exit(1)
		}
		c.Duration = &d
	}
	if f.Changed("dates") {
		c.SelectedDates, _ = f.GetStringSlice("dates")
	}
	c.IncludeFuture, _ = f.GetBool("all")
	return c
}
