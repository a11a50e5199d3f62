// Package filter selects entries matching a set of independent criteria.
// Every criterion is optional; an absent criterion places no constraint.
package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/period"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// OvertimeFilter narrows to days with or without overtime.
type OvertimeFilter string

const (
	Overtime   OvertimeFilter = "overtime"
	NoOvertime OvertimeFilter = "no-overtime"
)

// PresenceFilter narrows on whether a free-text description exists.
type PresenceFilter string

const (
	DescriptionAvailable    PresenceFilter = "available"
	DescriptionNotAvailable PresenceFilter = "not-available"
)

// DurationFilter narrows on whether a working duration is computable.
type DurationFilter string

const (
	HasDuration DurationFilter = "has-duration"
	NoDuration  DurationFilter = "no-duration"
)

// Criteria is a snapshot of filter predicates. Nil pointer fields mean
// "no constraint". A non-empty SelectedDates set overrides the Year, Month
// and Day criteria entirely; all other criteria still compose with it.
type Criteria struct {
	Year     *int
	Month    *time.Month
	Day      *int          // day of month, 1..31
	Week     *int          // ISO week number, 1..53
	Weekday  *time.Weekday // Sunday = 0
	Status   *model.DayStatus
	Location *model.Location

	Overtime    *OvertimeFilter
	Description *PresenceFilter
	Duration    *DurationFilter

	SelectedDates []string // explicit "YYYY-MM-DD" set

	// IncludeFuture keeps entries dated after today; by default they are
	// excluded regardless of the other criteria.
	IncludeFuture bool
}

// Apply filters entries against c. today is a "YYYY-MM-DD" date used for the
// future-entry cutoff; standard is the overtime threshold in minutes.
// Malformed entry dates never match a date-dependent predicate, and no
// predicate panics.
func Apply(entries []model.Entry, c Criteria, today string, standard int) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	selected := map[string]bool{}
	for _, d := range c.SelectedDates {
		selected[d] = true
	}
	for _, e := range entries {
		if !matches(e, c, selected, standard) {
			continue
		}
		if !c.IncludeFuture && e.Date > today {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matches(e model.Entry, c Criteria, selected map[string]bool, standard int) bool {
	if len(selected) > 0 {
		if !selected[e.Date] {
			return false
		}
	} else {
		if c.Year != nil && yearPrefix(e.Date) != *c.Year {
			return false
		}
		if c.Month != nil {
			t, ok := timecalc.ParseDate(e.Date)
			if !ok || t.Month() != *c.Month {
				return false
			}
		}
		if c.Day != nil && dayOfMonth(e.Date) != *c.Day {
			return false
		}
	}
	if c.Week != nil && period.ISOWeek(e.Date) != *c.Week {
		return false
	}
	if c.Weekday != nil {
		wd, ok := timecalc.Weekday(e.Date)
		if !ok || wd != *c.Weekday {
			return false
		}
	}
	if c.Status != nil && e.Status() != *c.Status {
		return false
	}
	if c.Location != nil && !locationMatches(e.Location, *c.Location) {
		return false
	}
	if c.Overtime != nil && !overtimeMatches(e, *c.Overtime, standard) {
		return false
	}
	if c.Description != nil {
		has := strings.TrimSpace(e.Description) != ""
		if *c.Description == DescriptionAvailable && !has {
			return false
		}
		if *c.Description == DescriptionNotAvailable && has {
			return false
		}
	}
	if c.Duration != nil {
		_, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes)
		if *c.Duration == HasDuration && !ok {
			return false
		}
		if *c.Duration == NoDuration && ok {
			return false
		}
	}
	return true
}

// yearPrefix reads the first four characters of a date as a year, matching
// entries by string prefix rather than full date validity.
func yearPrefix(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

func dayOfMonth(date string) int {
	if len(date) < 10 {
		return 0
	}
	d, err := strconv.Atoi(date[8:10])
	if err != nil {
		return 0
	}
	return d
}

// locationMatches honors the legacy "AW" alias: an entry stored as "AW"
// matches a query for Anywhere.
func locationMatches(stored model.Location, want model.Location) bool {
	if stored == want {
		return true
	}
	return stored == "AW" && want == model.LocationAnywhere
}

// overtimeMatches: only work days with a computable duration above the
// standard count as overtime; every other entry is a no-overtime day.
func overtimeMatches(e model.Entry, f OvertimeFilter, standard int) bool {
	isOvertime := false
	if e.Status() == model.StatusWork {
		if dur, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes); ok && dur > standard {
			isOvertime = true
		}
	}
	if f == Overtime {
		return isOvertime
	}
	return !isOvertime
}
