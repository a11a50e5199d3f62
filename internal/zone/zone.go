// Package zone projects an entry's stored wall-clock times into a different
// display timezone.
package zone

import (
	"time"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// Projection is an entry's date and clock times converted to a view timezone.
// ClockOutNextDay flags a date rollover of the converted clock-out relative
// to the converted clock-in, for "+1 day" display.
type Projection struct {
	Date            string // YYYY-MM-DD of the converted clock-in
	ClockIn         string // HH:mm
	ClockOut        string // HH:mm
	ClockOutNextDay bool
}

// ProjectEntry converts e's date and clock times from the entry's own
// timezone (defaultTZ when unset) into viewTZ. It returns nil when no
// conversion applies (empty viewTZ, same zone, unknown zone, or a date that
// does not parse) and the caller displays the stored values as-is.
// A missing clock-in projects from 00:00 and a missing clock-out from 23:59,
// so all-day entries still land on the right calendar date.
func ProjectEntry(e model.Entry, viewTZ, defaultTZ string) *Projection {
	if viewTZ == "" || e.Date == "" {
		return nil
	}
	entryTZ := e.Timezone
	if entryTZ == "" {
		entryTZ = defaultTZ
	}
	if viewTZ == entryTZ {
		return nil
	}

	entryLoc, err := time.LoadLocation(entryTZ)
	if err != nil {
		return nil
	}
	viewLoc, err := time.LoadLocation(viewTZ)
	if err != nil {
		return nil
	}

	day, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return nil
	}

	clockIn := e.ClockIn
	if clockIn == "" {
		clockIn = "00:00"
	}
	clockOut := e.ClockOut
	if clockOut == "" {
		clockOut = "23:59"
	}
	inMin, ok := timecalc.ParseTimeOfDay(clockIn)
	if !ok {
		return nil
	}
	outMin, outOK := timecalc.ParseTimeOfDay(clockOut)

	// time.Date normalizes hour/minute overflow, so the importer's "24:mm"
	// clock-outs roll into the next calendar day before conversion.
	inView := wallClock(day, inMin, entryLoc).In(viewLoc)
	outView := inView
	if outOK {
		outView = wallClock(day, outMin, entryLoc).In(viewLoc)
	}

	return &Projection{
		Date:            inView.Format("2006-01-02"),
		ClockIn:         inView.Format("15:04"),
		ClockOut:        outView.Format("15:04"),
		ClockOutNextDay: inView.Format("2006-01-02") != outView.Format("2006-01-02"),
	}
}

func wallClock(day time.Time, minutesSinceMidnight int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		minutesSinceMidnight/60, minutesSinceMidnight%60, 0, 0, loc)
}
