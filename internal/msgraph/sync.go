package msgraph

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/RifqiMT/working-hours-tracker/internal/importer"
	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// SyncResult holds counters for a sync operation.
type SyncResult struct {
	Imported int
	Updated  int
	Skipped  int
	Errors   int
}

// SyncOptions configures a sync run.
type SyncOptions struct {
	Timezone string         // IANA zone events were requested in
	Location model.Location // location stamped on synced work days
	DryRun   bool
}

// parseGraphTime parses a Graph API dateTime string in the given timezone.
// Graph returns times like "2026-02-27T09:00:00.0000000" without a zone suffix
// when a Prefer: outlook.timezone header is set.
func parseGraphTime(dt, tz string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.ParseInLocation(layout, dt, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}

// shouldSkip returns true if the event must not contribute to a work day.
func shouldSkip(event CalendarEvent) bool {
	if event.IsCancelled || event.IsAllDay {
		return true
	}
	if event.Sensitivity == "private" {
		return true
	}
	if event.ShowAs == "free" {
		return true
	}
	if event.Start.DateTime == "" || event.End.DateTime == "" {
		return true
	}
	return false
}

// span is one event's slot within a calendar day.
type span struct {
	start, end time.Time
	subject    string
}

// BuildDayEntries condenses calendar events into one work entry per calendar
// date: clock-in is the earliest event start, clock-out the latest end, and
// the break is the uncovered time between events. Subjects are joined into
// the description. Skipped (cancelled, all-day, private, free) events are
// counted in result.Skipped; unparseable ones in result.Errors.
func BuildDayEntries(events []CalendarEvent, opts SyncOptions) ([]model.Entry, SyncResult) {
	var result SyncResult
	byDate := map[string][]span{}
	for _, event := range events {
		if shouldSkip(event) {
			result.Skipped++
			continue
		}
		start, err := parseGraphTime(event.Start.DateTime, opts.Timezone)
		if err != nil {
			fmt.Printf("  ! Error parsing event %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}
		end, err := parseGraphTime(event.End.DateTime, opts.Timezone)
		if err != nil {
			fmt.Printf("  ! Error parsing event %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}
		date := start.Format("2006-01-02")
		byDate[date] = append(byDate[date], span{start: start, end: end, subject: event.Subject})
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	entries := make([]model.Entry, 0, len(dates))
	for _, date := range dates {
		spans := byDate[date]
		sort.Slice(spans, func(i, j int) bool { return spans[i].start.Before(spans[j].start) })

		clockIn := spans[0].start
		clockOut := spans[0].end
		gap := time.Duration(0)
		covered := spans[0].end
		var subjects []string
		for _, sp := range spans {
			if sp.subject != "" {
				subjects = append(subjects, sp.subject)
			}
			if sp.start.After(covered) {
				gap += sp.start.Sub(covered)
			}
			if sp.end.After(covered) {
				covered = sp.end
			}
			if sp.end.After(clockOut) {
				clockOut = sp.end
			}
		}

		in := clockIn.Format("15:04")
		// An event running past midnight ends on the next calendar date;
		// the importer's "24:mm" notation keeps the span on the start day.
		out := importer.NormalizeClockOut(in, clockOut.Format("15:04"))

		entries = append(entries, model.Entry{
			Date:         date,
			ClockIn:      in,
			ClockOut:     out,
			BreakMinutes: int(gap.Minutes()),
			DayStatus:    model.StatusWork,
			Location:     opts.Location,
			Description:  strings.Join(subjects, "; "),
			Timezone:     opts.Timezone,
		})
	}
	return entries, result
}

// SyncEntries merges synced day entries into a profile's existing list and
// fills in the imported/updated counters. It returns the merged list; the
// caller persists it unless opts.DryRun is set.
func SyncEntries(existing, incoming []model.Entry, opts SyncOptions, result *SyncResult) []model.Entry {
	known := map[string]bool{}
	for _, e := range existing {
		known[e.Key()] = true
	}
	for _, e := range incoming {
		dur := "?"
		if d, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes); ok {
			dur = timecalc.FormatDuration(d)
		}
		if known[e.Key()] {
			result.Updated++
			fmt.Printf("  ↑ Updated:  %s %s–%s (%s)\n", e.Date, e.ClockIn, e.ClockOut, dur)
		} else {
			result.Imported++
			fmt.Printf("  ✓ Imported: %s %s–%s (%s)\n", e.Date, e.ClockIn, e.ClockOut, dur)
		}
	}
	return importer.Merge(existing, incoming)
}
