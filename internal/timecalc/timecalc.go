// Package timecalc implements the time-of-day and duration arithmetic the
// rest of the tracker is built on. Times of day are "HH:mm" strings measured
// in minutes since midnight; durations are plain minute counts.
package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StandardWorkMinutesPerDay is the baseline above which a work day counts as
// overtime, unless overridden in the config.
const StandardWorkMinutesPerDay = 8 * 60

// ParseTimeOfDay parses "H:mm" or "HH:mm" into minutes since midnight.
// The minute part may be omitted ("9" parses as 09:00). Hours of 24 and above
// are accepted so the "24:mm" after-midnight notation written by the importer
// still yields a usable span. ok is false for empty or unparseable input.
func ParseTimeOfDay(s string) (minutes int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 3)
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 {
		return 0, false
	}
	m := 0
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && v >= 0 {
			m = v
		}
	}
	return h*60 + m, true
}

// NormalizeTimeOfDay reformats a parseable time as zero-padded "HH:mm",
// clamping to the 00:00–23:59 range. Unparseable input yields "".
func NormalizeTimeOfDay(s string) string {
	min, ok := ParseTimeOfDay(s)
	if !ok {
		return ""
	}
	h := min / 60
	m := min % 60
	if h > 23 {
		h = 23
	}
	if m > 59 {
		m = 59
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// WorkingMinutes computes the worked duration of a day:
// clock out − clock in − break, floored at zero.
// ok is false when either time is unparseable or the raw span is negative;
// overnight rollover is not assumed at this layer (the importer rewrites
// after-midnight clock-outs into "24:mm" before entries reach here).
func WorkingMinutes(clockIn, clockOut string, breakMinutes int) (minutes int, ok bool) {
	in, inOK := ParseTimeOfDay(clockIn)
	out, outOK := ParseTimeOfDay(clockOut)
	if !inOK || !outOK {
		return 0, false
	}
	span := out - in
	if span < 0 {
		return 0, false
	}
	if breakMinutes < 0 {
		breakMinutes = 0
	}
	worked := span - breakMinutes
	if worked < 0 {
		worked = 0
	}
	return worked, true
}

// Overtime returns the minutes worked beyond the standard day, never negative.
func Overtime(workedMinutes, standard int) int {
	ot := workedMinutes - standard
	if ot < 0 {
		return 0
	}
	return ot
}

// FormatDuration renders minutes as "Xh Ym", omitting a zero hour part and a
// zero minute part. The canonical zero rendering is "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// BreakToMinutes converts a break value entered in "minutes" or "hours"
// into whole minutes, rounded. Negative values coerce to zero.
func BreakToMinutes(value float64, unit string) int {
	if unit == "hours" {
		value *= 60
	}
	m := int(value + 0.5)
	if m < 0 {
		return 0
	}
	return m
}

// ParseDate parses a "YYYY-MM-DD" calendar date. The returned time is noon
// UTC of that day so that date arithmetic is immune to DST edges.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(12 * time.Hour), true
}

// ParseDateMDY parses "M/D/YY" or "M/D/YYYY" into "YYYY-MM-DD".
// Two-digit years map into the 2000s. Returns "" for unparseable input.
func ParseDateMDY(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 3 {
		return ""
	}
	m, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	d, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	y, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	if y < 100 {
		y += 2000
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// FormatDateMDY renders "YYYY-MM-DD" as "M/D/YY" for CSV round-tripping.
// Unparseable input is returned unchanged.
func FormatDateMDY(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%d/%d/%02d", int(t.Month()), t.Day(), t.Year()%100)
}

// Weekday returns the day of week of a "YYYY-MM-DD" date (Sunday = 0).
func Weekday(date string) (time.Weekday, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return 0, false
	}
	return t.Weekday(), true
}

// Today formats now as a "YYYY-MM-DD" calendar date.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}

// NowTimeOfDay formats now as a "HH:mm" clock time.
func NowTimeOfDay(now time.Time) string {
	return now.Format("15:04")
}

// FormatDateWithDay renders "YYYY-MM-DD" as e.g. "3 Jun 2024 (Mon)".
// Unparseable input is returned unchanged.
func FormatDateWithDay(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%d %s %d (%s)", t.Day(), t.Format("Jan"), t.Year(), t.Format("Mon"))
}
