// Package period maps calendar dates to bucket keys for trend aggregation.
package period

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// Granularity is the bucketing basis for period aggregation.
type Granularity string

const (
	Weekly    Granularity = "weekly"
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Annual    Granularity = "annual"
)

// ParseGranularity validates a user-supplied granularity name.
// "annually" is accepted as an alias for Annual.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Weekly):
		return Weekly, nil
	case string(Monthly):
		return Monthly, nil
	case string(Quarterly):
		return Quarterly, nil
	case string(Annual), "annually":
		return Annual, nil
	}
	return "", fmt.Errorf("unknown granularity %q (want weekly, monthly, quarterly, or annual)", s)
}

// MaxPeriods returns how many trailing buckets aggregate views retain for g.
// Older buckets are dropped from charts and slides, not from the entries.
func MaxPeriods(g Granularity) int {
	switch g {
	case Weekly:
		return 16
	case Monthly:
		return 14
	case Quarterly:
		return 12
	case Annual:
		return 10
	}
	return 12
}

// Key derives the bucket key for a "YYYY-MM-DD" date under g:
// annual "YYYY", monthly "YYYY-MM", quarterly "YYYY-Qn", weekly the ISO-8601
// week "YYYY-Wnn" (the ISO year is the year of the week's Thursday).
// Unparseable dates yield "".
func Key(date string, g Granularity) string {
	t, ok := timecalc.ParseDate(date)
	if !ok {
		return ""
	}
	switch g {
	case Annual:
		return fmt.Sprintf("%04d", t.Year())
	case Monthly:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	case Quarterly:
		q := (int(t.Month()) + 2) / 3
		return fmt.Sprintf("%04d-Q%d", t.Year(), q)
	case Weekly:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	}
	return ""
}

// ISOWeek returns the ISO-8601 week number (1..53) of a "YYYY-MM-DD" date,
// or 0 for unparseable input.
func ISOWeek(date string) int {
	t, ok := timecalc.ParseDate(date)
	if !ok {
		return 0
	}
	_, w := t.ISOWeek()
	return w
}

var monthAbbrevs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Label renders a bucket key for human readers: "Jun 2024" for monthly,
// "Q2 2024" for quarterly, "W23 2024" for weekly, the bare year for annual.
// Keys that do not parse are returned unchanged.
func Label(key string, g Granularity) string {
	switch g {
	case Annual:
		return key
	case Monthly:
		parts := strings.SplitN(key, "-", 2)
		if len(parts) == 2 {
			if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
				return monthAbbrevs[m-1] + " " + parts[0]
			}
		}
	case Quarterly:
		parts := strings.SplitN(key, "-", 2)
		if len(parts) == 2 {
			return parts[1] + " " + parts[0]
		}
	case Weekly:
		if i := strings.Index(key, "-W"); i >= 0 {
			return "W" + key[i+2:] + " " + key[:i]
		}
	}
	return key
}
