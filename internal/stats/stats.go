// Package stats reduces entry lists to summary totals, period-bucketed
// series for trend views, and per-year rollups for exports.
package stats

import (
	"sort"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/period"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// Summary holds the aggregate totals for a filtered entry list.
// WorkDays counts only work-status entries with a computable duration, and
// is the denominator for the averages; the other day counts are
// unconditional counts by status.
type Summary struct {
	TotalWorkMinutes     int
	TotalOvertimeMinutes int
	AvgWorkMinutes       int
	AvgOvertimeMinutes   int
	WorkDays             int
	VacationDays         int
	HolidayDays          int
	SickDays             int
}

// ComputeSummary classifies entries by day status in one pass.
// standard is the overtime threshold in minutes.
func ComputeSummary(entries []model.Entry, standard int) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status() {
		case model.StatusWork:
			dur, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes)
			if !ok {
				continue
			}
			s.WorkDays++
			s.TotalWorkMinutes += dur
			s.TotalOvertimeMinutes += timecalc.Overtime(dur, standard)
		case model.StatusVacation:
			s.VacationDays++
		case model.StatusHoliday:
			s.HolidayDays++
		case model.StatusSick:
			s.SickDays++
		}
	}
	if s.WorkDays > 0 {
		s.AvgWorkMinutes = roundDiv(s.TotalWorkMinutes, s.WorkDays)
		s.AvgOvertimeMinutes = roundDiv(s.TotalOvertimeMinutes, s.WorkDays)
	}
	return s
}

// Bucket is the aggregate for one calendar period under a granularity.
type Bucket struct {
	Key                  string
	Label                string
	TotalWorkMinutes     int
	TotalOvertimeMinutes int
	WorkDays             int
	AvgWorkMinutes       int
	AvgOvertimeMinutes   int
}

// AggregateByPeriod groups work-status entries with computable durations into
// period buckets, sorted by key ascending, keeping only the trailing
// period.MaxPeriods(g) buckets. Older buckets are dropped from the series but
// the underlying entries are untouched.
func AggregateByPeriod(entries []model.Entry, g period.Granularity, standard int) []Bucket {
	type acc struct {
		work, overtime, days int
	}
	buckets := map[string]*acc{}
	for _, e := range entries {
		if e.Status() != model.StatusWork {
			continue
		}
		dur, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes)
		if !ok {
			continue
		}
		key := period.Key(e.Date, g)
		if key == "" {
			continue
		}
		b := buckets[key]
		if b == nil {
			b = &acc{}
			buckets[key] = b
		}
		b.work += dur
		b.overtime += timecalc.Overtime(dur, standard)
		b.days++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if max := period.MaxPeriods(g); len(keys) > max {
		keys = keys[len(keys)-max:]
	}

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		bucket := Bucket{
			Key:                  k,
			Label:                period.Label(k, g),
			TotalWorkMinutes:     b.work,
			TotalOvertimeMinutes: b.overtime,
			WorkDays:             b.days,
		}
		if b.days > 0 {
			bucket.AvgWorkMinutes = roundDiv(b.work, b.days)
			bucket.AvgOvertimeMinutes = roundDiv(b.overtime, b.days)
		}
		out = append(out, bucket)
	}
	return out
}

// Extremes carries min/max/median of a series with the period label each
// value belongs to. An even-length median reports both contributing labels
// joined with " / ".
type Extremes struct {
	MinValue     float64
	MinPeriod    string
	MaxValue     float64
	MaxPeriod    string
	MedianValue  float64
	MedianPeriod string
}

// MinMaxMedian computes the extremes of values with their associated labels.
// Empty input yields zero values with "—" placeholders.
func MinMaxMedian(values []int, labels []string) Extremes {
	if len(values) == 0 {
		return Extremes{MinPeriod: "—", MaxPeriod: "—", MedianPeriod: "—"}
	}
	type pair struct {
		v     int
		label string
	}
	indexed := make([]pair, len(values))
	for i, v := range values {
		label := "—"
		if i < len(labels) {
			label = labels[i]
		}
		indexed[i] = pair{v: v, label: label}
	}
	sort.SliceStable(indexed, func(i, j int) bool { return indexed[i].v < indexed[j].v })

	n := len(indexed)
	ex := Extremes{
		MinValue:  float64(indexed[0].v),
		MinPeriod: indexed[0].label,
		MaxValue:  float64(indexed[n-1].v),
		MaxPeriod: indexed[n-1].label,
	}
	mid := n / 2
	if n%2 == 1 {
		ex.MedianValue = float64(indexed[mid].v)
		ex.MedianPeriod = indexed[mid].label
	} else {
		ex.MedianValue = float64(indexed[mid-1].v+indexed[mid].v) / 2
		ex.MedianPeriod = indexed[mid-1].label + " / " + indexed[mid].label
	}
	return ex
}

// YearStats is the per-year rollup backing the slide export: day counts split
// by status and location, plus hour totals over days with computable
// durations.
type YearStats struct {
	Year                  string
	WorkDays              int // all work-status entries, computable or not
	WorkWFO               int
	WorkWFH               int
	VacationDays          int
	SickDays              int
	HolidayDays           int
	WorkDaysWithDuration  int // denominator for the averages
	TotalWorkMinutes      int
	TotalOvertimeMinutes  int
	AvgWorkMinutes        int
	AvgOvertimeMinutes    int
}

// ComputePerYear rolls entries up by calendar year, sorted ascending.
func ComputePerYear(entries []model.Entry, standard int) []YearStats {
	byYear := map[string]*YearStats{}
	for _, e := range entries {
		if len(e.Date) < 4 {
			continue
		}
		year := e.Date[:4]
		y := byYear[year]
		if y == nil {
			y = &YearStats{Year: year}
			byYear[year] = y
		}
		switch e.Status() {
		case model.StatusWork:
			y.WorkDays++
			switch model.NormalizeLocation(string(e.Location)) {
			case model.LocationWFO:
				y.WorkWFO++
			case model.LocationWFH:
				y.WorkWFH++
			}
			if dur, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes); ok {
				y.WorkDaysWithDuration++
				y.TotalWorkMinutes += dur
				y.TotalOvertimeMinutes += timecalc.Overtime(dur, standard)
			}
		case model.StatusVacation:
			y.VacationDays++
		case model.StatusSick:
			y.SickDays++
		case model.StatusHoliday:
			y.HolidayDays++
		}
	}

	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)

	out := make([]YearStats, 0, len(years))
	for _, year := range years {
		y := byYear[year]
		if n := y.WorkDaysWithDuration; n > 0 {
			y.AvgWorkMinutes = roundDiv(y.TotalWorkMinutes, n)
			y.AvgOvertimeMinutes = roundDiv(y.TotalOvertimeMinutes, n)
		}
		out = append(out, *y)
	}
	return out
}

// roundDiv divides to the nearest integer minute.
func roundDiv(sum, n int) int {
	return (sum + n/2) / n
}
