// Package export renders entry lists and aggregate statistics into stable,
// exportable shapes: CSV rows and a per-year slide-deck summary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/period"
	"github.com/RifqiMT/working-hours-tracker/internal/stats"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// CSVHeader is the fixed column set of the CSV export; the date format is
// M/D/YY so an exported file re-imports cleanly.
var CSVHeader = []string{"Date", "Clock In", "Clock Out", "Break (min)", "Duration (min)", "Status", "Location"}

// WriteCSV writes entries as CSV, sorted by date ascending. A duration that
// cannot be computed exports as an empty field.
func WriteCSV(w io.Writer, entries []model.Entry) error {
	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, e := range sorted {
		duration := ""
		if dur, ok := timecalc.WorkingMinutes(e.ClockIn, e.ClockOut, e.BreakMinutes); ok {
			duration = strconv.Itoa(dur)
		}
		row := []string{
			timecalc.FormatDateMDY(e.Date),
			e.ClockIn,
			e.ClockOut,
			strconv.Itoa(e.BreakMinutes),
			duration,
			string(e.Status()),
			string(e.Location),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// TrendSeries is one charted metric across period buckets, with its
// min/max/median extremes.
type TrendSeries struct {
	Name     string         `json:"name"`
	Labels   []string       `json:"labels"`
	Minutes  []int          `json:"minutes"`
	Extremes stats.Extremes `json:"extremes"`
}

// YearSlide summarizes one calendar year: the day counts slide and the hours
// slide of the original deck.
type YearSlide struct {
	Year          string          `json:"year"`
	Days          stats.YearStats `json:"days"`
	TotalWork     string          `json:"totalWork"` // formatted, e.g. "1720h 30m"
	AvgWork       string          `json:"avgWork"`   // per work day with duration
	TotalOvertime string          `json:"totalOvertime"`
	AvgOvertime   string          `json:"avgOvertime"`
}

// Deck is the slide-deck export shape: one slide pair per year present in
// the data plus optional trend series under a chosen granularity.
type Deck struct {
	Profile string        `json:"profile"`
	Role    string        `json:"role,omitempty"`
	Years   []YearSlide   `json:"years"`
	Trends  []TrendSeries `json:"trends,omitempty"`
}

// BuildDeck computes the per-year slides from entries. When withTrends is
// set, the four trend series (total and average work and overtime) are
// attached for granularity g.
func BuildDeck(profile, role string, entries []model.Entry, standard int, withTrends bool, g period.Granularity) Deck {
	deck := Deck{Profile: profile, Role: role}
	for _, y := range stats.ComputePerYear(entries, standard) {
		deck.Years = append(deck.Years, YearSlide{
			Year:          y.Year,
			Days:          y,
			TotalWork:     timecalc.FormatDuration(y.TotalWorkMinutes),
			AvgWork:       timecalc.FormatDuration(y.AvgWorkMinutes),
			TotalOvertime: timecalc.FormatDuration(y.TotalOvertimeMinutes),
			AvgOvertime:   timecalc.FormatDuration(y.AvgOvertimeMinutes),
		})
	}
	if withTrends {
		buckets := stats.AggregateByPeriod(entries, g, standard)
		labels := make([]string, len(buckets))
		totalWork := make([]int, len(buckets))
		totalOT := make([]int, len(buckets))
		avgWork := make([]int, len(buckets))
		avgOT := make([]int, len(buckets))
		for i, b := range buckets {
			labels[i] = b.Label
			totalWork[i] = b.TotalWorkMinutes
			totalOT[i] = b.TotalOvertimeMinutes
			avgWork[i] = b.AvgWorkMinutes
			avgOT[i] = b.AvgOvertimeMinutes
		}
		deck.Trends = []TrendSeries{
			{Name: "Working hours", Labels: labels, Minutes: totalWork, Extremes: stats.MinMaxMedian(totalWork, labels)},
			{Name: "Overtime", Labels: labels, Minutes: totalOT, Extremes: stats.MinMaxMedian(totalOT, labels)},
			{Name: "Avg working hours", Labels: labels, Minutes: avgWork, Extremes: stats.MinMaxMedian(avgWork, labels)},
			{Name: "Avg overtime", Labels: labels, Minutes: avgOT, Extremes: stats.MinMaxMedian(avgOT, labels)},
		}
	}
	return deck
}
