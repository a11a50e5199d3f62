package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/period"
)

func TestComputeSummary(t *testing.T) {
	entries := []model.Entry{
		{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:30", BreakMinutes: 30}, // 480
		{Date: "2024-06-04", ClockIn: "08:00", ClockOut: "18:00", BreakMinutes: 30}, // 570, 90 overtime
		{Date: "2024-06-05", ClockIn: "09:00"},                                      // no duration
		{Date: "2024-06-06", DayStatus: model.StatusVacation},
		{Date: "2024-06-07", DayStatus: model.StatusSick},
		{Date: "2024-06-10", DayStatus: model.StatusHoliday},
	}
	s := ComputeSummary(entries, 480)

	if s.WorkDays != 2 {
		t.Errorf("WorkDays = %d, want 2", s.WorkDays)
	}
	if s.TotalWorkMinutes != 1050 {
		t.Errorf("TotalWorkMinutes = %d, want 1050", s.TotalWorkMinutes)
	}
	if s.TotalOvertimeMinutes != 90 {
		t.Errorf("TotalOvertimeMinutes = %d, want 90", s.TotalOvertimeMinutes)
	}
	if s.AvgWorkMinutes != 525 {
		t.Errorf("AvgWorkMinutes = %d, want 525", s.AvgWorkMinutes)
	}
	if s.AvgOvertimeMinutes != 45 {
		t.Errorf("AvgOvertimeMinutes = %d, want 45", s.AvgOvertimeMinutes)
	}
	if s.VacationDays != 1 || s.SickDays != 1 || s.HolidayDays != 1 {
		t.Errorf("day counts = (%d, %d, %d), want (1, 1, 1)", s.VacationDays, s.SickDays, s.HolidayDays)
	}
}

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil, 480)
	if s != (Summary{}) {
		t.Errorf("ComputeSummary(nil) = %+v, want zero summary", s)
	}
}

func TestAggregateByPeriodMonthly(t *testing.T) {
	entries := []model.Entry{
		{Date: "2024-05-31", ClockIn: "09:00", ClockOut: "17:00"},                   // 480
		{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:30", BreakMinutes: 30}, // 480
		{Date: "2024-06-04", ClockIn: "08:00", ClockOut: "18:00", BreakMinutes: 30}, // 570
		{Date: "2024-06-05", DayStatus: model.StatusVacation},                       // skipped
		{Date: "2024-06-06", ClockIn: "09:00"},                                      // skipped, no duration
	}
	buckets := AggregateByPeriod(entries, period.Monthly, 480)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Key != "2024-05" || buckets[1].Key != "2024-06" {
		t.Fatalf("keys = %q, %q; want 2024-05, 2024-06", buckets[0].Key, buckets[1].Key)
	}
	june := buckets[1]
	if june.Label != "Jun 2024" {
		t.Errorf("Label = %q, want %q", june.Label, "Jun 2024")
	}
	if june.WorkDays != 2 || june.TotalWorkMinutes != 1050 || june.TotalOvertimeMinutes != 90 {
		t.Errorf("june = %+v", june)
	}
	if june.AvgWorkMinutes != 525 || june.AvgOvertimeMinutes != 45 {
		t.Errorf("june averages = (%d, %d), want (525, 45)", june.AvgWorkMinutes, june.AvgOvertimeMinutes)
	}
}

func TestAggregateByPeriodKeepsTrailingBuckets(t *testing.T) {
	var entries []model.Entry
	// 20 months, one entry each; only the trailing 14 survive.
	for y := 2023; y <= 2024; y++ {
		for m := 1; m <= 10; m++ {
			entries = append(entries, model.Entry{
				Date:    fmt.Sprintf("%04d-%02d-15", y, m),
				ClockIn: "09:00", ClockOut: "17:00",
			})
		}
	}
	buckets := AggregateByPeriod(entries, period.Monthly, 480)
	if len(buckets) != 14 {
		t.Fatalf("got %d buckets, want 14", len(buckets))
	}
	if buckets[0].Key != "2023-07" {
		t.Errorf("first key = %q, want 2023-07", buckets[0].Key)
	}
	if buckets[len(buckets)-1].Key != "2024-10" {
		t.Errorf("last key = %q, want 2024-10", buckets[len(buckets)-1].Key)
	}
}

func TestAggregateByPeriodWeeklyLongYear(t *testing.T) {
	// 2020 has 53 ISO weeks; one Wednesday entry per week still truncates to
	// the trailing 16 buckets.
	var entries []model.Entry
	for d := 0; d < 53; d++ {
		day := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d*7)
		entries = append(entries, model.Entry{
			Date:    day.Format("2006-01-02"),
			ClockIn: "09:00", ClockOut: "17:00",
		})
	}
	buckets := AggregateByPeriod(entries, period.Weekly, 480)
	if len(buckets) != 16 {
		t.Fatalf("got %d buckets, want 16", len(buckets))
	}
	if last := buckets[len(buckets)-1].Key; last != "2020-W53" {
		t.Errorf("last key = %q, want 2020-W53", last)
	}
}

func TestMinMaxMedian(t *testing.T) {
	ex := MinMaxMedian([]int{480, 510, 450}, []string{"Apr", "May", "Jun"})
	if ex.MinValue != 450 || ex.MinPeriod != "Jun" {
		t.Errorf("min = (%v, %q), want (450, Jun)", ex.MinValue, ex.MinPeriod)
	}
	if ex.MaxValue != 510 || ex.MaxPeriod != "May" {
		t.Errorf("max = (%v, %q), want (510, May)", ex.MaxValue, ex.MaxPeriod)
	}
	if ex.MedianValue != 480 || ex.MedianPeriod != "Apr" {
		t.Errorf("median = (%v, %q), want (480, Apr)", ex.MedianValue, ex.MedianPeriod)
	}
}

func TestMinMaxMedianEven(t *testing.T) {
	ex := MinMaxMedian([]int{400, 500, 450, 480}, []string{"Jan", "Feb", "Mar", "Apr"})
	if ex.MedianValue != 465 {
		t.Errorf("MedianValue = %v, want 465", ex.MedianValue)
	}
	if ex.MedianPeriod != "Mar / Apr" {
		t.Errorf("MedianPeriod = %q, want %q", ex.MedianPeriod, "Mar / Apr")
	}
}

func TestMinMaxMedianEmpty(t *testing.T) {
	ex := MinMaxMedian(nil, nil)
	if ex.MinPeriod != "—" || ex.MaxPeriod != "—" || ex.MedianPeriod != "—" {
		t.Errorf("placeholders missing: %+v", ex)
	}
	if ex.MinValue != 0 || ex.MaxValue != 0 || ex.MedianValue != 0 {
		t.Errorf("values not zero: %+v", ex)
	}
}

func TestComputePerYear(t *testing.T) {
	entries := []model.Entry{
		{Date: "2023-03-01", ClockIn: "09:00", ClockOut: "17:00", Location: model.LocationWFO}, // 480
		{Date: "2024-06-03", ClockIn: "08:00", ClockOut: "18:00", Location: model.LocationWFH}, // 600
		{Date: "2024-06-04", Location: "AW"},                                                   // work, no duration
		{Date: "2024-06-05", DayStatus: model.StatusVacation},
		{Date: "2024-06-06", DayStatus: model.StatusSick},
	}
	years := ComputePerYear(entries, 480)
	if len(years) != 2 {
		t.Fatalf("got %d years, want 2", len(years))
	}
	if years[0].Year != "2023" || years[1].Year != "2024" {
		t.Fatalf("years = %q, %q", years[0].Year, years[1].Year)
	}
	y24 := years[1]
	if y24.WorkDays != 2 {
		t.Errorf("WorkDays = %d, want 2", y24.WorkDays)
	}
	if y24.WorkDaysWithDuration != 1 {
		t.Errorf("WorkDaysWithDuration = %d, want 1", y24.WorkDaysWithDuration)
	}
	if y24.WorkWFH != 1 || y24.WorkWFO != 0 {
		t.Errorf("locations = (WFO %d, WFH %d)", y24.WorkWFO, y24.WorkWFH)
	}
	if y24.TotalWorkMinutes != 600 || y24.TotalOvertimeMinutes != 120 {
		t.Errorf("totals = (%d, %d), want (600, 120)", y24.TotalWorkMinutes, y24.TotalOvertimeMinutes)
	}
	if y24.AvgWorkMinutes != 600 || y24.AvgOvertimeMinutes != 120 {
		t.Errorf("averages = (%d, %d), want (600, 120)", y24.AvgWorkMinutes, y24.AvgOvertimeMinutes)
	}
	if y24.VacationDays != 1 || y24.SickDays != 1 {
		t.Errorf("day counts = (%d, %d), want (1, 1)", y24.VacationDays, y24.SickDays)
	}
}
