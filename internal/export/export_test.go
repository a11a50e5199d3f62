package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/period"
)

func TestWriteCSV(t *testing.T) {
	entries := []model.Entry{
		{Date: "2024-06-04", ClockIn: "08:00", ClockOut: "18:00", BreakMinutes: 30, Location: model.LocationWFH},
		{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:30", BreakMinutes: 30, Location: model.LocationWFO},
		{Date: "2024-06-05", DayStatus: model.StatusVacation},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if got := strings.Join(rows[0], ","); got != strings.Join(CSVHeader, ",") {
		t.Errorf("header = %q", got)
	}

	// Sorted by date, M/D/YY dates, computed duration.
	if rows[1][0] != "6/3/24" || rows[2][0] != "6/4/24" || rows[3][0] != "6/5/24" {
		t.Errorf("dates = %q, %q, %q", rows[1][0], rows[2][0], rows[3][0])
	}
	if rows[1][4] != "480" || rows[2][4] != "570" {
		t.Errorf("durations = %q, %q; want 480, 570", rows[1][4], rows[2][4])
	}
	if rows[3][4] != "" {
		t.Errorf("vacation duration = %q, want empty", rows[3][4])
	}
	if rows[3][5] != "vacation" {
		t.Errorf("status = %q, want vacation", rows[3][5])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != strings.Join(CSVHeader, ",") {
		t.Errorf("got %q, want header only", got)
	}
}

func TestBuildDeck(t *testing.T) {
	entries := []model.Entry{
		{Date: "2023-03-01", ClockIn: "09:00", ClockOut: "17:00"},
		{Date: "2024-06-03", ClockIn: "08:00", ClockOut: "18:00", BreakMinutes: 30},
		{Date: "2024-06-05", DayStatus: model.StatusVacation},
	}
	deck := BuildDeck("Acme", "Engineer", entries, 480, false, period.Monthly)

	if deck.Profile != "Acme" || deck.Role != "Engineer" {
		t.Errorf("deck identity = %q / %q", deck.Profile, deck.Role)
	}
	if len(deck.Years) != 2 {
		t.Fatalf("got %d years, want 2", len(deck.Years))
	}
	if deck.Trends != nil {
		t.Error("trends attached without withTrends")
	}

	y24 := deck.Years[1]
	if y24.Year != "2024" {
		t.Fatalf("year = %q", y24.Year)
	}
	if y24.TotalWork != "9h 30m" || y24.TotalOvertime != "1h 30m" {
		t.Errorf("totals = %q / %q", y24.TotalWork, y24.TotalOvertime)
	}
	if y24.Days.VacationDays != 1 {
		t.Errorf("VacationDays = %d, want 1", y24.Days.VacationDays)
	}
}

func TestBuildDeckTrends(t *testing.T) {
	entries := []model.Entry{
		{Date: "2024-05-06", ClockIn: "09:00", ClockOut: "17:00"},
		{Date: "2024-06-03", ClockIn: "08:00", ClockOut: "18:00", BreakMinutes: 30},
	}
	deck := BuildDeck("Acme", "", entries, 480, true, period.Monthly)

	if len(deck.Trends) != 4 {
		t.Fatalf("got %d trend series, want 4", len(deck.Trends))
	}
	work := deck.Trends[0]
	if work.Name != "Working hours" {
		t.Errorf("name = %q", work.Name)
	}
	wantLabels := []string{"May 2024", "Jun 2024"}
	if len(work.Labels) != 2 || work.Labels[0] != wantLabels[0] || work.Labels[1] != wantLabels[1] {
		t.Errorf("labels = %v, want %v", work.Labels, wantLabels)
	}
	if work.Minutes[0] != 480 || work.Minutes[1] != 570 {
		t.Errorf("minutes = %v", work.Minutes)
	}
	if work.Extremes.MaxValue != 570 || work.Extremes.MaxPeriod != "Jun 2024" {
		t.Errorf("extremes = %+v", work.Extremes)
	}
	overtime := deck.Trends[1]
	if overtime.Minutes[0] != 0 || overtime.Minutes[1] != 90 {
		t.Errorf("overtime minutes = %v", overtime.Minutes)
	}
}
