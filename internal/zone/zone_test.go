package zone

import (
	"testing"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
)

func TestProjectEntryBerlinToKolkata(t *testing.T) {
	// Berlin is CEST (+02:00) in June; Kolkata is +05:30, so +3:30 ahead.
	e := model.Entry{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:30"}
	p := ProjectEntry(e, "Asia/Kolkata", "Europe/Berlin")
	if p == nil {
		t.Fatal("expected a projection")
	}
	if p.Date != "2024-06-03" || p.ClockIn != "12:30" || p.ClockOut != "21:00" {
		t.Errorf("got %+v", p)
	}
	if p.ClockOutNextDay {
		t.Error("unexpected next-day rollover")
	}
}

func TestProjectEntryRollsOverMidnight(t *testing.T) {
	e := model.Entry{Date: "2024-06-03", ClockIn: "18:00", ClockOut: "23:00"}
	p := ProjectEntry(e, "Asia/Kolkata", "Europe/Berlin")
	if p == nil {
		t.Fatal("expected a projection")
	}
	if p.Date != "2024-06-03" || p.ClockIn != "21:30" {
		t.Errorf("got %+v", p)
	}
	if p.ClockOut != "02:30" || !p.ClockOutNextDay {
		t.Errorf("clock out = %q, nextDay = %v; want 02:30, true", p.ClockOut, p.ClockOutNextDay)
	}
}

func TestProjectEntryAfterMidnightNotation(t *testing.T) {
	// "24:30" overflows into the next calendar day before conversion.
	e := model.Entry{Date: "2024-06-03", ClockIn: "18:00", ClockOut: "24:30"}
	p := ProjectEntry(e, "UTC", "Europe/Berlin")
	if p == nil {
		t.Fatal("expected a projection")
	}
	if p.ClockIn != "16:00" {
		t.Errorf("ClockIn = %q, want 16:00", p.ClockIn)
	}
	if p.ClockOut != "22:30" || p.ClockOutNextDay {
		t.Errorf("clock out = %q, nextDay = %v; want 22:30, false", p.ClockOut, p.ClockOutNextDay)
	}
}

func TestProjectEntryEntryTimezoneWins(t *testing.T) {
	e := model.Entry{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:00", Timezone: "America/New_York"}
	// New York is EDT (-04:00) in June; UTC view is 4 hours ahead.
	p := ProjectEntry(e, "UTC", "Europe/Berlin")
	if p == nil {
		t.Fatal("expected a projection")
	}
	if p.ClockIn != "13:00" || p.ClockOut != "21:00" {
		t.Errorf("got %+v", p)
	}
}

func TestProjectEntryMissingClocks(t *testing.T) {
	e := model.Entry{Date: "2024-06-03"}
	p := ProjectEntry(e, "UTC", "Europe/Berlin")
	if p == nil {
		t.Fatal("expected a projection")
	}
	// 00:00 and 23:59 CEST map to 22:00 (prev day) and 21:59 UTC.
	if p.Date != "2024-06-02" || p.ClockIn != "22:00" {
		t.Errorf("got %+v", p)
	}
	if p.ClockOut != "21:59" || !p.ClockOutNextDay {
		t.Errorf("clock out = %q, nextDay = %v; want 21:59, true", p.ClockOut, p.ClockOutNextDay)
	}
}

func TestProjectEntryNoConversion(t *testing.T) {
	e := model.Entry{Date: "2024-06-03", ClockIn: "09:00", ClockOut: "17:00"}
	tests := []struct {
		name      string
		entry     model.Entry
		viewTZ    string
		defaultTZ string
	}{
		{"empty view zone", e, "", "Europe/Berlin"},
		{"same zone", e, "Europe/Berlin", "Europe/Berlin"},
		{"unknown view zone", e, "Mars/Olympus", "Europe/Berlin"},
		{"unknown entry zone", model.Entry{Date: "2024-06-03", Timezone: "Nope/Nope"}, "UTC", "Europe/Berlin"},
		{"bad date", model.Entry{Date: "junk", ClockIn: "09:00"}, "UTC", "Europe/Berlin"},
		{"empty date", model.Entry{}, "UTC", "Europe/Berlin"},
		{"bad clock in", model.Entry{Date: "2024-06-03", ClockIn: "xx"}, "UTC", "Europe/Berlin"},
	}
	for _, tt := range tests {
		if p := ProjectEntry(tt.entry, tt.viewTZ, tt.defaultTZ); p != nil {
			t.Errorf("%s: got %+v, want nil", tt.name, p)
		}
	}
}
