package period

import "testing"

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		input   string
		want    Granularity
		wantErr bool
	}{
		{"weekly", Weekly, false},
		{"monthly", Monthly, false},
		{"quarterly", Quarterly, false},
		{"annual", Annual, false},
		{"annually", Annual, false},
		{"Weekly", Weekly, false},
		{" monthly ", Monthly, false},
		{"daily", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseGranularity(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseGranularity(%q) = (%q, %v), want (%q, err=%v)", tt.input, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestMaxPeriods(t *testing.T) {
	tests := []struct {
		g    Granularity
		want int
	}{
		{Weekly, 16},
		{Monthly, 14},
		{Quarterly, 12},
		{Annual, 10},
	}
	for _, tt := range tests {
		if got := MaxPeriods(tt.g); got != tt.want {
			t.Errorf("MaxPeriods(%q) = %d, want %d", tt.g, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		date string
		g    Granularity
		want string
	}{
		{"2024-06-03", Annual, "2024"},
		{"2024-06-03", Monthly, "2024-06"},
		{"2024-06-03", Quarterly, "2024-Q2"},
		{"2024-01-15", Quarterly, "2024-Q1"},
		{"2024-12-31", Quarterly, "2024-Q4"},
		{"2024-06-03", Weekly, "2024-W23"},
		// Jan 1 2024 is a Monday, so it opens ISO week 1 of 2024.
		{"2024-01-01", Weekly, "2024-W01"},
		// Jan 1 2023 is a Sunday and still belongs to 2022's last week.
		{"2023-01-01", Weekly, "2022-W52"},
		// Dec 29 2025 falls in week 1 of 2026.
		{"2025-12-29", Weekly, "2026-W01"},
		{"bad-date", Monthly, ""},
	}
	for _, tt := range tests {
		if got := Key(tt.date, tt.g); got != tt.want {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.date, tt.g, got, tt.want)
		}
	}
}

func TestISOWeek(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1},
		{"2023-01-01", 52},
		{"2024-06-03", 23},
		{"nope", 0},
	}
	for _, tt := range tests {
		if got := ISOWeek(tt.date); got != tt.want {
			t.Errorf("ISOWeek(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		key  string
		g    Granularity
		want string
	}{
		{"2024", Annual, "2024"},
		{"2024-06", Monthly, "Jun 2024"},
		{"2024-01", Monthly, "Jan 2024"},
		{"2024-Q2", Quarterly, "Q2 2024"},
		{"2024-W23", Weekly, "W23 2024"},
		{"2024-W01", Weekly, "W01 2024"},
		{"mangled", Monthly, "mangled"},
	}
	for _, tt := range tests {
		if got := Label(tt.key, tt.g); got != tt.want {
			t.Errorf("Label(%q, %q) = %q, want %q", tt.key, tt.g, got, tt.want)
		}
	}
}
