package model

import "github.com/google/uuid"

// DayStatus classifies what kind of day an entry records.
type DayStatus string

const (
	StatusWork     DayStatus = "work"
	StatusSick     DayStatus = "sick"
	StatusHoliday  DayStatus = "holiday"
	StatusVacation DayStatus = "vacation"
)

// ValidStatus reports whether s is one of the known day statuses.
func ValidStatus(s DayStatus) bool {
	switch s {
	case StatusWork, StatusSick, StatusHoliday, StatusVacation:
		return true
	}
	return false
}

// Location is where a work day was spent.
type Location string

const (
	LocationWFO      Location = "WFO"
	LocationWFH      Location = "WFH"
	LocationAnywhere Location = "Anywhere"
)

// NormalizeLocation maps the legacy "AW" alias to Anywhere and validates the
// rest. Unknown values normalize to the empty location.
func NormalizeLocation(s string) Location {
	switch Location(s) {
	case LocationWFO, LocationWFH, LocationAnywhere:
		return Location(s)
	}
	if s == "AW" {
		return LocationAnywhere
	}
	return ""
}

// Entry is one tracked day's attendance record.
// Date is a calendar date "YYYY-MM-DD"; ClockIn and ClockOut are local
// times of day "HH:mm" in the entry's own timezone.
type Entry struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	ClockIn      string    `json:"clockIn,omitempty"`
	ClockOut     string    `json:"clockOut,omitempty"`
	BreakMinutes int       `json:"breakMinutes"`
	DayStatus    DayStatus `json:"dayStatus,omitempty"`
	Location     Location  `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	Timezone     string    `json:"timezone,omitempty"`
}

// Status returns the entry's day status, defaulting to work when unset.
func (e Entry) Status() DayStatus {
	if e.DayStatus == "" {
		return StatusWork
	}
	return e.DayStatus
}

// Key is the dedup key identifying a unique entry within a profile.
// A later write with the same key replaces the earlier entry.
func (e Entry) Key() string {
	return e.Date + "|" + e.ClockIn
}

// NewID returns a fresh opaque entry identifier.
func NewID() string {
	return uuid.NewString()
}

// LastClock is the transient pending clock-in state for a profile, awaiting
// a matching clock-out.
type LastClock struct {
	Action string `json:"action"` // "in"
	Date   string `json:"date"`   // YYYY-MM-DD
	Time   string `json:"time"`   // HH:mm
}

// NonWorkDefaults are the fixed values applied to sick/holiday/vacation
// entries so they carry a full standard day.
type NonWorkDefaults struct {
	ClockIn      string
	ClockOut     string
	BreakMinutes int
	Location     Location
}

// DefaultNonWork mirrors the values the entry form applies for non-work
// statuses.
var DefaultNonWork = NonWorkDefaults{
	ClockIn:      "09:00",
	ClockOut:     "18:00",
	BreakMinutes: 60,
	Location:     LocationAnywhere,
}
