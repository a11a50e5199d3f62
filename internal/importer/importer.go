// Package importer parses CSV and JSON exports into entries and merges them
// into an existing profile. Rows are validated field by field; invalid rows
// become warnings while the rest still import.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/timecalc"
)

// RowError is a per-row validation warning. Row numbers are 1-based and
// include the header row for CSV, matching what the user sees in a
// spreadsheet.
type RowError struct {
	Row int
	Msg string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
}

// Record is a raw import record before normalization into an Entry.
// Field names cover both the CSV columns and the JSON export keys
// ("status" is accepted as an alias for "dayStatus").
type Record struct {
	Date         string          `json:"date"`
	ClockIn      string          `json:"clockIn"`
	ClockOut     string          `json:"clockOut"`
	BreakMinutes json.RawMessage `json:"breakMinutes"`
	DayStatus    string          `json:"dayStatus"`
	Status       string          `json:"status"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	Timezone     string          `json:"timezone"`
}

// normalize coerces a raw record into a canonical Entry. Unrecognized
// statuses fall back to work, unrecognized locations to WFO, and a missing
// timezone to defaultTZ; after-midnight clock-outs are rewritten to the
// "24:mm" same-day notation. The date must already be "YYYY-MM-DD".
func normalize(r Record, defaultTZ string) model.Entry {
	status := model.DayStatus(strings.ToLower(strings.TrimSpace(r.DayStatus)))
	if status == "" {
		status = model.DayStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	}
	if !model.ValidStatus(status) {
		status = model.StatusWork
	}

	loc := model.NormalizeLocation(strings.TrimSpace(r.Location))
	if loc == "" {
		loc = model.LocationWFO
	}

	tz := strings.TrimSpace(r.Timezone)
	if tz == "" {
		tz = defaultTZ
	}

	clockIn := strings.TrimSpace(r.ClockIn)
	clockOut := NormalizeClockOut(clockIn, strings.TrimSpace(r.ClockOut))

	return model.Entry{
		Date:         r.Date,
		ClockIn:      clockIn,
		ClockOut:     clockOut,
		BreakMinutes: parseBreak(r.BreakMinutes),
		DayStatus:    status,
		Location:     loc,
		Description:  strings.TrimSpace(r.Description),
		Timezone:     tz,
	}
}

func parseBreak(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}

// NormalizeClockOut rewrites an after-midnight clock-out into same-day
// "24:mm" notation so duration arithmetic still yields a positive span.
// The heuristic only fires when the clock-out is numerically before the
// clock-in and no later than 08:00, which reads as the tail of the previous
// evening's session rather than a data error.
func NormalizeClockOut(clockIn, clockOut string) string {
	if clockIn == "" || clockOut == "" {
		return clockOut
	}
	in, inOK := timecalc.ParseTimeOfDay(clockIn)
	out, outOK := timecalc.ParseTimeOfDay(clockOut)
	if !inOK || !outOK {
		return clockOut
	}
	if out < in && out <= 8*60 {
		return fmt.Sprintf("24:%02d", out%60)
	}
	return clockOut
}

// csvColumns locates the import columns by case-insensitive pattern match
// against the header row. date, clock in, and clock out are required.
type csvColumns struct {
	date, clockIn, clockOut            int
	brk, status, location, desc, tzone int
}

func findColumn(header []string, pattern string) int {
	re := regexp.MustCompile("(?i)" + pattern)
	for i, h := range header {
		if re.MatchString(h) {
			return i
		}
	}
	return -1
}

func locateColumns(header []string) (csvColumns, error) {
	cols := csvColumns{
		date:     findColumn(header, `date`),
		clockIn:  findColumn(header, `clock\s*in`),
		clockOut: findColumn(header, `clock\s*out`),
		brk:      findColumn(header, `break`),
		status:   findColumn(header, `status`),
		location: findColumn(header, `location`),
		desc:     findColumn(header, `description`),
		tzone:    findColumn(header, `timezone`),
	}
	if cols.date < 0 || cols.clockIn < 0 || cols.clockOut < 0 {
		return cols, fmt.Errorf("CSV must have Date, Clock In, and Clock Out columns")
	}
	return cols, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ParseCSV reads a CSV export: a header row followed by data rows with
// M/D/YY or M/D/YYYY dates. Rows with an invalid date become warnings;
// rows with an empty date are skipped silently.
func ParseCSV(r io.Reader, defaultTZ string) ([]model.Entry, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("CSV has no data rows")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var entries []model.Entry
	var warnings []RowError
	rowNum := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			warnings = append(warnings, RowError{Row: rowNum, Msg: err.Error()})
			continue
		}
		dateStr := field(row, cols.date)
		if dateStr == "" {
			continue
		}
		date := timecalc.ParseDateMDY(dateStr)
		if date == "" {
			warnings = append(warnings, RowError{Row: rowNum, Msg: fmt.Sprintf("invalid date %q", dateStr)})
			continue
		}
		rec := Record{
			Date:         date,
			ClockIn:      field(row, cols.clockIn),
			ClockOut:     field(row, cols.clockOut),
			BreakMinutes: json.RawMessage(field(row, cols.brk)),
			DayStatus:    field(row, cols.status),
			Location:     field(row, cols.location),
			Description:  field(row, cols.desc),
			Timezone:     field(row, cols.tzone),
		}
		entries = append(entries, normalize(rec, defaultTZ))
	}
	if len(entries) == 0 && len(warnings) == 0 {
		return nil, nil, fmt.Errorf("CSV has no data rows")
	}
	return entries, warnings, nil
}

// ParseJSON reads either a bare array of entry-like objects or an object
// with an "entries" array. Records without a date become warnings.
func ParseJSON(data []byte, defaultTZ string) ([]model.Entry, []RowError, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapper struct {
			Entries []Record `json:"entries"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil || wrapper.Entries == nil {
			return nil, nil, fmt.Errorf(`JSON must be an array of entries or contain an "entries" array`)
		}
		records = wrapper.Entries
	}

	var entries []model.Entry
	var warnings []RowError
	for i, rec := range records {
		rec.Date = strings.TrimSpace(rec.Date)
		if rec.Date == "" {
			warnings = append(warnings, RowError{Row: i + 1, Msg: "missing date"})
			continue
		}
		entries = append(entries, normalize(rec, defaultTZ))
	}
	if len(entries) == 0 {
		return nil, warnings, fmt.Errorf("no valid entries in JSON")
	}
	return entries, warnings, nil
}

// Merge combines incoming entries into existing, keyed by (date, clockIn).
// Incoming data wins on conflict but a matched existing entry keeps its ID;
// new entries get fresh IDs. The result is sorted by key, and merging the
// same input twice is a no-op the second time.
func Merge(existing, incoming []model.Entry) []model.Entry {
	byKey := map[string]model.Entry{}
	for _, e := range existing {
		byKey[e.Key()] = e
	}
	for _, e := range incoming {
		if prev, ok := byKey[e.Key()]; ok {
			e.ID = prev.ID
		} else if e.ID == "" {
			e.ID = model.NewID()
		}
		byKey[e.Key()] = e
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	merged := make([]model.Entry, 0, len(keys))
	for _, k := range keys {
		merged = append(merged, byKey[k])
	}
	return merged
}
