// Package store persists all tracker state as a single JSON document:
// per-profile entry lists plus reserved sections for last-clock state,
// vacation allowances, and profile metadata.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
)

// DefaultProfile is materialized whenever the document has no profiles, so
// at least one profile always exists.
const DefaultProfile = "Default"

// ErrLastProfile is returned when deleting the only remaining profile.
var ErrLastProfile = errors.New("cannot delete the last profile")

// ErrProfileExists is returned when adding or renaming onto a taken name.
var ErrProfileExists = errors.New("profile already exists")

// ErrNoProfile is returned for operations on a profile that does not exist.
var ErrNoProfile = errors.New("no such profile")

// document is the on-disk shape. Profile entry lists live under "profiles";
// the remaining keys are reserved metadata sections keyed by profile name.
type document struct {
	Profiles     map[string][]model.Entry    `json:"profiles"`
	LastClock    map[string]*model.LastClock `json:"lastClock,omitempty"`
	VacationDays map[string]map[string]int   `json:"vacationDays,omitempty"`
	ProfileMeta  map[string]ProfileMeta      `json:"profileMeta,omitempty"`
}

// ProfileMeta is per-profile metadata beyond the entry list.
type ProfileMeta struct {
	Role string `json:"role,omitempty"`
}

// Store reads and writes the tracker document at a fixed path. All mutations
// are whole-document read-modify-write; there is exactly one logical writer.
type Store struct {
	path string
}

// BaseDir returns the root data directory (~/.workhours).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".workhours"), nil
}

// Open returns a Store rooted at dir. The backing file is created lazily on
// first save.
func Open(dir string) *Store {
	return &Store{path: filepath.Join(dir, "data.json")}
}

// load reads the document, returning an empty one when the file is missing
// or unreadable. A corrupt file is backed up and replaced by an empty
// document so the tool keeps working.
func (s *Store) load() document {
	doc := document{Profiles: map[string][]model.Entry{}}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		fmt.Fprintf(os.Stderr, "Warning: corrupt data file backed up to %s: %v\n", backupPath, err)
		return document{Profiles: map[string][]model.Entry{}}
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string][]model.Entry{}
	}
	return doc
}

// save atomically writes the document: temp file then rename.
func (s *Store) save(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// ProfileNames lists the profiles, sorted. An empty document yields the
// default profile (and persists it).
func (s *Store) ProfileNames() ([]string, error) {
	doc := s.load()
	if len(doc.Profiles) == 0 {
		doc.Profiles[DefaultProfile] = []model.Entry{}
		if err := s.save(doc); err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, len(doc.Profiles))
	for n := range doc.Profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// HasProfile reports whether a profile exists.
func (s *Store) HasProfile(name string) bool {
	_, ok := s.load().Profiles[name]
	return ok
}

// AddProfile creates an empty profile.
func (s *Store) AddProfile(name string) error {
	doc := s.load()
	if _, ok := doc.Profiles[name]; ok {
		return fmt.Errorf("%w: %s", ErrProfileExists, name)
	}
	doc.Profiles[name] = []model.Entry{}
	return s.save(doc)
}

// RenameProfile moves the entry list and every reserved keyed section from
// old to new.
func (s *Store) RenameProfile(oldName, newName string) error {
	doc := s.load()
	entries, ok := doc.Profiles[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoProfile, oldName)
	}
	if _, taken := doc.Profiles[newName]; taken {
		return fmt.Errorf("%w: %s", ErrProfileExists, newName)
	}
	doc.Profiles[newName] = entries
	delete(doc.Profiles, oldName)
	if lc, ok := doc.LastClock[oldName]; ok {
		doc.LastClock[newName] = lc
		delete(doc.LastClock, oldName)
	}
	if vd, ok := doc.VacationDays[oldName]; ok {
		doc.VacationDays[newName] = vd
		delete(doc.VacationDays, oldName)
	}
	if meta, ok := doc.ProfileMeta[oldName]; ok {
		doc.ProfileMeta[newName] = meta
		delete(doc.ProfileMeta, oldName)
	}
	return s.save(doc)
}

// DeleteProfile removes a profile and all its keyed state. The last
// remaining profile cannot be deleted.
func (s *Store) DeleteProfile(name string) error {
	doc := s.load()
	if _, ok := doc.Profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNoProfile, name)
	}
	if len(doc.Profiles) <= 1 {
		return ErrLastProfile
	}
	delete(doc.Profiles, name)
	delete(doc.LastClock, name)
	delete(doc.VacationDays, name)
	delete(doc.ProfileMeta, name)
	return s.save(doc)
}

// Entries returns the entry list of a profile, creating the profile on
// first use.
func (s *Store) Entries(profile string) []model.Entry {
	return s.load().Profiles[profile]
}

// SetEntries replaces a profile's entire entry list.
func (s *Store) SetEntries(profile string, entries []model.Entry) error {
	doc := s.load()
	if entries == nil {
		entries = []model.Entry{}
	}
	doc.Profiles[profile] = entries
	return s.save(doc)
}

// UpsertEntry writes e into profile keyed by (date, clockIn). A matching
// entry is replaced in place and keeps its original ID; otherwise e is
// appended (assigned a fresh ID when it has none).
func (s *Store) UpsertEntry(profile string, e model.Entry) (model.Entry, error) {
	doc := s.load()
	entries := doc.Profiles[profile]
	for i := range entries {
		if entries[i].Key() == e.Key() {
			e.ID = entries[i].ID
			entries[i] = e
			doc.Profiles[profile] = entries
			return e, s.save(doc)
		}
	}
	if e.ID == "" {
		e.ID = model.NewID()
	}
	doc.Profiles[profile] = append(entries, e)
	return e, s.save(doc)
}

// DeleteEntries removes the entries with the given IDs from profile and
// returns how many were removed.
func (s *Store) DeleteEntries(profile string, ids ...string) (int, error) {
	idSet := map[string]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	doc := s.load()
	entries := doc.Profiles[profile]
	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		if idSet[e.ID] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0, nil
	}
	doc.Profiles[profile] = kept
	return removed, s.save(doc)
}

// LastClock returns the pending clock-in state for profile, or nil.
func (s *Store) LastClock(profile string) *model.LastClock {
	return s.load().LastClock[profile]
}

// SetLastClock stores (or clears, with nil) the pending clock-in state.
func (s *Store) SetLastClock(profile string, lc *model.LastClock) error {
	doc := s.load()
	if doc.LastClock == nil {
		doc.LastClock = map[string]*model.LastClock{}
	}
	if lc == nil {
		delete(doc.LastClock, profile)
	} else {
		doc.LastClock[profile] = lc
	}
	return s.save(doc)
}

// VacationDays returns the year → allowance map for profile. Missing data is
// an empty map.
func (s *Store) VacationDays(profile string) map[string]int {
	byYear := s.load().VacationDays[profile]
	if byYear == nil {
		return map[string]int{}
	}
	return byYear
}

// SetVacationDays sets the allowance for one year, clamped to 0..365.
func (s *Store) SetVacationDays(profile, year string, days int) error {
	if days < 0 {
		days = 0
	}
	if days > 365 {
		days = 365
	}
	doc := s.load()
	if doc.VacationDays == nil {
		doc.VacationDays = map[string]map[string]int{}
	}
	if doc.VacationDays[profile] == nil {
		doc.VacationDays[profile] = map[string]int{}
	}
	doc.VacationDays[profile][year] = days
	return s.save(doc)
}

// VacationAllowance returns the allowance for a year and whether one is set.
func (s *Store) VacationAllowance(profile, year string) (int, bool) {
	days, ok := s.VacationDays(profile)[year]
	return days, ok
}

// Role returns the role label of a profile, "" when unset.
func (s *Store) Role(profile string) string {
	return s.load().ProfileMeta[profile].Role
}

// SetRole sets the role label of a profile.
func (s *Store) SetRole(profile, role string) error {
	doc := s.load()
	if doc.ProfileMeta == nil {
		doc.ProfileMeta = map[string]ProfileMeta{}
	}
	meta := doc.ProfileMeta[profile]
	meta.Role = role
	doc.ProfileMeta[profile] = meta
	return s.save(doc)
}
