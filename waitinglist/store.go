package waitinglist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dateLayout = "02/01/2006"

var ErrEntryNotFound = errors.New("waiting list entry not found")

// Entry is a member waiting for a slot to free up.
type Entry struct {
	MemberNo  int    `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email_address"`
	Status    string `json:"status"`
}

// data is keyed by date (dd/mm/yyyy), then time slot (HH:MM).
type data map[string]map[string][]Entry

// Store keeps the waiting list in a JSON file. All operations load,
// mutate and save under a single mutex, so concurrent requests cannot
// interleave their read-modify-write cycles.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Add registers a member on the waiting list for a slot. Adding a member
// who is already listed for that slot is a no-op; the second return value
// reports whether the member was already present.
func (s *Store) Add(date, timeSlot string, entry Entry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return false, err
	}

	for _, existing := range list[date][timeSlot] {
		if existing.MemberNo == entry.MemberNo {
			return true, nil
		}
	}

	if list[date] == nil {
		list[date] = make(map[string][]Entry)
	}

	list[date][timeSlot] = append(list[date][timeSlot], entry)

	return false, s.save(list)
}

// Remove takes a member off the waiting list for a slot.
func (s *Store) Remove(date, timeSlot string, memberNo int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}

	entries := list[date][timeSlot]
	for i, entry := range entries {
		if entry.MemberNo == memberNo {
			list[date][timeSlot] = append(entries[:i], entries[i+1:]...)
			s.prune(list, date, timeSlot)
			return s.save(list)
		}
	}

	return ErrEntryNotFound
}

// Entries returns the members waiting on a slot, in registration order.
func (s *Store) Entries(date, timeSlot string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	return list[date][timeSlot], nil
}

// Cleanup drops every date key strictly before today. Entries for today
// are kept even when their time slot has already passed.
func (s *Store) Cleanup(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	changed := false
	for date := range list {
		parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
		if err != nil {
			// Unparseable keys are treated as stale.
			delete(list, date)
			changed = true
			continue
		}
		if parsed.Before(today) {
			delete(list, date)
			changed = true
		}
	}

	if !changed {
		return nil
	}

	return s.save(list)
}

// Update applies fn to the entries of one slot while holding the store
// lock, then persists the result. Returning nil entries from fn removes
// the slot. The notifier uses this to make notify-and-drop atomic with
// respect to concurrent add and remove requests.
func (s *Store) Update(date, timeSlot string, fn func(entries []Entry) []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}

	updated := fn(list[date][timeSlot])

	if len(updated) == 0 {
		s.prune(list, date, timeSlot)
	} else {
		if list[date] == nil {
			list[date] = make(map[string][]Entry)
		}
		list[date][timeSlot] = updated
	}

	return s.save(list)
}

// prune removes an emptied slot key, and the date key once no slots remain.
func (s *Store) prune(list data, date, timeSlot string) {
	if slots, ok := list[date]; ok {
		if len(slots[timeSlot]) == 0 {
			delete(slots, timeSlot)
		}
		if len(slots) == 0 {
			delete(list, date)
		}
	}
}

func (s *Store) load() (data, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read waiting list file: %w", err)
	}

	if len(raw) == 0 {
		return data{}, nil
	}

	var list data
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse waiting list file: %w", err)
	}

	return list, nil
}

// save writes to a temp file in the same directory and renames it over
// the target, so a crash mid-write never leaves a truncated file.
func (s *Store) save(list data) error {
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode waiting list: %w", err)
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, "waitinglist-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp waiting list file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write waiting list file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close waiting list file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace waiting list file: %w", err)
	}

	return nil
}
