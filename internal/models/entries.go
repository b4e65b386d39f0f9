package models

import (
	"sync"
)

// Selection identifies the list row the user has selected
type Selection int

// NoSelection is the selection value when no row is selected
const NoSelection Selection = -1

// Valid reports whether the selection designates a row
func (s Selection) Valid() bool {
	return s >= 0
}

// ChangeHandler receives a snapshot of the entries after every mutation
type ChangeHandler func(entries []string)

// EntryStore holds the ordered list of user entries. Duplicates are allowed.
type EntryStore struct {
	mu       sync.RWMutex
	entries  []string
	onChange ChangeHandler
}

// NewEntryStore creates an empty entry store
func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make([]string, 0),
	}
}

// SetOnChange registers the handler invoked after each mutation
func (s *EntryStore) SetOnChange(handler ChangeHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = handler
}

// Append adds a line at the end. The caller is responsible for trimming and
// rejecting empty input.
func (s *EntryStore) Append(line string) {
	s.mu.Lock()
	s.entries = append(s.entries, line)
	s.mu.Unlock()

	s.notify()
}

// RemoveSelected removes the entry at the selected index and reports whether
// anything was removed. No selection or a stale index is a no-op.
func (s *EntryStore) RemoveSelected(selection Selection) bool {
	s.mu.Lock()
	index := int(selection)
	if !selection.Valid() || index >= len(s.entries) {
		s.mu.Unlock()
		return false
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// Clear removes every entry. Handlers are notified even if the store was empty.
func (s *EntryStore) Clear() {
	s.mu.Lock()
	s.entries = s.entries[:0]
	s.mu.Unlock()

	s.notify()
}

// ReplaceAll swaps the contents for lines, preserving their order, and
// notifies once.
func (s *EntryStore) ReplaceAll(lines []string) {
	s.mu.Lock()
	s.entries = append(make([]string, 0, len(lines)), lines...)
	s.mu.Unlock()

	s.notify()
}

// Entries returns a copy of the current entries
func (s *EntryStore) Entries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Len returns the number of entries
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *EntryStore) snapshot() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *EntryStore) notify() {
	s.mu.RLock()
	handler := s.onChange
	entries := s.snapshot()
	s.mu.RUnlock()

	if handler != nil {
		handler(entries)
	}
}
