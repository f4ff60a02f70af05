// Package noise maintains the self-learned noise counters: phrases that
// keep showing up as non-skills get counted, and once a counter reaches the
// promotion threshold the phrase joins the dynamic exclusion set used by the
// extraction paths.
package noise

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/textnorm"
)

// DefaultThreshold is the count at which a term is promoted to exclusion.
const DefaultThreshold = 4

// Entry is one counter row for listings.
type Entry struct {
	Term  string
	Count int
}

// Store is a file-backed phrase counter. Safe for concurrent use.
type Store struct {
	path string
	log  *zap.Logger

	mu        sync.Mutex
	counts    map[string]int
	threshold int
}

// NewStore loads (or initializes) the counter file. A corrupt file is reset
// to empty with a warning.
func NewStore(path string, threshold int, log *zap.Logger) *Store {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	s := &Store{path: path, log: log, threshold: threshold}
	s.counts = s.load()
	return s
}

func (s *Store) load() map[string]int {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]int{}
	}
	if err != nil {
		s.warn("noise file unreadable, starting empty", err)
		return map[string]int{}
	}

	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		s.warn("noise file corrupt, reinitialized", err)
		return map[string]int{}
	}
	clean := make(map[string]int, len(counts))
	for term, c := range counts {
		term = textnorm.Fold(strings.TrimSpace(term))
		if term != "" && c > 0 {
			clean[term] += c
		}
	}
	return clean
}

func (s *Store) flush() {
	raw, err := json.MarshalIndent(s.counts, "", "  ")
	if err != nil {
		s.warn("could not encode noise counters", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.warn("could not write noise counters", err)
	}
}

// Mark increments the counter for a term. Empty terms are ignored.
func (s *Store) Mark(term string) {
	term = textnorm.Fold(strings.TrimSpace(term))
	if term == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[term]++
	s.flush()
}

// Forget removes a term's counter. It reports whether the term existed.
func (s *Store) Forget(term string) bool {
	term = textnorm.Fold(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.counts[term]; !ok {
		return false
	}
	delete(s.counts, term)
	s.flush()
	return true
}

// Threshold returns the current promotion threshold.
func (s *Store) Threshold() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.threshold
}

// SetThreshold changes the promotion threshold, clamped to at least 1.
func (s *Store) SetThreshold(n int) {
	if n < 1 {
		n = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threshold = n
}

// Excluded returns the terms whose count reached the current threshold.
// Lowering the threshold can only grow this set.
func (s *Store) Excluded() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]struct{})
	for term, c := range s.counts {
		if c >= s.threshold {
			out[term] = struct{}{}
		}
	}
	return out
}

// Top returns up to n entries ordered by count descending, ties by term.
func (s *Store) Top(n int) []Entry {
	if n < 1 {
		n = 1
	}
	s.mu.Lock()
	entries := make([]Entry, 0, len(s.counts))
	for term, c := range s.counts {
		entries = append(entries, Entry{Term: term, Count: c})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Term < entries[j].Term
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func (s *Store) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, zap.Error(err))
	}
}
