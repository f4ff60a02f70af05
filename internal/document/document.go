// Package document loads the input texts and remembers the last analyzed
// pair, so a rerun can omit the paths and compare against the same posting.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	lastOfferFile = "ultima_oferta.txt"
	lastCVFile    = "ultimo_cv.txt"
)

// Store reads documents and persists the last pair under dir.
type Store struct {
	dir string
	log *zap.Logger
}

// NewStore creates a store rooted at dir.
func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Load reads a text file. Any failure is logged and yields an empty string,
// the caller decides whether that is fatal.
func (s *Store) Load(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		if s.log != nil {
			s.log.Warn("cannot read document", zap.String("path", path), zap.Error(err))
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// SaveLast persists the analyzed pair for later reruns. Failures are logged,
// never fatal: losing the convenience copy must not break an analysis.
func (s *Store) SaveLast(offer, cv string) {
	s.writeLast(lastOfferFile, offer)
	s.writeLast(lastCVFile, cv)
}

// LastOffer returns the previously analyzed posting, or "".
func (s *Store) LastOffer() string {
	return s.readLast(lastOfferFile)
}

// LastCV returns the previously analyzed CV, or "".
func (s *Store) LastCV() string {
	return s.readLast(lastCVFile)
}

func (s *Store) writeLast(name, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil && s.log != nil {
		s.log.Warn("cannot persist last document", zap.String("path", path), zap.Error(err))
	}
}

func (s *Store) readLast(name string) string {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
