package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/textnorm"
)

// CustomSkills is the on-disk shape of the learned skills file. Pending holds
// candidates awaiting a manual bucket decision.
type CustomSkills struct {
	Technical  []string `json:"tecnicas"`
	Soft       []string `json:"blandas"`
	Experience []string `json:"experiencia"`
	Pending    []string `json:"pendiente"`
}

// Bucket returns the slice for a category.
func (c *CustomSkills) Bucket(cat Category) *[]string {
	switch cat {
	case Technical:
		return &c.Technical
	case Soft:
		return &c.Soft
	case Experience:
		return &c.Experience
	}
	return &c.Pending
}

// normalize folds, dedupes and sorts every bucket.
func (c *CustomSkills) normalize() {
	for _, b := range []*[]string{&c.Technical, &c.Soft, &c.Experience, &c.Pending} {
		seen := make(map[string]struct{}, len(*b))
		out := make([]string, 0, len(*b))
		for _, t := range *b {
			t = textnorm.Fold(textnorm.Normalize(t))
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
		sort.Strings(out)
		*b = out
	}
}

// Store persists custom skills as a JSON file.
type Store struct {
	path string
	log  *zap.Logger
}

// NewStore creates a store at path.
func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the file. A missing file yields empty buckets. A legacy flat
// list is migrated into the technical bucket. A corrupt file is reset to the
// empty shape with a warning, never an error.
func (s *Store) Load() CustomSkills {
	var out CustomSkills

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return out
	}
	if err != nil {
		s.warn("custom skills file unreadable, starting empty", err)
		return out
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		// legacy format: a bare list of technical skills
		var legacy []string
		if lerr := json.Unmarshal(raw, &legacy); lerr == nil {
			out = CustomSkills{Technical: legacy}
			out.normalize()
			if s.log != nil {
				s.log.Warn("migrated legacy custom skills list", zap.Int("terms", len(legacy)))
			}
			if serr := s.Save(out); serr != nil {
				s.warn("could not persist migrated custom skills", serr)
			}
			return out
		}
		out = CustomSkills{}
		s.warn("custom skills file corrupt, reinitialized", err)
		if serr := s.Save(out); serr != nil {
			s.warn("could not reset custom skills file", serr)
		}
		return out
	}

	out.normalize()
	return out
}

// Save writes the buckets back to disk.
func (s *Store) Save(skills CustomSkills) error {
	skills.normalize()
	raw, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding custom skills: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing custom skills: %w", err)
	}
	return nil
}

func (s *Store) warn(msg string, err error) {
	if s.log != nil {
		s.log.Warn(msg, zap.Error(err))
	}
}
