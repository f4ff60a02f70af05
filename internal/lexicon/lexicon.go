// Package lexicon owns the term dictionaries: seed vocabularies, the
// user-learned custom skills store and the derived lookup structures
// (lemma index, per-category vector corpora). Lookups go through an
// immutable Snapshot that is rebuilt and swapped atomically whenever the
// custom store changes, so concurrent analyses never observe a half-built
// dictionary.
package lexicon

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// Category is one of the three skill buckets every requirement falls into.
type Category int

const (
	Technical Category = iota
	Soft
	Experience
)

// Categories lists the buckets in scoring order.
var Categories = []Category{Technical, Experience, Soft}

// Key is the stable identifier used in JSON files and config.
func (c Category) Key() string {
	switch c {
	case Technical:
		return "tecnicas"
	case Soft:
		return "blandas"
	case Experience:
		return "experiencia"
	}
	return "desconocida"
}

// Label is the human-readable report name.
func (c Category) Label() string {
	switch c {
	case Technical:
		return "Técnicas"
	case Soft:
		return "Blandas"
	case Experience:
		return "Experiencia"
	}
	return "Desconocida"
}

// Weight is the category's share of the final weighted score.
func (c Category) Weight() float64 {
	switch c {
	case Technical:
		return 0.5
	case Experience:
		return 0.3
	case Soft:
		return 0.2
	}
	return 0
}

// Snapshot is an immutable view over seeds plus custom skills. All terms and
// keys are folded.
type Snapshot struct {
	terms      map[Category]map[string]struct{}
	sorted     map[Category][]string
	lemmaIndex map[string]map[string]struct{}
	termVecs   map[Category]map[string][]float64
	an         *annotate.Annotator
}

// buildSnapshot merges the seeds with the custom buckets and derives the
// lemma index and vector corpora.
func buildSnapshot(an *annotate.Annotator, custom CustomSkills) *Snapshot {
	s := &Snapshot{
		terms:      make(map[Category]map[string]struct{}),
		sorted:     make(map[Category][]string),
		lemmaIndex: make(map[string]map[string]struct{}),
		termVecs:   make(map[Category]map[string][]float64),
		an:         an,
	}

	merged := map[Category][]string{
		Technical:  append(append([]string{}, TechSeed...), custom.Technical...),
		Soft:       append(append([]string{}, SoftSeed...), custom.Soft...),
		Experience: append(append([]string{}, ExperienceSeed...), custom.Experience...),
	}

	for cat, list := range merged {
		set := make(map[string]struct{}, len(list))
		for _, t := range list {
			t = textnorm.Fold(textnorm.Normalize(t))
			if t != "" {
				set[t] = struct{}{}
			}
		}
		s.terms[cat] = set

		ordered := make([]string, 0, len(set))
		for t := range set {
			ordered = append(ordered, t)
		}
		sort.Strings(ordered)
		s.sorted[cat] = ordered

		vecs := make(map[string][]float64, len(ordered))
		if an != nil && an.HasVectors() {
			for _, t := range ordered {
				if v := an.Annotate(t).Vector(); v != nil {
					vecs[t] = v
				}
			}
		}
		s.termVecs[cat] = vecs
	}

	// lemma -> known surface forms, plus a self mapping for every raw term
	for _, ordered := range s.sorted {
		for _, term := range ordered {
			if an != nil {
				for _, tok := range an.Annotate(term).Tokens {
					if !tok.IsAlpha {
						continue
					}
					s.index(textnorm.Fold(tok.Lemma), textnorm.Fold(tok.Lower))
				}
			}
			s.index(term, term)
		}
	}

	return s
}

func (s *Snapshot) index(lemma, surface string) {
	if lemma == "" || surface == "" {
		return
	}
	set, ok := s.lemmaIndex[lemma]
	if !ok {
		set = make(map[string]struct{})
		s.lemmaIndex[lemma] = set
	}
	set[surface] = struct{}{}
}

// Contains reports whether the folded term belongs to the category.
func (s *Snapshot) Contains(cat Category, term string) bool {
	_, ok := s.terms[cat][textnorm.Fold(term)]
	return ok
}

// CategoryOf resolves a term to its bucket with technical taking priority,
// then soft, then experience.
func (s *Snapshot) CategoryOf(term string) (Category, bool) {
	t := textnorm.Fold(term)
	for _, cat := range []Category{Technical, Soft, Experience} {
		if _, ok := s.terms[cat][t]; ok {
			return cat, true
		}
	}
	return 0, false
}

// Terms returns the category's terms in sorted order. Callers must not
// mutate the slice.
func (s *Snapshot) Terms(cat Category) []string { return s.sorted[cat] }

// Surfaces returns the known surface forms for a lemma, sorted.
func (s *Snapshot) Surfaces(lemma string) []string {
	set := s.lemmaIndex[textnorm.Fold(lemma)]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// KnownLemma reports whether the lemma appears in the index. The keyword
// density detector uses it to count dictionary words per line.
func (s *Snapshot) KnownLemma(lemma string) bool {
	_, ok := s.lemmaIndex[textnorm.Fold(lemma)]
	return ok
}

// CorpusSimilarity is the best similarity between the phrase and any term of
// any category, 0 when vectors are unavailable.
func (s *Snapshot) CorpusSimilarity(phrase string) float64 {
	_, sim, _ := s.bestCategory(phrase)
	return sim
}

// BestCategory returns the category whose corpus is closest to the phrase,
// together with the best and runner-up similarities.
func (s *Snapshot) BestCategory(phrase string) (Category, float64, float64) {
	return s.bestCategory(phrase)
}

func (s *Snapshot) bestCategory(phrase string) (Category, float64, float64) {
	if s.an == nil || !s.an.HasVectors() {
		return 0, 0, 0
	}
	vec := s.an.Annotate(textnorm.Fold(phrase)).Vector()
	if vec == nil {
		return 0, 0, 0
	}

	bestCat := Category(0)
	best, second := 0.0, 0.0
	for _, cat := range Categories {
		catBest := 0.0
		for _, tv := range s.termVecs[cat] {
			if sim := dot(vec, tv); sim > catBest {
				catBest = sim
			}
		}
		if catBest > best {
			second = best
			best = catBest
			bestCat = cat
		} else if catBest > second {
			second = catBest
		}
	}
	return bestCat, best, second
}

func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var d float64
	for i := range a {
		d += a[i] * b[i]
	}
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// Lexicon couples the custom store with the current snapshot.
type Lexicon struct {
	an    *annotate.Annotator
	store *Store
	log   *zap.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// New builds a lexicon and its first snapshot from the store's content.
func New(an *annotate.Annotator, store *Store, log *zap.Logger) *Lexicon {
	l := &Lexicon{an: an, store: store, log: log}
	l.Rebuild()
	return l
}

// Snapshot returns the current immutable snapshot.
func (l *Lexicon) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}

// Rebuild reloads the custom store and swaps in a fresh snapshot. Load
// failures fall back to an empty custom set, never to a missing snapshot.
func (l *Lexicon) Rebuild() {
	custom := CustomSkills{}
	if l.store != nil {
		custom = l.store.Load()
	}
	snap := buildSnapshot(l.an, custom)

	l.mu.Lock()
	l.snap = snap
	l.mu.Unlock()

	if l.log != nil {
		l.log.Debug("lexicon snapshot rebuilt",
			zap.Int("technical", len(snap.sorted[Technical])),
			zap.Int("soft", len(snap.sorted[Soft])),
			zap.Int("experience", len(snap.sorted[Experience])),
		)
	}
}
