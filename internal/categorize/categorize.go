// Package categorize extracts skill mentions from free text and sorts them
// into the three requirement buckets. Extraction runs as an ordered pipeline
// of strategies where the first opinion on a term wins: whitelist phrase
// scan, noun-chunk classification, controlled single-token classification
// and a final pruning pass over the technical bucket.
package categorize

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/skillness"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// Defaults for the classification thresholds.
const (
	DefaultSimThreshold   = 0.55
	DefaultTokenThreshold = 0.80
	DefaultTokenMargin    = 0.05
)

// Sets holds the categorized terms. The buckets are pairwise disjoint.
type Sets map[lexicon.Category]map[string]struct{}

// NewSets allocates empty buckets.
func NewSets() Sets {
	s := make(Sets, len(lexicon.Categories))
	for _, cat := range lexicon.Categories {
		s[cat] = make(map[string]struct{})
	}
	return s
}

// Add inserts a folded term into a bucket.
func (s Sets) Add(cat lexicon.Category, term string) {
	term = textnorm.Fold(strings.TrimSpace(term))
	if term != "" {
		s[cat][term] = struct{}{}
	}
}

// Has reports membership in any bucket.
func (s Sets) Has(term string) bool {
	term = textnorm.Fold(term)
	for _, set := range s {
		if _, ok := set[term]; ok {
			return true
		}
	}
	return false
}

// Sorted returns a bucket's terms in sorted order.
func (s Sets) Sorted(cat lexicon.Category) []string {
	out := make([]string, 0, len(s[cat]))
	for t := range s[cat] {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Config carries the tunable thresholds.
type Config struct {
	SimThreshold   float64
	TokenThreshold float64
	TokenMargin    float64
}

func (c *Config) fill() {
	if c.SimThreshold == 0 {
		c.SimThreshold = DefaultSimThreshold
	}
	if c.TokenThreshold == 0 {
		c.TokenThreshold = DefaultTokenThreshold
	}
	if c.TokenMargin == 0 {
		c.TokenMargin = DefaultTokenMargin
	}
}

// Categorizer runs the strategy pipeline.
type Categorizer struct {
	an     *annotate.Annotator
	lex    *lexicon.Lexicon
	scorer *skillness.Scorer
	log    *zap.Logger
	cfg    Config

	strategies []strategy
}

// strategy is one pipeline step. Steps run in order over a shared scan
// context and accumulate into the same buckets.
type strategy interface {
	Name() string
	Apply(sc *scan)
}

// scan is the per-call pipeline state.
type scan struct {
	doc  *annotate.Doc
	text string // normalized, headers stripped, folded
	snap *lexicon.Snapshot
	sets Sets
}

// New builds a categorizer.
func New(an *annotate.Annotator, lex *lexicon.Lexicon, scorer *skillness.Scorer, cfg Config, log *zap.Logger) *Categorizer {
	cfg.fill()
	c := &Categorizer{an: an, lex: lex, scorer: scorer, log: log, cfg: cfg}
	c.strategies = []strategy{
		&whitelistPhrases{},
		&nounChunks{c: c},
		&singleTokens{c: c},
		&pruneTechnical{},
	}
	return c
}

// Categorize extracts the categorized skill sets from a text.
func (c *Categorizer) Categorize(text string) Sets {
	filtered := textnorm.StripSectionHeaders(textnorm.NormalizeKeepLines(text))

	sc := &scan{
		doc:  c.an.Annotate(filtered),
		text: textnorm.Fold(textnorm.Normalize(filtered)),
		snap: c.lex.Snapshot(),
		sets: NewSets(),
	}

	for _, st := range c.strategies {
		before := sc.sets.size()
		st.Apply(sc)
		if c.log != nil {
			c.log.Debug("categorize strategy applied",
				zap.String("strategy", st.Name()),
				zap.Int("terms", sc.sets.size()),
				zap.Int("added", sc.sets.size()-before),
			)
		}
	}

	sc.sets.makeDisjoint()
	return sc.sets
}

func (s Sets) size() int {
	n := 0
	for _, set := range s {
		n += len(set)
	}
	return n
}

// makeDisjoint drops duplicates across buckets, technical winning over soft
// and soft over experience.
func (s Sets) makeDisjoint() {
	priority := []lexicon.Category{lexicon.Technical, lexicon.Soft, lexicon.Experience}
	seen := make(map[string]struct{})
	for _, cat := range priority {
		for term := range s[cat] {
			if _, dup := seen[term]; dup {
				delete(s[cat], term)
				continue
			}
			seen[term] = struct{}{}
		}
	}
}

// categoryFor resolves a phrase to a bucket: exact lexicon membership takes
// priority over similarity, and similarity below the threshold resolves to
// nothing at all.
func (c *Categorizer) categoryFor(snap *lexicon.Snapshot, phrase string) (lexicon.Category, bool) {
	if cat, ok := snap.CategoryOf(phrase); ok {
		return cat, true
	}
	cat, best, _ := snap.BestCategory(phrase)
	if best < c.cfg.SimThreshold {
		return 0, false
	}
	return cat, true
}

var (
	domainTechHint = regexp.MustCompile(`\b(finanzas?|proyect[a-z]*|estrateg[a-z]*|okr|agile|scrum|kanban|bi|analitic[a-z]*|analytics?)\b`)
	domainExpHint  = regexp.MustCompile(`\b(liderar|gestionar|coordinar|planificar|dirigir|supervisar|orquestar)\b`)
)

// guardDomain corrects soft classifications of phrases that carry a clear
// technical or managerial signal.
func guardDomain(cat lexicon.Category, phrase string) lexicon.Category {
	if cat != lexicon.Soft {
		return cat
	}
	if domainTechHint.MatchString(phrase) {
		return lexicon.Technical
	}
	if domainExpHint.MatchString(phrase) {
		return lexicon.Experience
	}
	return cat
}

var (
	nonPhraseChars = regexp.MustCompile(`[^\p{L}\s\-]`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

// cleanPhrase folds a chunk text, strips determiners and non-letter noise.
func cleanPhrase(raw string) string {
	phrase := skillness.CleanPhrase(raw)
	phrase = nonPhraseChars.ReplaceAllString(phrase, "")
	return strings.TrimSpace(multiSpace.ReplaceAllString(phrase, " "))
}
