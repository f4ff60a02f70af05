// Package discover proposes skill phrases the lexicon does not know yet. It
// mines noun chunks (and token bigrams as a fallback) out of a posting,
// scores them with the skillness model and feeds the rejects into the noise
// counters so recurring non-skills teach the tool to stay quiet.
package discover

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/noise"
	"github.com/spigell/ats-advisor/internal/skillness"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// Default thresholds and limits.
const (
	DefaultAcceptThreshold  = 0.65
	DefaultPreviewThreshold = 0.75
	DefaultBigramThreshold  = 0.80
	DefaultTopK             = 12

	minTokens = 2
	maxTokens = 8
)

// Candidate is one proposed skill with its score.
type Candidate struct {
	Term  string
	Score float64
}

// Config carries the tunable knobs.
type Config struct {
	AcceptThreshold  float64
	PreviewThreshold float64
	BigramThreshold  float64
	TopK             int
}

func (c *Config) fill() {
	if c.AcceptThreshold == 0 {
		c.AcceptThreshold = DefaultAcceptThreshold
	}
	if c.PreviewThreshold == 0 {
		c.PreviewThreshold = DefaultPreviewThreshold
	}
	if c.BigramThreshold == 0 {
		c.BigramThreshold = DefaultBigramThreshold
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
}

// Discoverer mines candidate skills from postings.
type Discoverer struct {
	an     *annotate.Annotator
	lex    *lexicon.Lexicon
	scorer *skillness.Scorer
	noise  *noise.Store
	log    *zap.Logger
	cfg    Config
}

// New builds a discoverer. The noise store may be nil, in which case rejects
// are not counted.
func New(an *annotate.Annotator, lex *lexicon.Lexicon, scorer *skillness.Scorer, ns *noise.Store, cfg Config, log *zap.Logger) *Discoverer {
	cfg.fill()
	return &Discoverer{an: an, lex: lex, scorer: scorer, noise: ns, log: log, cfg: cfg}
}

var nonPhraseChars = regexp.MustCompile(`[^\p{L}\s\-]`)

func clean(raw string) string {
	phrase := skillness.CleanPhrase(raw)
	phrase = nonPhraseChars.ReplaceAllString(phrase, "")
	return strings.Join(strings.Fields(phrase), " ")
}

// Discover returns up to TopK unknown skill candidates from a posting,
// best-scored first. Candidates rejected by the score gates are marked in
// the noise store.
func (d *Discoverer) Discover(text string) []Candidate {
	doc := d.an.Annotate(textnorm.Normalize(text))
	snap := d.lex.Snapshot()
	excluded := d.excluded()

	best := map[string]float64{}
	seen := map[string]struct{}{}
	consider := func(phrase string, bar float64) {
		if _, dup := seen[phrase]; dup {
			return
		}
		seen[phrase] = struct{}{}
		score := d.scorer.Score(phrase)
		if score < bar {
			d.markNoise(phrase)
			return
		}
		best[phrase] = score
	}

	for _, ch := range doc.NounChunks() {
		phrase := clean(ch.Text())
		if phrase == "" {
			continue
		}
		if _, known := snap.CategoryOf(phrase); known {
			continue
		}
		if d.isSectionPrefix(phrase) {
			d.markNoise(phrase)
			continue
		}
		if d.isNoisePhrase(phrase, excluded) {
			continue
		}
		n := len(strings.Fields(phrase))
		if n < minTokens || n > maxTokens {
			continue
		}

		bar := d.cfg.AcceptThreshold
		if !hasStructure(phrase) && !d.hasHeadNoun(ch) {
			// unstructured chunks must clear the higher preview bar
			bar = d.cfg.PreviewThreshold
		}
		consider(phrase, bar)
	}

	for _, phrase := range d.bigrams(doc) {
		if _, known := snap.CategoryOf(phrase); known {
			continue
		}
		if d.isNoisePhrase(phrase, excluded) {
			continue
		}
		consider(phrase, d.cfg.BigramThreshold)
	}

	out := make([]Candidate, 0, len(best))
	for term, score := range best {
		out = append(out, Candidate{Term: term, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > d.cfg.TopK {
		out = out[:d.cfg.TopK]
	}
	if d.log != nil {
		d.log.Debug("skill discovery finished", zap.Int("candidates", len(out)))
	}
	return out
}

// hasStructure reports a phrase shape that usually carries a competence:
// prepositional composition, a hyphen or a known pattern.
func hasStructure(phrase string) bool {
	return strings.Contains(phrase, " de ") ||
		strings.Contains(phrase, " en ") ||
		strings.Contains(phrase, "-") ||
		skillness.MatchesPattern(phrase)
}

func (d *Discoverer) hasHeadNoun(ch annotate.Chunk) bool {
	_, ok := lexicon.HeadNouns[textnorm.Fold(ch.Root.Lemma)]
	return ok
}

// bigrams yields consecutive content-token pairs as a fallback for postings
// whose chunking produced nothing useful.
func (d *Discoverer) bigrams(doc *annotate.Doc) []string {
	var out []string
	toks := doc.Tokens
	for i := 0; i+1 < len(toks); i++ {
		a, b := toks[i], toks[i+1]
		if !contentWord(a) || !contentWord(b) {
			continue
		}
		out = append(out, textnorm.Fold(a.Lower)+" "+textnorm.Fold(b.Lower))
	}
	return out
}

func contentWord(t annotate.Token) bool {
	if !t.IsAlpha || len([]rune(t.Lower)) < 3 {
		return false
	}
	switch t.POS {
	case annotate.POSNoun, annotate.POSProp, annotate.POSAdj:
		return true
	}
	return false
}

func (d *Discoverer) isSectionPrefix(phrase string) bool {
	for _, p := range lexicon.SectionPrefixes {
		if strings.HasPrefix(phrase, textnorm.Fold(p)) {
			return true
		}
	}
	return false
}

func (d *Discoverer) isNoisePhrase(phrase string, excluded map[string]struct{}) bool {
	if _, ok := excluded[phrase]; ok {
		return true
	}
	for _, p := range lexicon.NoisePhrases {
		if strings.Contains(phrase, textnorm.Fold(p)) {
			return true
		}
	}
	return false
}

func (d *Discoverer) excluded() map[string]struct{} {
	if d.noise == nil {
		return map[string]struct{}{}
	}
	return d.noise.Excluded()
}

func (d *Discoverer) markNoise(phrase string) {
	if d.noise != nil {
		d.noise.Mark(phrase)
	}
}

// SaveCustom validates user-picked terms and stores them in the pending
// bucket plus a best-guess category when one resolves. Returns the accepted
// and rejected terms.
func (d *Discoverer) SaveCustom(store *lexicon.Store, terms []string) (added, rejected []string, err error) {
	skills := store.Load()
	snap := d.lex.Snapshot()

	for _, raw := range terms {
		term := clean(raw)
		if term == "" || len(strings.Fields(term)) > 6 {
			rejected = append(rejected, raw)
			continue
		}
		if _, known := snap.CategoryOf(term); known {
			rejected = append(rejected, term)
			continue
		}
		if d.scorer.Score(term) < skillness.DefaultThreshold {
			rejected = append(rejected, term)
			continue
		}

		skills.Pending = append(skills.Pending, term)
		if cat, best, _ := snap.BestCategory(term); best >= skillness.DefaultThreshold {
			bucket := skills.Bucket(cat)
			*bucket = append(*bucket, term)
		}
		added = append(added, term)
	}

	if len(added) == 0 {
		return added, rejected, nil
	}
	if err := store.Save(skills); err != nil {
		return added, rejected, err
	}
	d.lex.Rebuild()
	return added, rejected, nil
}
