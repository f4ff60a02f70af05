// Package analysis runs the whole evaluation of a CV against a posting:
// skill extraction on both sides, hard-requirement rules, the weighted
// compatibility score and the advisory extras (misalignment warning, keyword
// stuffing detector, training suggestions).
package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/categorize"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/match"
	"github.com/spigell/ats-advisor/internal/rules"
	"github.com/spigell/ats-advisor/internal/skillness"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// Compatibility bands.
const (
	BandHigh   = "ALTO"
	BandMedium = "MEDIO"
	BandLow    = "BAJO"

	highThreshold   = 70.0
	mediumThreshold = 50.0
)

// Misalignment defaults: a bucket counts as misaligned when it carries at
// least MinItems requirements and the CV covers less than MaxRatio of them.
const (
	DefaultMisalignMinItems = 3
	DefaultMisalignMaxRatio = 0.25
)

// missingTop caps how many gaps each category reports.
const missingTop = 5

// Keyword stuffing knobs, counted in known skill lemmas per line.
const (
	stuffedBulletDensity = 7
	stuffedBulletCount   = 3
	stuffedRunDensity    = 9
	stuffedRunLength     = 4
)

// CategoryResult is the per-bucket comparison.
type CategoryResult struct {
	Category lexicon.Category `json:"-"`
	Name     string           `json:"categoria"`
	Required []string         `json:"requeridas"`
	Matched  []string         `json:"coincidentes"`
	Missing  []string         `json:"faltantes"`
	Score    float64          `json:"porcentaje"`
}

// Result is the full outcome of one analysis.
type Result struct {
	Categories   []CategoryResult `json:"categorias"`
	Total        float64          `json:"compatibilidad"`
	Band         string           `json:"banda"`
	Requirements rules.Result     `json:"requisitos"`
	Excluded     bool             `json:"excluido"`

	Misaligned bool     `json:"perfil_desalineado"`
	TopMissing []string `json:"principales_faltantes,omitempty"`

	Suggestions     []string `json:"sugerencias,omitempty"`
	SuspiciousCV    bool     `json:"cv_sospechoso"`
	Recommendations []string `json:"recomendaciones"`
}

// Config carries the tunable misalignment knobs.
type Config struct {
	MisalignMinItems int
	MisalignMaxRatio float64
}

func (c *Config) fill() {
	if c.MisalignMinItems == 0 {
		c.MisalignMinItems = DefaultMisalignMinItems
	}
	if c.MisalignMaxRatio == 0 {
		c.MisalignMaxRatio = DefaultMisalignMaxRatio
	}
}

// Analyzer wires the pipeline pieces together.
type Analyzer struct {
	an      *annotate.Annotator
	lex     *lexicon.Lexicon
	cat     *categorize.Categorizer
	matcher *match.Matcher
	scorer  *skillness.Scorer
	engine  *rules.Engine
	cfg     Config
	log     *zap.Logger
}

// New builds an analyzer.
func New(an *annotate.Annotator, lex *lexicon.Lexicon, cat *categorize.Categorizer, matcher *match.Matcher, scorer *skillness.Scorer, engine *rules.Engine, cfg Config, log *zap.Logger) *Analyzer {
	cfg.fill()
	return &Analyzer{an: an, lex: lex, cat: cat, matcher: matcher, scorer: scorer, engine: engine, cfg: cfg, log: log}
}

// Analyze compares a CV against a posting.
func (a *Analyzer) Analyze(offer, cv string) *Result {
	offerSets := a.cat.Categorize(offer)
	cvSets := a.cat.Categorize(cv)

	// CV terms are matched as one pool: a skill the CV phrases as
	// experience still satisfies a technical requirement
	cvPool := map[string]struct{}{}
	for _, c := range lexicon.Categories {
		for term := range cvSets[c] {
			cvPool[term] = struct{}{}
		}
	}

	res := &Result{
		Requirements:    a.engine.Evaluate(offer, cv),
		Recommendations: recommendations(),
	}

	snap := a.lex.Snapshot()
	weightSum := 0.0
	weighted := 0.0
	for _, c := range lexicon.Categories {
		required := offerSets.Sorted(c)
		cr := CategoryResult{Category: c, Name: c.Label(), Required: required}
		if len(required) > 0 {
			cr.Matched, cr.Missing = a.matcher.Partition(offerSets[c], cvPool)
			cr.Score = 100 * float64(len(cr.Matched)) / float64(len(required))
			cr.Missing = a.filterMissing(snap, cr.Missing)
			weightSum += c.Weight()
			weighted += c.Weight() * cr.Score
		}
		res.Categories = append(res.Categories, cr)
	}
	if weightSum > 0 {
		res.Total = weighted / weightSum
	} else {
		// a posting with no extractable requirements rejects nobody
		res.Total = 100
	}

	switch {
	case res.Total >= highThreshold:
		res.Band = BandHigh
	case res.Total >= mediumThreshold:
		res.Band = BandMedium
	default:
		res.Band = BandLow
	}

	// an unmet hard requirement dominates any score
	res.Excluded = res.Requirements.Excluded

	a.checkMisalignment(res)
	res.Suggestions = a.suggestions(res)
	res.SuspiciousCV = a.LooksStuffed(cv)

	if a.log != nil {
		a.log.Debug("analysis finished",
			zap.Float64("total", res.Total),
			zap.String("band", res.Band),
			zap.Bool("excluded", res.Excluded),
			zap.Bool("misaligned", res.Misaligned),
		)
	}
	return res
}

// checkMisalignment flags CVs from a different field: a technical or
// experience bucket with plenty of requirements and almost no coverage. An
// excluded profile already has its verdict, so the check is skipped there.
func (a *Analyzer) checkMisalignment(res *Result) {
	if res.Excluded {
		return
	}

	var reasons []string
	for _, cr := range res.Categories {
		if cr.Category != lexicon.Technical && cr.Category != lexicon.Experience {
			continue
		}
		if len(cr.Required) < a.cfg.MisalignMinItems {
			continue
		}
		ratio := float64(len(cr.Matched)) / float64(len(cr.Required))
		if ratio < a.cfg.MisalignMaxRatio {
			reasons = append(reasons, fmt.Sprintf("%s %d/%d", strings.ToLower(cr.Name), len(cr.Matched), len(cr.Required)))
		}
	}
	if len(reasons) == 0 {
		return
	}

	res.Misaligned = true
	a.engine.LearnGap("Desajuste de dominio (" + strings.Join(reasons, ", ") + ")")

	var missing []string
	for _, cr := range res.Categories {
		missing = append(missing, cr.Missing...)
	}
	sort.Strings(missing)
	if len(missing) > missingTop {
		missing = missing[:missingTop]
	}
	res.TopMissing = missing
}

var alphabetic = regexp.MustCompile(`^[\p{L}][\p{L}\s\-]*$`)

// filterMissing keeps the reportable gaps of one category: real skill terms
// only, ranked by corpus similarity, at most five.
func (a *Analyzer) filterMissing(snap *lexicon.Snapshot, missing []string) []string {
	type cand struct {
		term string
		sim  float64
	}
	var kept []cand
	for _, term := range missing {
		if len([]rune(term)) < 3 || !alphabetic.MatchString(term) {
			continue
		}
		if !worthSuggesting(term) {
			continue
		}
		if a.scorer.Score(term) < skillness.DefaultThreshold {
			continue
		}
		kept = append(kept, cand{term: term, sim: snap.CorpusSimilarity(term)})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].sim != kept[j].sim {
			return kept[i].sim > kept[j].sim
		}
		return kept[i].term < kept[j].term
	})
	if len(kept) > missingTop {
		kept = kept[:missingTop]
	}

	out := make([]string, 0, len(kept))
	for _, c := range kept {
		out = append(out, c.term)
	}
	return out
}

// suggestions proposes training per category from its reported gaps, which
// are already filtered and ranked.
func (a *Analyzer) suggestions(res *Result) []string {
	var out []string
	for _, cr := range res.Categories {
		for _, term := range cr.Missing {
			switch cr.Category {
			case lexicon.Technical:
				out = append(out, "Curso especializado en "+term)
			case lexicon.Soft:
				out = append(out, "Taller de "+term)
			default:
				out = append(out, "Capacitación en "+term)
			}
		}
	}
	return out
}

func worthSuggesting(term string) bool {
	for _, tok := range strings.Fields(term) {
		if _, ok := lexicon.ExcludeTerms[tok]; ok {
			return false
		}
	}
	if _, ok := lexicon.GenericNouns[term]; ok {
		return false
	}
	if _, ok := lexicon.AbstractTerms[term]; ok {
		return false
	}
	return true
}

// LooksStuffed detects CVs that are little more than keyword lists: bullet
// lines packed with known skill lemmas, or long runs of dense lines.
func (a *Analyzer) LooksStuffed(cv string) bool {
	snap := a.lex.Snapshot()
	lines := strings.Split(textnorm.NormalizeKeepLines(cv), "\n")

	denseBullets := 0
	run := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			run = 0
			continue
		}
		density := a.lineDensity(snap, trimmed)

		if isBullet(trimmed) && density >= stuffedBulletDensity {
			denseBullets++
			if denseBullets >= stuffedBulletCount {
				return true
			}
		}
		if density >= stuffedRunDensity {
			run++
			if run >= stuffedRunLength {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

func (a *Analyzer) lineDensity(snap *lexicon.Snapshot, line string) int {
	doc := a.an.Annotate(line)
	n := 0
	for _, tok := range doc.Tokens {
		if !tok.IsAlpha {
			continue
		}
		if snap.KnownLemma(textnorm.Fold(tok.Lemma)) {
			n++
		}
	}
	return n
}

func isBullet(line string) bool {
	for _, m := range []string{"•", "-", "*", "·"} {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

var englishStopwords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "for": {}, "you": {}, "will": {},
	"are": {}, "our": {}, "your": {}, "this": {}, "that": {}, "have": {},
	"skills": {}, "experience": {}, "team": {}, "work": {}, "years": {},
	"about": {}, "must": {}, "required": {}, "knowledge": {}, "ability": {},
}

// LooksEnglish reports whether a text reads as English rather than Spanish.
// The engine only understands Spanish postings, so callers warn and abort.
func LooksEnglish(text string) bool {
	en, es := 0, 0
	for _, w := range strings.Fields(textnorm.Fold(text)) {
		if _, ok := englishStopwords[w]; ok {
			en++
		}
		if _, ok := lexicon.Stopwords[w]; ok {
			es++
		}
	}
	return en >= 5 && en > es
}

func recommendations() []string {
	return []string{
		"Usa las mismas palabras clave de la oferta cuando describas tu experiencia.",
		"Cuantifica tus logros con cifras y resultados concretos.",
		"Adapta el orden de tu hoja de vida para destacar lo que la oferta pide primero.",
	}
}
