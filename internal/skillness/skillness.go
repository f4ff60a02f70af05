// Package skillness scores how much a free-text phrase looks like a
// professional competence. The score blends corpus similarity with
// structural signals (multi-word shape, known patterns, professional head
// noun) and penalizes generic vocabulary, squashed through a logistic so the
// result stays in [0,1].
package skillness

import (
	"math"
	"regexp"
	"strings"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// DefaultThreshold is the base acceptance bar for Score.
const DefaultThreshold = 0.55

// hardZero are business words that score zero no matter the context.
var hardZero = map[string]struct{}{
	"cumplimiento": {}, "operacion": {}, "operaciones": {},
	"gestion": {}, "servicio": {}, "servicios": {},
}

// patterns match phrase shapes that are strong competence signals on their
// own ("gestión de X", "planificación estratégica", ...). Input is folded.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`^(gestion|analisis|implementacion|modelacion|planificacion)\s+de\s+[\p{L}\s\-]+$`),
	regexp.MustCompile(`^planificacion estrategica$`),
	regexp.MustCompile(`^metodologias?\s+a[gj]iles$`),
	regexp.MustCompile(`^orquestacion(\s+de\s+[\p{L}\s\-]+)?$`),
	regexp.MustCompile(`^(innovacion|estrategia)\s+tecnologica$`),
}

// MatchesPattern reports whether the folded phrase fits a known competence
// shape.
func MatchesPattern(phrase string) bool {
	phrase = textnorm.Fold(strings.TrimSpace(phrase))
	for _, p := range patterns {
		if p.MatchString(phrase) {
			return true
		}
	}
	return false
}

// CleanPhrase folds the phrase and strips leading determiners.
func CleanPhrase(phrase string) string {
	parts := strings.Fields(textnorm.Fold(strings.TrimSpace(phrase)))
	for len(parts) > 0 {
		if _, ok := lexicon.Determiners[parts[0]]; !ok {
			break
		}
		parts = parts[1:]
	}
	return strings.Join(parts, " ")
}

// Scorer evaluates phrases against the current lexicon snapshot.
type Scorer struct {
	an  *annotate.Annotator
	lex *lexicon.Lexicon
}

// New builds a scorer.
func New(an *annotate.Annotator, lex *lexicon.Lexicon) *Scorer {
	return &Scorer{an: an, lex: lex}
}

// Score rates a phrase in [0,1]. Zero means discarded outright: an empty or
// blacklisted phrase, or one led by a preposition without a pattern shape.
func (s *Scorer) Score(phrase string) float64 {
	txt := CleanPhrase(phrase)
	if txt == "" {
		return 0
	}
	if _, ok := hardZero[txt]; ok {
		return 0
	}
	for pfx := range lexicon.PrepExclude {
		if strings.HasPrefix(txt, pfx+" ") && !MatchesPattern(txt) {
			return 0
		}
	}

	snap := s.lex.Snapshot()
	sim := snap.CorpusSimilarity(txt)

	isChunk := 0.0
	if len(strings.Fields(txt)) > 1 {
		isChunk = 1.0
	}

	pat := 0.0
	if MatchesPattern(txt) {
		pat = 1.0
	}

	doc := s.an.Annotate(txt)

	headBonus := 0.0
	for _, ch := range doc.NounChunks() {
		if _, ok := lexicon.HeadNouns[textnorm.Fold(ch.Root.Lemma)]; ok {
			headBonus = 1.0
			break
		}
	}

	genericPenalty := 0.0
	for _, tok := range doc.Tokens {
		if tok.POS != annotate.POSNoun {
			continue
		}
		lem := textnorm.Fold(tok.Lemma)
		if _, ok := lexicon.GenericNouns[lem]; ok {
			genericPenalty++
			continue
		}
		if _, ok := lexicon.AbstractTerms[lem]; ok {
			genericPenalty++
		}
	}

	raw := 1.4*sim + 0.6*isChunk + 0.9*pat + 0.6*headBonus - 1.2*genericPenalty
	return 1.0 / (1.0 + math.Exp(-raw))
}
