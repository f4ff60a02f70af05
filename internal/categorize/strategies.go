package categorize

import (
	"strings"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// whitelistPhrases performs the conservative textual scan: every known
// multi-word technical phrase found in the text lands in the technical
// bucket, no scoring involved.
type whitelistPhrases struct{}

func (whitelistPhrases) Name() string { return "whitelist-phrases" }

func (whitelistPhrases) Apply(sc *scan) {
	for _, phrase := range lexicon.WhitelistTechPhrases {
		if textnorm.ContainsPhrase(sc.text, phrase) {
			sc.sets.Add(lexicon.Technical, phrase)
		}
	}
}

// nounChunks classifies multi-word noun phrases whose head is a professional
// noun and whose skillness clears the threshold.
type nounChunks struct {
	c *Categorizer
}

func (nounChunks) Name() string { return "noun-chunks" }

func (s nounChunks) Apply(sc *scan) {
	for _, chunk := range sc.doc.NounChunks() {
		phrase, ok := rerootAtHeadNoun(chunk)
		if !ok {
			continue
		}
		phrase = cleanPhrase(phrase)
		if len(strings.Fields(phrase)) <= 1 {
			continue
		}
		if s.c.scorer.Score(phrase) < s.c.cfg.SimThreshold {
			continue
		}
		cat, ok := s.c.categoryFor(sc.snap, phrase)
		if !ok {
			continue
		}
		sc.sets.Add(guardDomain(cat, phrase), phrase)
	}
}

// rerootAtHeadNoun trims leading tokens until the phrase starts at a
// professional head noun, so "responsable de gestión de campañas" yields
// "gestión de campañas". Chunks without any head noun are rejected.
func rerootAtHeadNoun(chunk annotate.Chunk) (string, bool) {
	for i, tok := range chunk.Tokens {
		if tok.POS != annotate.POSNoun && tok.POS != annotate.POSProp {
			continue
		}
		if _, ok := lexicon.HeadNouns[textnorm.Fold(tok.Lemma)]; !ok {
			continue
		}
		parts := make([]string, 0, len(chunk.Tokens)-i)
		for _, t := range chunk.Tokens[i:] {
			parts = append(parts, t.Text)
		}
		return strings.Join(parts, " "), true
	}
	return "", false
}

// singleTokens classifies bare tokens. The lemma index is the stable route;
// the vector route is gated hard (best similarity, margin over the runner-up
// and extra guards before anything lands in the technical bucket).
type singleTokens struct {
	c *Categorizer
}

func (singleTokens) Name() string { return "single-tokens" }

func (s singleTokens) Apply(sc *scan) {
	for _, tok := range sc.doc.Tokens {
		if !validSkillToken(tok) {
			continue
		}
		lemma := textnorm.Fold(tok.Lemma)
		if _, blocked := lexicon.TechGenericBlock[lemma]; blocked {
			continue
		}

		if surfaces := sc.snap.Surfaces(lemma); len(surfaces) > 0 {
			s.classifySurfaces(sc, tok, surfaces)
			continue
		}

		s.classifyByVector(sc, tok, lemma)
	}
}

// classifySurfaces routes a token through the lemma index. A surface equal to
// the token itself classifies directly; other surfaces must also clear the
// corpus similarity bar.
func (s singleTokens) classifySurfaces(sc *scan, tok annotate.Token, surfaces []string) {
	tokText := textnorm.Fold(tok.Lower)
	for _, surface := range surfaces {
		if surface != tokText && sc.snap.CorpusSimilarity(surface) < s.c.cfg.SimThreshold {
			continue
		}
		if cat, ok := sc.snap.CategoryOf(surface); ok {
			sc.sets.Add(cat, surface)
		}
	}
}

func (s singleTokens) classifyByVector(sc *scan, tok annotate.Token, lemma string) {
	cat, best, second := sc.snap.BestCategory(lemma)
	if best < s.c.cfg.TokenThreshold || best-second < s.c.cfg.TokenMargin {
		return
	}

	if cat != lexicon.Technical {
		sc.sets.Add(cat, lemma)
		return
	}

	// technical singles need a stronger reason to pass
	if _, ok := lexicon.BusinessSingletons[lemma]; ok {
		return
	}
	if _, ok := lexicon.WhitelistTechTokens[lemma]; ok {
		sc.sets.Add(lexicon.Technical, lemma)
		return
	}
	if tok.POS == annotate.POSProp {
		sc.sets.Add(lexicon.Technical, lemma)
		return
	}
	if best >= 0.90 {
		sc.sets.Add(lexicon.Technical, lemma)
	}
}

// validSkillToken applies the POS and blocklist gates for bare tokens.
func validSkillToken(tok annotate.Token) bool {
	if !tok.IsAlpha || len([]rune(tok.Text)) < 3 {
		return false
	}
	lemma := textnorm.Fold(tok.Lemma)
	if _, ok := lexicon.Stopwords[lemma]; ok {
		return false
	}
	switch tok.POS {
	case annotate.POSNoun, annotate.POSProp:
	case annotate.POSVerb:
		if _, ok := lexicon.DiscardedVerbs[lemma]; ok {
			return false
		}
		if _, ok := lexicon.PermittedVerbs[lemma]; !ok {
			return false
		}
	default:
		return false
	}
	if _, ok := lexicon.GenericNouns[lemma]; ok {
		return false
	}
	if _, ok := lexicon.AbstractTerms[lemma]; ok {
		return false
	}
	return true
}

// pruneTechnical keeps only multi-word phrases and verified single
// technologies in the technical bucket.
type pruneTechnical struct{}

func (pruneTechnical) Name() string { return "prune-technical" }

func (pruneTechnical) Apply(sc *scan) {
	kept := make(map[string]struct{}, len(sc.sets[lexicon.Technical]))
	for term := range sc.sets[lexicon.Technical] {
		if strings.Contains(term, " ") || strings.Contains(term, "-") {
			kept[term] = struct{}{}
			continue
		}
		if validSingleTech(sc.snap, term) {
			kept[term] = struct{}{}
		}
	}
	sc.sets[lexicon.Technical] = kept
}

func validSingleTech(snap *lexicon.Snapshot, term string) bool {
	if _, blocked := lexicon.TechGenericBlock[term]; blocked {
		return false
	}
	if _, ok := lexicon.WhitelistTechTokens[term]; ok {
		return true
	}
	return snap.Contains(lexicon.Technical, term)
}
