// Package annotate is the linguistic annotation layer for Spanish text. It
// provides tokenization, lemmatization, coarse part-of-speech tagging,
// noun-chunk extraction and distributional similarity. The rest of the engine
// treats it as the boundary an external NLP service would otherwise fill, so
// a degraded no-vector mode is supported: every similarity becomes 0 and the
// callers fall back to exact lexicon matches.
package annotate

import (
	"strings"
	"unicode"
)

// Part-of-speech tags. The set mirrors the coarse universal tags the engine
// cares about; anything functional is only used to reject tokens.
const (
	POSNoun  = "NOUN"
	POSProp  = "PROPN"
	POSVerb  = "VERB"
	POSAdj   = "ADJ"
	POSAdv   = "ADV"
	POSDet   = "DET"
	POSPron  = "PRON"
	POSAdp   = "ADP"
	POSAux   = "AUX"
	POSConj  = "CCONJ"
	POSSconj = "SCONJ"
	POSNum   = "NUM"
	POSPunct = "PUNCT"
	POSOther = "X"
)

// Token is a single annotated token.
type Token struct {
	Text    string
	Lower   string
	Lemma   string
	POS     string
	IsAlpha bool
}

// Doc is an annotated text span.
type Doc struct {
	Text   string
	Tokens []Token

	vec     []float64
	vecDone bool
	an      *Annotator
}

// Chunk is a contiguous noun phrase with an identifiable head token.
type Chunk struct {
	Tokens []Token
	Root   Token
}

// Text returns the surface form of the chunk.
func (c *Chunk) Text() string {
	parts := make([]string, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// Config tunes the annotator. Extra word lists let the caller feed domain
// vocabulary into the tagger without this package depending on it.
type Config struct {
	// Vectors disables the distributional layer when false.
	Vectors bool
	// ExtraNouns are lowercase lemmas always tagged NOUN.
	ExtraNouns []string
	// ExtraVerbs are lowercase lemmas always tagged VERB.
	ExtraVerbs []string
}

// Annotator is a rule-based Spanish annotator.
type Annotator struct {
	vectors    bool
	extraNouns map[string]struct{}
	extraVerbs map[string]struct{}
}

// New creates an annotator from the config.
func New(cfg Config) *Annotator {
	a := &Annotator{
		vectors:    cfg.Vectors,
		extraNouns: make(map[string]struct{}, len(cfg.ExtraNouns)),
		extraVerbs: make(map[string]struct{}, len(cfg.ExtraVerbs)),
	}
	for _, n := range cfg.ExtraNouns {
		a.extraNouns[Fold(n)] = struct{}{}
	}
	for _, v := range cfg.ExtraVerbs {
		a.extraVerbs[Fold(v)] = struct{}{}
	}
	return a
}

// HasVectors reports whether the distributional layer is active.
func (a *Annotator) HasVectors() bool { return a.vectors }

// Annotate tokenizes and tags the text. It never fails: unknown words get a
// default reading instead of an error.
func (a *Annotator) Annotate(text string) *Doc {
	doc := &Doc{Text: text, an: a}

	words := tokenize(text)
	doc.Tokens = make([]Token, 0, len(words))

	prevBoundary := true
	for _, w := range words {
		tok := Token{Text: w, Lower: strings.ToLower(w)}
		tok.IsAlpha = isAlphaWord(w)

		switch {
		case !tok.IsAlpha && isNumeric(w):
			tok.POS = POSNum
			tok.Lemma = tok.Lower
		case !tok.IsAlpha:
			tok.POS = POSPunct
			tok.Lemma = w
		default:
			tok.Lemma = Lemma(tok.Lower)
			tok.POS = a.tagPOS(tok, prevBoundary)
		}

		prevBoundary = tok.POS == POSPunct && isSentenceBoundary(w)
		doc.Tokens = append(doc.Tokens, tok)
	}

	return doc
}

// tagPOS assigns a coarse tag to an alphabetic token.
func (a *Annotator) tagPOS(tok Token, sentenceStart bool) string {
	folded := Fold(tok.Lower)

	if pos, ok := functionPOS[folded]; ok {
		return pos
	}
	if _, ok := a.extraVerbs[Fold(tok.Lemma)]; ok {
		return POSVerb
	}
	if _, ok := a.extraNouns[Fold(tok.Lemma)]; ok {
		return POSNoun
	}
	if _, ok := irregularVerbForms[folded]; ok {
		return POSVerb
	}
	if isAcronym(tok.Text) {
		return POSProp
	}
	if hasVerbSuffix(folded) {
		return POSVerb
	}
	if hasAdjectiveSuffix(folded) {
		return POSAdj
	}
	if isCapitalized(tok.Text) && !sentenceStart {
		return POSProp
	}
	return POSNoun
}

// tokenize splits text into word and punctuation tokens. Words keep internal
// hyphens ("e-commerce") and trailing "+" ("i+d" arrives as separate tokens).
func tokenize(text string) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			cur.WriteRune(r)
		case r == '-' && cur.Len() > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i+1]):
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			out = append(out, string(r))
		}
	}
	flush()
	return out
}

func isAlphaWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) && r != '-' {
			return false
		}
	}
	return true
}

func isNumeric(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isSentenceBoundary(w string) bool {
	switch w {
	case ".", "!", "?", ":", ";", "\n":
		return true
	}
	return false
}

func isCapitalized(w string) bool {
	r := []rune(w)
	return len(r) > 0 && unicode.IsUpper(r[0])
}

// isAcronym reports short all-caps tokens such as SQL, CRM or SAP.
func isAcronym(w string) bool {
	r := []rune(w)
	if len(r) < 2 || len(r) > 6 {
		return false
	}
	for _, c := range r {
		if !unicode.IsUpper(c) {
			return false
		}
	}
	return true
}
