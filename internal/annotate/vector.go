package annotate

import (
	"hash/fnv"
	"math"

	"github.com/spigell/ats-advisor/internal/textnorm"
)

// vectorDim is the size of the hashed character-trigram space. Big enough to
// keep collisions rare on a skill vocabulary, small enough to stay cheap.
const vectorDim = 256

// Fold lowercases and strips diacritics. It is the canonical form used for
// set membership across the engine.
func Fold(s string) string {
	return textnorm.Fold(s)
}

// wordVector builds a normalized hashed trigram vector for a single word.
func wordVector(word string) []float64 {
	folded := Fold(word)
	if folded == "" {
		return nil
	}
	padded := "^" + folded + "$"
	r := []rune(padded)

	vec := make([]float64, vectorDim)
	any := false
	for i := 0; i+3 <= len(r); i++ {
		h := fnv.New32a()
		h.Write([]byte(string(r[i : i+3])))
		vec[h.Sum32()%vectorDim]++
		any = true
	}
	if !any {
		// words shorter than a trigram hash as a whole
		h := fnv.New32a()
		h.Write([]byte(padded))
		vec[h.Sum32()%vectorDim] = 1
	}
	normalize(vec)
	return vec
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range vec {
		vec[i] *= inv
	}
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

// contentToken reports whether the token contributes to the doc vector.
func contentToken(t Token) bool {
	if !t.IsAlpha {
		return false
	}
	switch t.POS {
	case POSNoun, POSProp, POSAdj, POSVerb:
		return true
	}
	return false
}

// Vector returns the mean vector of the doc's content tokens, or nil when the
// annotator runs in degraded mode or no content token exists.
func (d *Doc) Vector() []float64 {
	if d.vecDone {
		return d.vec
	}
	d.vecDone = true
	if d.an == nil || !d.an.vectors {
		return nil
	}

	var acc []float64
	n := 0
	for _, t := range d.Tokens {
		if !contentToken(t) {
			continue
		}
		wv := wordVector(t.Lemma)
		if wv == nil {
			continue
		}
		if acc == nil {
			acc = make([]float64, vectorDim)
		}
		for i, v := range wv {
			acc[i] += v
		}
		n++
	}
	if n == 0 {
		return nil
	}
	normalize(acc)
	d.vec = acc
	return d.vec
}

// HasVector reports whether the doc carries a usable vector.
func (d *Doc) HasVector() bool {
	return d.Vector() != nil
}

// Similarity computes cosine similarity between two docs in [0,1]. Either
// side missing a vector yields 0.
func (d *Doc) Similarity(other *Doc) float64 {
	return cosine(d.Vector(), other.Vector())
}

// Similarity is a convenience over two raw phrases.
func (a *Annotator) Similarity(x, y string) float64 {
	if !a.vectors {
		return 0
	}
	return a.Annotate(x).Similarity(a.Annotate(y))
}
