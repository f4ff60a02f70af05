// Package match decides which posting requirements a CV satisfies. Matching
// is tolerant on purpose: an exact hit, a lemma hit or a close-enough vector
// similarity all count, in that order.
package match

import (
	"sort"
	"strings"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// DefaultThreshold is the similarity bar for the vector fallback.
const DefaultThreshold = 0.82

// Matcher partitions requirement terms into recognized and missing.
type Matcher struct {
	an        *annotate.Annotator
	threshold float64
}

// New builds a matcher. A non-positive threshold falls back to the default.
func New(an *annotate.Annotator, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{an: an, threshold: threshold}
}

// Partition splits the posting terms into those the CV terms satisfy and
// those they do not. Every posting term lands in exactly one side.
func (m *Matcher) Partition(posting, cv map[string]struct{}) (recognized, missing []string) {
	cvList := make([]string, 0, len(cv))
	for c := range cv {
		if c = textnorm.Fold(strings.TrimSpace(c)); c != "" {
			cvList = append(cvList, c)
		}
	}
	sort.Strings(cvList)

	for p := range posting {
		term := textnorm.Fold(strings.TrimSpace(p))
		if term == "" {
			continue
		}
		if m.matches(term, cvList) {
			recognized = append(recognized, term)
		} else {
			missing = append(missing, term)
		}
	}
	sort.Strings(recognized)
	sort.Strings(missing)
	return recognized, missing
}

func (m *Matcher) matches(term string, cvList []string) bool {
	doc := m.an.Annotate(term)

	for _, c := range cvList {
		if term == c {
			return true
		}
		// lemma route: a CV term equal to any lemma of the posting term
		for _, tok := range doc.Tokens {
			if tok.IsAlpha && textnorm.Fold(tok.Lemma) == c {
				return true
			}
		}
		if m.an.HasVectors() {
			if doc.Similarity(m.an.Annotate(c)) >= m.threshold {
				return true
			}
		}
	}
	return false
}
