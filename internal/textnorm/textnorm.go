// Package textnorm normalizes raw Spanish text before any linguistic
// processing. Résumés exported from office suites arrive full of
// compatibility characters, invisible spaces and spelling variants; the
// normalizer maps all of that onto one canonical surface so downstream
// lookups can rely on plain string matching.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// invisibleReplacer maps NBSP variants and zero-width characters to a plain
// space and the non-breaking hyphen to a regular one.
var invisibleReplacer = strings.NewReplacer(
	"\u00a0", " ", // NBSP
	"\u2007", " ", // figure space
	"\u202f", " ", // narrow NBSP
	"\u200b", " ", // zero width space
	"\u200c", " ",
	"\u200d", " ",
	"\u2060", " ", // word joiner
	"\u2011", "-", // non-breaking hyphen
)

// alias rewrites unify spelling variants of multi-word terms. Order matters:
// later patterns may match text produced by earlier ones.
var aliases = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)fin[-\s]?tech`), "fintech"},
	{regexp.MustCompile(`(?i)ciber[-\s]?seguridad`), "ciberseguridad"},
	{regexp.MustCompile(`(?i)big[-\s]?data`), "big data"},
	{regexp.MustCompile(`(?i)machine[-\s]?learning`), "machine learning"},
	{regexp.MustCompile(`(?i)\bservicio\s+sla\b`), "cumplimiento de sla"},
	{regexp.MustCompile(`(?i)\bacuerdos?\s+de\s+servicio\b`), "cumplimiento de sla"},
	{regexp.MustCompile(`(?i)\bproject\s+management\b`), "gestión de proyectos"},
	{regexp.MustCompile(`(?i)\bagile\b`), "metodologías ágiles"},
}

var multiSpace = regexp.MustCompile(`\s+`)

// Normalize canonicalizes text for analysis: NFKC compatibility form,
// invisible space and hyphen variants replaced, slashes separated so "a/b"
// tokenizes as two words, alias rewrites applied and whitespace collapsed.
// Normalize(Normalize(s)) == Normalize(s) for any input.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = invisibleReplacer.Replace(text)
	text = strings.ReplaceAll(text, "/", " / ")
	for _, a := range aliases {
		text = a.re.ReplaceAllString(text, a.repl)
	}
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}

// NormalizeKeepLines is Normalize with line structure preserved, for the
// detectors that reason about bullet lines.
func NormalizeKeepLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = Normalize(ln)
	}
	return strings.Join(lines, "\n")
}

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases and strips diacritics, the canonical form for membership
// and containment checks ("Gestión" → "gestion").
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Clean lowercases, strips diacritics and removes punctuation. It mirrors the
// preprocessing used before density counting and lemma scans.
func Clean(s string) string {
	return strings.TrimSpace(nonWord.ReplaceAllString(Fold(s), ""))
}

// sectionHeaders are posting section titles whose lines carry no skill
// content of their own.
var sectionHeaders = []string{
	"mision del cargo", "misión del cargo",
	"responsabilidades principales", "responsabilidades",
	"requisitos", "requerimientos", "perfil", "sobre nosotros",
}

// StripSectionHeaders removes header-only lines. When a header line carries
// content after a colon ("Requisitos: inglés B2"), the remainder survives.
func StripSectionHeaders(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		low := strings.ToLower(strings.TrimSpace(line))
		header := false
		for _, h := range sectionHeaders {
			if strings.HasPrefix(low, h) {
				header = true
				break
			}
		}
		if !header {
			out = append(out, line)
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 {
			rest := strings.TrimSpace(line[idx+1:])
			if rest != "" {
				out = append(out, rest)
			}
		}
	}
	return strings.Join(out, "\n")
}

// ContainsPhrase reports whether phrase occurs in text, tolerating any run of
// non-word characters between the phrase's tokens. Both arguments should be
// normalized already.
func ContainsPhrase(text, phrase string) bool {
	tokens := strings.Fields(strings.TrimSpace(phrase))
	if text == "" || len(tokens) == 0 {
		return false
	}
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = regexp.QuoteMeta(t)
	}
	pat, err := regexp.Compile(`(?i)(?:^|[^\p{L}\p{N}])` + strings.Join(parts, `[^\p{L}\p{N}]+`) + `(?:$|[^\p{L}\p{N}])`)
	if err != nil {
		return false
	}
	return pat.MatchString(text)
}
