package rules

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/textnorm"
)

// Engine evaluates hard requirements of a posting against a CV. All text
// comparisons run on folded text, so rule data may be written with or
// without accents.
type Engine struct {
	set     RuleSet
	learned *LearnedStore
	log     *zap.Logger

	domains []domainRule
	expRe   *regexp.Regexp
}

// New compiles the rule set into an engine. A broken experience regex is
// replaced by the built-in one with a warning.
func New(set RuleSet, learned *LearnedStore, log *zap.Logger) *Engine {
	expRe, err := regexp.Compile(set.ExperienceRegex)
	if err != nil {
		log.Warn("invalid experience regex, using default", zap.Error(err))
		expRe = regexp.MustCompile(defaultRuleSet().ExperienceRegex)
	}
	return &Engine{
		set:     set,
		learned: learned,
		log:     log,
		domains: domainRules(),
		expRe:   expRe,
	}
}

// Evaluate runs every requirement check. Unmet requirements are
// deduplicated, learned into the counter store and force Excluded.
func (e *Engine) Evaluate(offer, cv string) Result {
	offerLines := foldLines(offer)
	cvLines := foldLines(cv)
	offerFold := strings.Join(offerLines, "\n")
	cvFold := strings.Join(cvLines, "\n")

	var res Result
	seen := map[string]struct{}{}
	unmet := func(label string) {
		if _, dup := seen[label]; dup {
			return
		}
		seen[label] = struct{}{}
		res.Unmet = append(res.Unmet, label)
	}

	e.evalDomains(offerLines, offerFold, cvFold, &res, unmet)
	e.evalGenericYears(offerFold, cvFold, unmet)
	for _, r := range e.set.Rules {
		e.evalRule(r, offerFold, cvFold, &res, unmet)
	}
	e.evalFreeText(offerLines, cvFold, unmet)

	if len(res.Unmet) > 0 {
		res.Excluded = true
		if e.learned != nil {
			e.learned.Learn(res.Unmet)
		}
	} else if len(res.Met) == 0 {
		res.Met = append(res.Met, "Cumple con requisitos básicos del cargo")
	}
	return res
}

// evalDomains handles minimum-years-per-area requirements. A domain fires
// when the posting names the area with a years figure on the same line, or
// when a strong senior title for the area appears.
func (e *Engine) evalDomains(offerLines []string, offerFold, cvFold string, res *Result, unmet func(string)) {
	for _, d := range e.domains {
		years, hasYears := yearsForDomain(offerLines, d)
		strong := d.StrongRole != nil && d.StrongRole.MatchString(offerFold)
		if !hasYears && !strong {
			continue
		}

		evidence := false
		for _, re := range d.CV {
			if re.MatchString(cvFold) {
				evidence = true
				break
			}
		}
		// the area alone is not enough, the CV must frame it as experience
		if evidence && !experienciaMention.MatchString(cvFold) {
			evidence = false
		}

		var label string
		switch {
		case hasYears:
			label = fmt.Sprintf("Experiencia mínima de %d años en %s", years, d.Label)
		default:
			label = fmt.Sprintf("Experiencia liderando %s", d.Label)
		}
		if evidence {
			res.Met = append(res.Met, label)
		} else {
			unmet(label)
		}
	}
}

// evalGenericYears is the fallback for postings that demand years of
// experience without naming an area any domain rule covers.
func (e *Engine) evalGenericYears(offerFold, cvFold string, unmet func(string)) {
	req := maxYears(e.expRe, offerFold)
	if req == 0 {
		return
	}
	for _, d := range e.domains {
		for _, re := range d.Offer {
			if re.MatchString(offerFold) {
				return // a domain rule already owns this requirement
			}
		}
	}
	if maxYears(e.expRe, cvFold) >= req {
		return
	}
	unmet(fmt.Sprintf("Experiencia mínima requerida: %d años", req))
}

func maxYears(re *regexp.Regexp, text string) int {
	best := 0
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if n := atoiSafe(g); n > best && allDigits(g) {
				best = n
			}
		}
	}
	return best
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// evalRule runs one declarative rule. Any panic or bad pattern in a single
// rule is contained so the rest of the evaluation proceeds.
func (e *Engine) evalRule(r Rule, offerFold, cvFold string, res *Result, unmet func(string)) {
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Warn("rule evaluation failed, skipping", zap.String("rule", r.ID), zap.Any("error", rec))
		}
	}()

	if !anyContains(offerFold, r.TriggerAny) {
		return
	}
	if len(r.RequireAny) > 0 && !anyContains(offerFold, r.RequireAny) {
		return
	}

	if r.Type == TypeLanguage {
		e.evalLanguage(r, offerFold, cvFold, res, unmet)
		return
	}

	if anyContains(cvFold, r.CVAny) {
		res.Met = append(res.Met, r.Label)
	} else {
		unmet(r.Label)
	}
}

func (e *Engine) evalLanguage(r Rule, offerFold, cvFold string, res *Result, unmet func(string)) {
	reqLevel := extractLevel(offerFold, r)
	if !anyContains(cvFold, r.TriggerAny) {
		unmet(languageLabel(r, reqLevel))
		return
	}
	cvLevel := extractLevel(cvFold, r)
	if compareLevels(reqLevel, cvLevel) {
		res.Met = append(res.Met, languageLabel(r, reqLevel))
	} else {
		unmet(languageLabel(r, reqLevel))
	}
}

func languageLabel(r Rule, level string) string {
	if level == "" {
		return r.Label
	}
	return fmt.Sprintf("%s (nivel %s)", r.Label, strings.ToUpper(level))
}

// cefrRank orders CEFR levels for comparison.
var cefrRank = map[string]int{"a1": 1, "a2": 2, "b1": 3, "b2": 4, "c1": 5, "c2": 6}

var cefrDirect = regexp.MustCompile(`\b([abc][12])\b`)

// extractLevel pulls a CEFR level out of folded text: a literal level first,
// then level synonyms, then the rule's own level regex.
func extractLevel(text string, r Rule) string {
	if m := cefrDirect.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	for syn, lvl := range r.LevelSynonyms {
		if strings.Contains(text, textnorm.Fold(syn)) {
			return lvl
		}
	}
	if r.LevelRegex == "" {
		return ""
	}
	re, err := regexp.Compile(textnorm.Fold(r.LevelRegex))
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	hit := m[0]
	if len(m) > 1 && m[1] != "" {
		hit = m[1]
	}
	if cefrRank[hit] > 0 {
		return hit
	}
	if lvl, ok := r.LevelSynonyms[hit]; ok {
		return lvl
	}
	return ""
}

// compareLevels decides whether the CV level satisfies the required one. No
// required level means any mention passes; a required level with no CV level
// fails.
func compareLevels(req, cv string) bool {
	if req == "" {
		return true
	}
	if cv == "" {
		return false
	}
	return cefrRank[cv] >= cefrRank[req]
}

// ===== free-text requirement capture =====

type canonEntry struct {
	needs []string
	canon string
}

// canonMap collapses phrasing variants of a requirement into one tag. An
// entry applies when every needle occurs in the folded candidate.
var canonMap = []canonEntry{
	{[]string{"orquest", "proyecto"}, "orquestación de proyectos"},
	{[]string{"gestion", "proyecto"}, "gestión de proyectos"},
	{[]string{"project", "management"}, "gestión de proyectos"},
	{[]string{"metodolog", "agil"}, "metodologías ágiles"},
	{[]string{"scrum"}, "metodologías ágiles"},
	{[]string{"kanban"}, "metodologías ágiles"},
	{[]string{"okr"}, "okr"},
	{[]string{"estrateg", "tecnolog"}, "estrategia tecnológica"},
	{[]string{"reporte", "estrateg"}, "reporte estratégico"},
}

var clauseCut = regexp.MustCompile(`[:;.]|\s[-–—]\s?| - `)

// evalFreeText captures requirements the declarative rules do not know:
// lines starting with a knowledge prefix and bullet blocks under knowledge
// section headers.
func (e *Engine) evalFreeText(offerLines []string, cvFold string, unmet func(string)) {
	var candidates []string

	inSection := false
	for _, line := range offerLines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			inSection = false
			continue
		}
		if isHeader(trimmed, e.set.KnowledgeSectionHeaders) {
			inSection = true
			continue
		}
		if body, ok := stripBullet(trimmed, e.set.BulletMarkers); ok {
			if inSection {
				candidates = append(candidates, body)
			}
			trimmed = body
		}
		for _, p := range e.set.KnowledgePrefixes {
			pf := textnorm.Fold(p)
			if strings.HasPrefix(trimmed, pf) {
				candidates = append(candidates, strings.TrimSpace(trimmed[len(pf):]))
				break
			}
		}
	}

	for _, c := range candidates {
		tag := e.canonicalize(c)
		if tag == "" {
			continue
		}
		if !cvContains(cvFold, textnorm.Fold(tag)) {
			unmet("Conocimiento requerido: " + tag)
		}
	}
}

func isHeader(line string, headers []string) bool {
	l := strings.TrimSuffix(line, ":")
	for _, h := range headers {
		if l == textnorm.Fold(h) {
			return true
		}
	}
	return false
}

func stripBullet(line string, markers []string) (string, bool) {
	for _, m := range markers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m)), true
		}
	}
	return line, false
}

// canonicalize reduces a free-text requirement to a short stable tag. Known
// requirements map to their canonical form; unknown ones keep their first
// significant tokens, up to the configured cap.
func (e *Engine) canonicalize(raw string) string {
	limit := e.set.CanonicalTokenCap
	if limit <= 0 {
		limit = 5
	}
	s := textnorm.Fold(raw)
	if i := clauseCut.FindStringIndex(s); i != nil {
		s = s[:i[0]]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, ce := range canonMap {
		all := true
		for _, n := range ce.needs {
			if !strings.Contains(s, n) {
				all = false
				break
			}
		}
		if all {
			return ce.canon
		}
	}

	fields := strings.Fields(s)
	kept := make([]string, 0, limit)
	for _, f := range fields {
		if len([]rune(f)) <= 2 {
			continue
		}
		if _, stop := lexicon.Stopwords[f]; stop {
			continue
		}
		kept = append(kept, f)
		if len(kept) == limit {
			break
		}
	}
	if len(kept) == 0 {
		if len(fields) > 7 {
			fields = fields[:7]
		}
		s = strings.Join(fields, " ")
		if len(s) > 60 {
			s = strings.TrimSpace(s[:60])
		}
		return s
	}
	return strings.Join(kept, " ")
}

// cvContains is deliberately tolerant: a full substring hit or at least two
// significant tokens of the tag present anywhere in the CV count.
func cvContains(cvFold, tag string) bool {
	if strings.Contains(cvFold, tag) {
		return true
	}
	hits := 0
	for _, tok := range strings.Fields(tag) {
		if len([]rune(tok)) < 3 {
			continue
		}
		if strings.Contains(cvFold, tok) {
			hits++
			if hits >= 2 {
				return true
			}
		}
	}
	return false
}

func anyContains(text string, needles []string) bool {
	for _, n := range needles {
		if n = textnorm.Fold(strings.TrimSpace(n)); n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func foldLines(text string) []string {
	lines := strings.Split(textnorm.NormalizeKeepLines(text), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, textnorm.Fold(strings.TrimSpace(l)))
	}
	return out
}

// LearnGap records observations into the learned gap counters alongside the
// unmet requirements the engine tracks itself.
func (e *Engine) LearnGap(entries ...string) {
	if e.learned == nil || len(entries) == 0 {
		return
	}
	e.learned.Learn(entries)
}

// TopLearned exposes the most frequent historical gaps for reporting.
func (e *Engine) TopLearned(n int) []string {
	if e.learned == nil {
		return nil
	}
	return e.learned.Top(n)
}
