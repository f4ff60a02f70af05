package analysis

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/categorize"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/match"
	"github.com/spigell/ats-advisor/internal/rules"
	"github.com/spigell/ats-advisor/internal/skillness"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	an := annotate.New(annotate.Config{Vectors: true})
	log := zaptest.NewLogger(t)
	lex := lexicon.New(an, nil, log)
	scorer := skillness.New(an, lex)
	cat := categorize.New(an, lex, scorer, categorize.Config{}, log)
	engine := rules.New(rules.DefaultSet(), nil, log)
	return New(an, lex, cat, match.New(an, 0), scorer, engine, Config{}, log)
}

func categoryResult(t *testing.T, res *Result, cat lexicon.Category) CategoryResult {
	t.Helper()
	for _, cr := range res.Categories {
		if cr.Category == cat {
			return cr
		}
	}
	t.Fatalf("category %s missing from result", cat.Key())
	return CategoryResult{}
}

func TestFullMatchScoresHigh(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze(
		"Requisitos: Python, SQL y liderazgo.",
		"Amplio dominio de Python y SQL. Gran liderazgo.",
	)

	if res.Total < highThreshold {
		t.Fatalf("expected high compatibility, got %.1f", res.Total)
	}
	if res.Band != BandHigh {
		t.Fatalf("expected band %s, got %s", BandHigh, res.Band)
	}
	if res.Excluded {
		t.Fatalf("nothing should exclude this profile: %v", res.Requirements.Unmet)
	}

	tech := categoryResult(t, res, lexicon.Technical)
	if len(tech.Missing) != 0 {
		t.Fatalf("no technical term should be missing, got %v", tech.Missing)
	}
}

func TestEmptyCategoriesDoNotDrag(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	// posting only names technical skills, the other buckets must not
	// count against the score
	res := a.Analyze("Conocimientos en Python y SQL.", "Python y SQL avanzado.")

	if res.Total < highThreshold {
		t.Fatalf("empty buckets dragged the score to %.1f", res.Total)
	}
}

func TestNoRequirementsScoresFull(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze("Hola.", "Hola.")

	if res.Total != 100 {
		t.Fatalf("a posting without requirements must score 100, got %.1f", res.Total)
	}
}

func TestExclusionDominatesScore(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze("Se requiere inglés B2. Conocimientos en Python.", "Python experto.")

	if !res.Excluded {
		t.Fatal("unmet language requirement must exclude regardless of skill score")
	}
	if len(res.Requirements.Unmet) == 0 {
		t.Fatal("expected the unmet requirement to be reported")
	}
}

func TestMisalignedProfile(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze(
		"Requisitos: Python, SQL y Docker. Liderar, coordinar y supervisar equipos.",
		"Contador público con conocimientos tributarios.",
	)

	if !res.Misaligned {
		tech := categoryResult(t, res, lexicon.Technical)
		exp := categoryResult(t, res, lexicon.Experience)
		t.Fatalf("expected misaligned profile (tech=%v, exp=%v)", tech, exp)
	}
	if len(res.TopMissing) == 0 || len(res.TopMissing) > 5 {
		t.Fatalf("expected up to 5 top missing terms, got %v", res.TopMissing)
	}
}

func TestMisalignmentOnTechnicalBucketAlone(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	// no experience requirements at all, the technical gap must suffice
	res := a.Analyze(
		"Requisitos: Python, SQL, Docker y Kubernetes.",
		"Contador público con conocimientos tributarios.",
	)

	if res.Excluded {
		t.Fatalf("nothing should exclude this profile: %v", res.Requirements.Unmet)
	}
	if !res.Misaligned {
		t.Fatalf("an uncovered technical bucket alone must flag misalignment: %+v", res.Categories)
	}
}

func TestMisalignmentSkippedWhenExcluded(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze(
		"Se requiere inglés B2. Requisitos: Python, SQL y Docker.",
		"Contador público con conocimientos tributarios.",
	)

	if !res.Excluded {
		t.Fatalf("unmet language requirement must exclude: %v", res.Requirements.Unmet)
	}
	if res.Misaligned {
		t.Fatal("an excluded profile already has its verdict, misalignment must not pile on")
	}
}

func TestMisalignmentRecordsLearnedGap(t *testing.T) {
	t.Parallel()

	an := annotate.New(annotate.Config{Vectors: true})
	log := zaptest.NewLogger(t)
	lex := lexicon.New(an, nil, log)
	scorer := skillness.New(an, lex)
	cat := categorize.New(an, lex, scorer, categorize.Config{}, log)
	learned := rules.NewLearnedStore(filepath.Join(t.TempDir(), "aprendidos.json"), log)
	engine := rules.New(rules.DefaultSet(), learned, log)
	a := New(an, lex, cat, match.New(an, 0), scorer, engine, Config{}, log)

	res := a.Analyze(
		"Requisitos: Python, SQL, Docker y Kubernetes.",
		"Contador público con conocimientos tributarios.",
	)
	if !res.Misaligned {
		t.Fatalf("expected a misaligned profile: %+v", res.Categories)
	}

	found := false
	for _, e := range engine.TopLearned(10) {
		if strings.Contains(e, "Desajuste de dominio") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the mismatch recorded in the learned store, got %v", engine.TopLearned(10))
	}
}

func TestMisalignKnobsConfigurable(t *testing.T) {
	t.Parallel()

	an := annotate.New(annotate.Config{Vectors: true})
	log := zaptest.NewLogger(t)
	lex := lexicon.New(an, nil, log)
	scorer := skillness.New(an, lex)
	cat := categorize.New(an, lex, scorer, categorize.Config{}, log)
	engine := rules.New(rules.DefaultSet(), nil, log)
	// two uncovered requirements are not enough by default
	a := New(an, lex, cat, match.New(an, 0), scorer, engine, Config{MisalignMinItems: 2}, log)

	res := a.Analyze("Requisitos: Python y Docker.", "Contador público con conocimientos tributarios.")
	if !res.Misaligned {
		t.Fatalf("lowered min-items knob must flag two uncovered requirements: %+v", res.Categories)
	}
}

func TestMissingCappedPerCategory(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze(
		"Requisitos: Python, SQL, Docker, Kubernetes, Linux, AWS y Azure.",
		"Contador público con conocimientos tributarios.",
	)

	tech := categoryResult(t, res, lexicon.Technical)
	if len(tech.Required) < 6 {
		t.Fatalf("expected many technical requirements, got %v", tech.Required)
	}
	if len(tech.Missing) == 0 || len(tech.Missing) > 5 {
		t.Fatalf("missing terms must be capped at 5 per category, got %v", tech.Missing)
	}
}

func TestSuggestionsForMissingSkills(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze(
		"Requisitos: Python, SQL y Docker. Liderar, coordinar y supervisar equipos.",
		"Contador público con conocimientos tributarios.",
	)

	courses := 0
	for _, s := range res.Suggestions {
		if strings.HasPrefix(s, "Curso especializado en ") {
			courses++
		}
	}
	if courses == 0 || courses > 5 {
		t.Fatalf("expected 1..5 technical course suggestions, got %v", res.Suggestions)
	}
}

func TestStuffedCVDetection(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)

	stuffed := strings.Repeat("python sql docker kubernetes git linux aws azure gcp react\n", 4)
	if !a.LooksStuffed(stuffed) {
		t.Fatal("dense keyword runs should be flagged")
	}

	bullets := strings.Repeat("• python sql docker kubernetes git linux aws\n", 3)
	if !a.LooksStuffed(bullets) {
		t.Fatal("dense keyword bullets should be flagged")
	}

	normal := "Lideré el equipo de datos durante tres años.\nDesarrollé pipelines en Python para reportes."
	if a.LooksStuffed(normal) {
		t.Fatal("a narrative CV must not be flagged")
	}
}

func TestLooksEnglish(t *testing.T) {
	t.Parallel()

	english := `We are looking for a senior engineer with strong skills and
years of experience. You will work with our team and must have the ability
and knowledge required for this role. About the position: this team will
have you work for our clients.`
	if !LooksEnglish(english) {
		t.Fatal("english posting should be detected")
	}

	spanish := "Buscamos un ingeniero con experiencia en Python para el equipo de datos."
	if LooksEnglish(spanish) {
		t.Fatal("spanish posting must not be flagged as english")
	}
}

func TestRecommendationsAlwaysPresent(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(t)
	res := a.Analyze("Conocimientos en Python.", "Python.")
	if len(res.Recommendations) != 3 {
		t.Fatalf("expected 3 fixed recommendations, got %v", res.Recommendations)
	}
}
