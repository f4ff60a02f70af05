package discover

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/noise"
	"github.com/spigell/ats-advisor/internal/skillness"
)

func newTestDiscoverer(t *testing.T, ns *noise.Store, cfg Config) (*Discoverer, *lexicon.Lexicon) {
	t.Helper()
	an := annotate.New(annotate.Config{
		Vectors:    true,
		ExtraNouns: []string{"modelacion", "riesgo", "auditoria", "incidente", "compromiso"},
	})
	log := zaptest.NewLogger(t)
	lex := lexicon.New(an, nil, log)
	return New(an, lex, skillness.New(an, lex), ns, cfg, log), lex
}

func terms(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Term
	}
	return out
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestDiscoverStructuredPhrase(t *testing.T) {
	t.Parallel()

	d, _ := newTestDiscoverer(t, nil, Config{})
	cands := d.Discover("Buscamos modelación de riesgos financieros.")

	if !contains(terms(cands), "modelacion de riesgos financieros") {
		t.Fatalf("expected structured phrase discovered, got %v", terms(cands))
	}
	for _, c := range cands {
		if c.Score < DefaultAcceptThreshold {
			t.Fatalf("candidate %q below acceptance bar: %f", c.Term, c.Score)
		}
	}
}

func TestDiscoverSkipsKnownTerms(t *testing.T) {
	t.Parallel()

	d, _ := newTestDiscoverer(t, nil, Config{})
	cands := d.Discover("Necesitamos gestión de proyectos.")

	if contains(terms(cands), "gestion de proyectos") {
		t.Fatal("seed term must not resurface as a discovery")
	}
}

func TestDiscoverMarksRejectsAsNoise(t *testing.T) {
	t.Parallel()

	ns := noise.NewStore(filepath.Join(t.TempDir(), "noise.json"), 0, zaptest.NewLogger(t))
	d, _ := newTestDiscoverer(t, ns, Config{})

	d.Discover("Compromiso total con el cliente.")

	found := false
	for _, e := range ns.Top(20) {
		if e.Term == "compromiso total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("rejected chunk should be counted as noise, counters: %v", ns.Top(20))
	}
}

func TestDiscoverRespectsDynamicExclusions(t *testing.T) {
	t.Parallel()

	ns := noise.NewStore(filepath.Join(t.TempDir(), "noise.json"), 0, zaptest.NewLogger(t))
	for i := 0; i < noise.DefaultThreshold; i++ {
		ns.Mark("compromiso total")
	}
	d, _ := newTestDiscoverer(t, ns, Config{})

	d.Discover("Compromiso total con el cliente.")

	for _, e := range ns.Top(20) {
		if e.Term == "compromiso total" && e.Count != noise.DefaultThreshold {
			t.Fatalf("excluded phrase must be skipped before scoring, count=%d", e.Count)
		}
	}
}

func TestDiscoverHonorsTopK(t *testing.T) {
	t.Parallel()

	d, _ := newTestDiscoverer(t, nil, Config{TopK: 1})
	cands := d.Discover("Buscamos modelación de riesgos y planificación de auditorías internas.")

	if len(cands) > 1 {
		t.Fatalf("expected at most 1 candidate, got %v", terms(cands))
	}
}

func TestSaveCustomValidation(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	store := lexicon.NewStore(filepath.Join(t.TempDir(), "skills.json"), log)

	an := annotate.New(annotate.Config{Vectors: true, ExtraNouns: []string{"incidente"}})
	lex := lexicon.New(an, store, log)
	d := New(an, lex, skillness.New(an, lex), nil, Config{}, log)

	added, rejected, err := d.SaveCustom(store, []string{
		"gestión de incidentes",
		"un",
		"una frase demasiado larga para guardarse como skill valida aqui",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(added, "gestion de incidentes") {
		t.Fatalf("valid skill should be accepted, added=%v rejected=%v", added, rejected)
	}
	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejections, got %v", rejected)
	}

	skills := store.Load()
	if !contains(skills.Pending, "gestion de incidentes") {
		t.Fatalf("accepted skill must land in pending, got %v", skills.Pending)
	}
}

func TestSaveCustomSkipsKnown(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	store := lexicon.NewStore(filepath.Join(t.TempDir(), "skills.json"), log)
	an := annotate.New(annotate.Config{Vectors: true})
	lex := lexicon.New(an, store, log)
	d := New(an, lex, skillness.New(an, lex), nil, Config{}, log)

	added, rejected, err := d.SaveCustom(store, []string{"python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 0 || len(rejected) != 1 {
		t.Fatalf("seed term must be rejected, added=%v rejected=%v", added, rejected)
	}
}
