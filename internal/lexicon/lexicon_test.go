package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/spigell/ats-advisor/internal/annotate"
)

func testAnnotator() *annotate.Annotator {
	return annotate.New(annotate.Config{Vectors: true})
}

func TestCategoryMetadata(t *testing.T) {
	t.Parallel()

	var sum float64
	for _, cat := range Categories {
		if cat.Key() == "desconocida" {
			t.Fatalf("category %d has no key", cat)
		}
		sum += cat.Weight()
	}
	if sum != 1.0 {
		t.Fatalf("weights should sum to 1, got %f", sum)
	}
	if Technical.Weight() <= Experience.Weight() || Experience.Weight() <= Soft.Weight() {
		t.Fatal("expected technical > experience > soft weights")
	}
}

func TestSnapshotLookups(t *testing.T) {
	t.Parallel()

	snap := buildSnapshot(testAnnotator(), CustomSkills{})

	if !snap.Contains(Technical, "python") {
		t.Fatal("seed term python missing from technical bucket")
	}
	if !snap.Contains(Technical, "Machine Learning") {
		t.Fatal("lookup should fold case")
	}
	if cat, ok := snap.CategoryOf("liderazgo"); !ok || cat != Soft {
		t.Fatalf("expected liderazgo in soft, got %v %v", cat, ok)
	}
	if cat, ok := snap.CategoryOf("scrum"); !ok || cat != Experience {
		t.Fatalf("expected scrum in experience, got %v %v", cat, ok)
	}
	if _, ok := snap.CategoryOf("astrología"); ok {
		t.Fatal("unknown term should not resolve")
	}
}

func TestSnapshotSelfMapping(t *testing.T) {
	t.Parallel()

	snap := buildSnapshot(testAnnotator(), CustomSkills{})

	surfaces := snap.Surfaces("gestion de proyectos")
	found := false
	for _, s := range surfaces {
		if s == "gestion de proyectos" {
			found = true
		}
	}
	if !found {
		t.Fatalf("raw term should map to itself, got %v", surfaces)
	}
	if !snap.KnownLemma("python") {
		t.Fatal("seed token lemma should be indexed")
	}
}

func TestSnapshotIncludesCustomSkills(t *testing.T) {
	t.Parallel()

	snap := buildSnapshot(testAnnotator(), CustomSkills{
		Technical: []string{"Terraform"},
		Soft:      []string{"escucha activa"},
	})

	if !snap.Contains(Technical, "terraform") {
		t.Fatal("custom technical term missing")
	}
	if cat, ok := snap.CategoryOf("escucha activa"); !ok || cat != Soft {
		t.Fatalf("custom soft term missing, got %v %v", cat, ok)
	}
}

func TestBestCategoryDegradedMode(t *testing.T) {
	t.Parallel()

	an := annotate.New(annotate.Config{Vectors: false})
	snap := buildSnapshot(an, CustomSkills{})
	if _, best, _ := snap.BestCategory("gestión de proyectos"); best != 0 {
		t.Fatalf("degraded mode similarity should be 0, got %f", best)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "skills_custom.json"), zaptest.NewLogger(t))
	got := store.Load()
	if len(got.Technical)+len(got.Soft)+len(got.Experience)+len(got.Pending) != 0 {
		t.Fatalf("expected empty buckets, got %+v", got)
	}
}

func TestStoreLegacyMigration(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "skills_custom.json")
	if err := os.WriteFile(path, []byte(`["Terraform", "ANSIBLE", "terraform"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, zaptest.NewLogger(t))
	got := store.Load()
	want := []string{"ansible", "terraform"}
	if len(got.Technical) != len(want) {
		t.Fatalf("expected %v, got %v", want, got.Technical)
	}
	for i := range want {
		if got.Technical[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got.Technical)
		}
	}

	// migration must rewrite the file in the new shape
	second := store.Load()
	if len(second.Technical) != 2 || len(second.Pending) != 0 {
		t.Fatalf("migrated file did not round-trip: %+v", second)
	}
}

func TestStoreCorruptReset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "skills_custom.json")
	if err := os.WriteFile(path, []byte(`{"tecnicas": [broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, zaptest.NewLogger(t))
	got := store.Load()
	if len(got.Technical) != 0 {
		t.Fatalf("expected reset store, got %+v", got)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) == `{"tecnicas": [broken` {
		t.Fatal("corrupt file should have been rewritten")
	}
}

func TestLexiconRebuildSwapsSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "skills_custom.json")
	store := NewStore(path, zaptest.NewLogger(t))
	lex := New(testAnnotator(), store, zaptest.NewLogger(t))

	before := lex.Snapshot()
	if before.Contains(Technical, "terraform") {
		t.Fatal("terraform should not exist yet")
	}

	if err := store.Save(CustomSkills{Technical: []string{"terraform"}}); err != nil {
		t.Fatal(err)
	}
	lex.Rebuild()

	if !lex.Snapshot().Contains(Technical, "terraform") {
		t.Fatal("rebuilt snapshot should contain terraform")
	}
	if before.Contains(Technical, "terraform") {
		t.Fatal("old snapshot must stay immutable")
	}
}
