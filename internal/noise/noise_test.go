package noise

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "noise_terms.json"), DefaultThreshold, zaptest.NewLogger(t))
}

func TestMarkAndExcluded(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for i := 0; i < DefaultThreshold-1; i++ {
		s.Mark("nuestro equipo")
	}
	if _, ok := s.Excluded()["nuestro equipo"]; ok {
		t.Fatal("term below threshold must not be excluded")
	}

	s.Mark("nuestro equipo")
	if _, ok := s.Excluded()["nuestro equipo"]; !ok {
		t.Fatal("term at threshold should be excluded")
	}
}

func TestMarkFoldsTerms(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Mark("  Postúlate ")
	s.Mark("postulate")

	top := s.Top(10)
	if len(top) != 1 || top[0].Term != "postulate" || top[0].Count != 2 {
		t.Fatalf("expected one folded counter with count 2, got %v", top)
	}
}

func TestLowerThresholdGrowsExclusions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Mark("somos")
	s.Mark("somos")

	before := len(s.Excluded())
	s.SetThreshold(2)
	after := len(s.Excluded())
	if after < before {
		t.Fatalf("lowering threshold shrank exclusions: %d -> %d", before, after)
	}
	if _, ok := s.Excluded()["somos"]; !ok {
		t.Fatal("somos should be excluded at threshold 2")
	}
}

func TestForget(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Mark("plataforma")
	if !s.Forget("Plataforma") {
		t.Fatal("expected forget to report removal")
	}
	if s.Forget("plataforma") {
		t.Fatal("second forget should report absence")
	}
	if len(s.Top(10)) != 0 {
		t.Fatal("store should be empty after forget")
	}
}

func TestTopOrdering(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.Mark("beta")
	s.Mark("alfa")
	s.Mark("alfa")

	top := s.Top(2)
	if len(top) != 2 || top[0].Term != "alfa" || top[1].Term != "beta" {
		t.Fatalf("unexpected ordering: %v", top)
	}
}

func TestPersistenceAcrossLoads(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "noise_terms.json")
	log := zaptest.NewLogger(t)

	s := NewStore(path, DefaultThreshold, log)
	s.Mark("somos")
	s.Mark("somos")

	reloaded := NewStore(path, DefaultThreshold, log)
	top := reloaded.Top(5)
	if len(top) != 1 || top[0].Count != 2 {
		t.Fatalf("expected persisted count 2, got %v", top)
	}
}

func TestCorruptFileResets(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "noise_terms.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path, DefaultThreshold, zaptest.NewLogger(t))
	if len(s.Top(5)) != 0 {
		t.Fatal("corrupt file should load as empty")
	}
}
