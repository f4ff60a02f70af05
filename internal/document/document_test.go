package document

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir(), zaptest.NewLogger(t))
	if got := s.Load(filepath.Join(t.TempDir(), "absent.txt")); got != "" {
		t.Fatalf("missing file must yield empty text, got %q", got)
	}
}

func TestLoadTrimsContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "oferta.txt")
	if err := os.WriteFile(path, []byte("  Se busca analista.  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir, zaptest.NewLogger(t))
	if got := s.Load(path); got != "Se busca analista." {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestLastPairRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewStore(dir, zaptest.NewLogger(t))

	s.SaveLast("oferta original", "cv original")
	if got := s.LastOffer(); got != "oferta original" {
		t.Fatalf("unexpected last offer: %q", got)
	}
	if got := s.LastCV(); got != "cv original" {
		t.Fatalf("unexpected last cv: %q", got)
	}

	// empty texts must not clobber the stored pair
	s.SaveLast("", "")
	if got := s.LastOffer(); got != "oferta original" {
		t.Fatalf("empty save overwrote the last offer: %q", got)
	}
}

func TestLastEmptyWhenNeverSaved(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir(), zaptest.NewLogger(t))
	if s.LastOffer() != "" || s.LastCV() != "" {
		t.Fatal("expected empty last pair in a fresh dir")
	}
}
