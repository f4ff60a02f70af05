package skillness

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/lexicon"
)

func testScorer(t *testing.T) *Scorer {
	t.Helper()
	an := annotate.New(annotate.Config{Vectors: true})
	lex := lexicon.New(an, nil, zaptest.NewLogger(t))
	return New(an, lex)
}

func TestCleanPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		expect string
	}{
		{"la gestión de proyectos", "gestion de proyectos"},
		{"los las equipos", "equipos"},
		{"  Python  ", "python"},
		{"la", ""},
	}
	for _, tt := range tests {
		if got := CleanPhrase(tt.input); got != tt.expect {
			t.Fatalf("CleanPhrase(%q): expected %q, got %q", tt.input, tt.expect, got)
		}
	}
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phrase string
		expect bool
	}{
		{"gestión de proyectos", true},
		{"análisis de datos financieros", true},
		{"planificación estratégica", true},
		{"metodologías ágiles", true},
		{"orquestación", true},
		{"orquestación de campañas", true},
		{"innovación tecnológica", true},
		{"equipo de ventas", false},
		{"con experiencia", false},
	}
	for _, tt := range tests {
		if got := MatchesPattern(tt.phrase); got != tt.expect {
			t.Fatalf("MatchesPattern(%q): expected %v, got %v", tt.phrase, tt.expect, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	s := testScorer(t)
	for _, phrase := range []string{
		"gestión de proyectos", "python", "la empresa", "impacto",
		"liderazgo de equipos", "zzz qqq",
	} {
		got := s.Score(phrase)
		if got < 0 || got > 1 {
			t.Fatalf("Score(%q) out of range: %f", phrase, got)
		}
	}
}

func TestScoreHardRejections(t *testing.T) {
	t.Parallel()

	s := testScorer(t)
	for _, phrase := range []string{
		"", "   ", "gestión", "servicios", "operación",
		"con experiencia previa", "para el cargo",
	} {
		if got := s.Score(phrase); got != 0 {
			t.Fatalf("Score(%q): expected 0, got %f", phrase, got)
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	t.Parallel()

	s := testScorer(t)

	strong := s.Score("gestión de proyectos")
	generic := s.Score("la empresa")
	if strong <= generic {
		t.Fatalf("pattern phrase (%f) should outscore generic noun (%f)", strong, generic)
	}
	if strong < DefaultThreshold {
		t.Fatalf("canonical skill phrase should clear the base threshold, got %f", strong)
	}

	penalized := s.Score("impacto de valores")
	if penalized >= strong {
		t.Fatalf("generic-noun phrase (%f) should score below skill phrase (%f)", penalized, strong)
	}
}
