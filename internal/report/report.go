// Package report renders an analysis result for people (console text) and
// machines (JSON), and can dump the JSON form to a temporary file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spigell/ats-advisor/internal/ai"
	"github.com/spigell/ats-advisor/internal/analysis"
	"github.com/spigell/ats-advisor/internal/discover"
)

// Document bundles everything one analysis produced.
type Document struct {
	Analysis    *analysis.Result     `json:"analisis"`
	Discoveries []discover.Candidate `json:"habilidades_detectadas,omitempty"`
	AI          *AIVerdict           `json:"asesor_ai,omitempty"`
}

// AIVerdict is the JSON shape of the optional second opinion.
type AIVerdict struct {
	Fit    bool    `json:"ajusta"`
	Score  float64 `json:"puntaje"`
	Reason string  `json:"razon"`
	Advice string  `json:"consejo"`
}

// NewDocument assembles a report document.
func NewDocument(res *analysis.Result, cands []discover.Candidate, fit *ai.FitAssessment) *Document {
	doc := &Document{Analysis: res, Discoveries: cands}
	if fit != nil {
		doc.AI = &AIVerdict{Fit: fit.Fit, Score: fit.Score, Reason: fit.Reason, Advice: fit.Advice}
	}
	return doc
}

// Render produces the console report.
func (d *Document) Render() string {
	var b strings.Builder
	res := d.Analysis

	b.WriteString("=== Resultado del análisis ===\n\n")

	for _, cr := range res.Categories {
		fmt.Fprintf(&b, "Habilidades %s: %.0f%% (%d/%d)\n",
			strings.ToLower(cr.Name), cr.Score, len(cr.Matched), len(cr.Required))
		if len(cr.Matched) > 0 {
			fmt.Fprintf(&b, "  ✓ %s\n", strings.Join(cr.Matched, ", "))
		}
		if len(cr.Missing) > 0 {
			fmt.Fprintf(&b, "  ✗ %s\n", strings.Join(cr.Missing, ", "))
		}
	}

	fmt.Fprintf(&b, "\nCompatibilidad total: %.1f%% (%s)\n", res.Total, res.Band)

	if len(res.Requirements.Met) > 0 {
		b.WriteString("\nRequisitos cumplidos:\n")
		for _, m := range res.Requirements.Met {
			fmt.Fprintf(&b, "  ✓ %s\n", m)
		}
	}
	if len(res.Requirements.Unmet) > 0 {
		b.WriteString("\nRequisitos NO cumplidos:\n")
		for _, u := range res.Requirements.Unmet {
			fmt.Fprintf(&b, "  ✗ %s\n", u)
		}
	}
	if res.Excluded {
		b.WriteString("\n⚠ ALERTA: un ATS descartaría esta postulación por requisitos no cumplidos,\n")
		b.WriteString("  sin importar el puntaje de habilidades.\n")
	}

	if res.Misaligned {
		b.WriteString("\n⚠ El perfil parece de otra área: casi ninguna habilidad técnica ni de\n")
		b.WriteString("  experiencia coincide con la oferta.\n")
		if len(res.TopMissing) > 0 {
			fmt.Fprintf(&b, "  Principales faltantes: %s\n", strings.Join(res.TopMissing, ", "))
		}
	}

	if res.SuspiciousCV {
		b.WriteString("\n⚠ La hoja de vida parece una lista de palabras clave. Los ATS modernos\n")
		b.WriteString("  penalizan este formato; redacta logros en frases completas.\n")
	}

	if len(res.Suggestions) > 0 {
		b.WriteString("\nFormación sugerida:\n")
		for _, s := range res.Suggestions {
			fmt.Fprintf(&b, "  • %s\n", s)
		}
	}

	if len(d.Discoveries) > 0 {
		b.WriteString("\nPosibles habilidades nuevas detectadas en la oferta:\n")
		for _, c := range d.Discoveries {
			fmt.Fprintf(&b, "  • %s (%.2f)\n", c.Term, c.Score)
		}
	}

	if d.AI != nil {
		b.WriteString("\n=== Segunda opinión (AI) ===\n")
		verdict := "NO ajusta"
		if d.AI.Fit {
			verdict = "ajusta"
		}
		fmt.Fprintf(&b, "El asesor considera que el candidato %s (puntaje %.2f).\n", verdict, d.AI.Score)
		if d.AI.Reason != "" {
			fmt.Fprintf(&b, "Razón: %s\n", d.AI.Reason)
		}
		if d.AI.Advice != "" {
			fmt.Fprintf(&b, "Consejo: %s\n", d.AI.Advice)
		}
	}

	b.WriteString("\nRecomendaciones:\n")
	for _, r := range res.Recommendations {
		fmt.Fprintf(&b, "  • %s\n", r)
	}

	return b.String()
}

// JSON returns the machine-readable form.
func (d *Document) JSON() ([]byte, error) {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return raw, nil
}

// DumpToTmpFile writes the JSON report to a temporary file and returns its
// name.
func (d *Document) DumpToTmpFile() (string, error) {
	raw, err := d.JSON()
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "ats-advisor-*.json")
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(raw); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}
	return f.Name(), nil
}
