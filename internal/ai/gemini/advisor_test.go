package gemini

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/ai"
)

type stubGenerator struct {
	response    string
	err         error
	lastSystem  string
	lastMessage string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, message string) (string, error) {
	s.lastSystem = system
	s.lastMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testRequest() *ai.Request {
	return &ai.Request{
		Offer:    "Se busca analista de datos con Python.",
		CV:       "Analista con 3 años de experiencia en Python.",
		Findings: `{"compatibilidad": 80}`,
	}
}

func TestAdvisorAssess(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: `{"fit": true, "score": 0.9, "reason": "Cubre lo esencial", "advice": "Destaca tus proyectos"}`}
	advisor := NewAdvisor(stub, zap.NewNop(), 0.5, 0)

	assessment, err := advisor.Assess(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.Fit {
		t.Fatal("expected fit to be true")
	}
	if assessment.Score != 0.9 {
		t.Fatalf("expected score 0.9, got %v", assessment.Score)
	}
	if assessment.Advice != "Destaca tus proyectos" {
		t.Fatalf("unexpected advice: %s", assessment.Advice)
	}
	if assessment.Reason == "" {
		t.Fatal("expected reason to be populated")
	}

	if stub.lastSystem == "" {
		t.Fatal("expected the embedded system prompt to be sent")
	}
	if !strings.Contains(stub.lastMessage, `"oferta"`) || !strings.Contains(stub.lastMessage, `"analisis_local"`) {
		t.Fatalf("payload missing fields: %s", stub.lastMessage)
	}
}

func TestAdvisorAppliesThreshold(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: `{"fit": true, "score": 0.3, "reason": "Perfil junior", "advice": "Gana experiencia"}`}
	advisor := NewAdvisor(stub, zap.NewNop(), 0.5, 0)

	assessment, err := advisor.Assess(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.Fit {
		t.Fatal("expected fit to be false due to threshold")
	}
}

func TestAdvisorRejectsEmptyTexts(t *testing.T) {
	t.Parallel()

	advisor := NewAdvisor(&stubGenerator{}, zap.NewNop(), 0, 0)
	if _, err := advisor.Assess(context.Background(), &ai.Request{Offer: "", CV: "algo"}); err == nil {
		t.Fatal("expected error for empty offer")
	}
}

func TestAdvisorInvalidFindingsBecomeNull(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{response: `{"fit": false, "score": 0.1, "reason": "r", "advice": "a"}`}
	advisor := NewAdvisor(stub, zap.NewNop(), 0, 0)

	req := testRequest()
	req.Findings = "{broken"
	if _, err := advisor.Assess(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stub.lastMessage, `"analisis_local": null`) {
		t.Fatalf("invalid findings should serialize as null, got %s", stub.lastMessage)
	}
}

func TestParseResponseHandlesCodeBlock(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"fit\": true, \"score\": \"0.8\", \"reason\": \"Bien\", \"advice\": \"Sigue\"}\n```"
	assessment, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !assessment.Fit || assessment.Score != 0.8 {
		t.Fatalf("unexpected assessment: %+v", assessment)
	}
}
