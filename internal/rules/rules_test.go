package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	log := zaptest.NewLogger(t)
	learned := NewLearnedStore(filepath.Join(t.TempDir(), "learned.json"), log)
	return New(defaultRuleSet(), learned, log)
}

func hasEntry(list []string, substr string) bool {
	for _, e := range list {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestMergeFillsMissingFields(t *testing.T) {
	t.Parallel()

	user := RuleSet{Rules: []Rule{{ID: "lang_english", TriggerAny: []string{"english only"}}}}
	merged := merge(defaultRuleSet(), user)

	var got Rule
	for _, r := range merged.Rules {
		if r.ID == "lang_english" {
			got = r
			break
		}
	}
	if len(got.TriggerAny) != 1 || got.TriggerAny[0] != "english only" {
		t.Fatalf("user trigger should win, got %v", got.TriggerAny)
	}
	if got.Label == "" || got.LevelRegex == "" || len(got.LevelSynonyms) == 0 {
		t.Fatalf("default fields should fill the gaps, got %+v", got)
	}
}

func TestMergeAppendsUnknownRules(t *testing.T) {
	t.Parallel()

	user := RuleSet{Rules: []Rule{{
		ID: "custom_cert", Label: "Certificación PMP requerida", Type: TypeKnowledge,
		TriggerAny: []string{"pmp"}, CVAny: []string{"pmp"},
	}}}
	merged := merge(defaultRuleSet(), user)
	if len(merged.Rules) != len(defaultRules())+1 {
		t.Fatalf("expected one appended rule, got %d rules", len(merged.Rules))
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "absent.json"), zaptest.NewLogger(t))
	set := s.Load()
	if len(set.Rules) != len(defaultRules()) {
		t.Fatalf("missing file must yield defaults, got %d rules", len(set.Rules))
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	set := NewStore(path, zaptest.NewLogger(t)).Load()
	if len(set.Rules) != len(defaultRules()) {
		t.Fatal("corrupt file must fall back to defaults")
	}
}

func TestStoreLoadMergesUserFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.json")
	body := `{"rules": [{"id": "tool_sap", "label": "SAP S/4HANA requerido"}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	set := NewStore(path, zaptest.NewLogger(t)).Load()
	for _, r := range set.Rules {
		if r.ID == "tool_sap" {
			if r.Label != "SAP S/4HANA requerido" {
				t.Fatalf("user label should override, got %q", r.Label)
			}
			if len(r.TriggerAny) == 0 {
				t.Fatal("default triggers should survive a partial user rule")
			}
			return
		}
	}
	t.Fatal("tool_sap rule disappeared after merge")
}

func TestLanguageLevelComparison(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cv    string
		unmet bool
	}{
		{"higher level passes", "Inglés C1 certificado.", false},
		{"equal level passes", "Nivel de inglés B2.", false},
		{"lower level fails", "Inglés básico A2.", true},
		{"no mention fails", "Experiencia en ventas.", true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := newTestEngine(t).Evaluate("Se requiere inglés B2.", tc.cv)
			if got := hasEntry(res.Unmet, "Inglés"); got != tc.unmet {
				t.Fatalf("unmet=%v, want %v (unmet list: %v)", got, tc.unmet, res.Unmet)
			}
		})
	}
}

func TestLanguageWithoutLevelNeedsOnlyMention(t *testing.T) {
	t.Parallel()

	res := newTestEngine(t).Evaluate("Deseable inglés.", "Manejo de inglés conversacional.")
	if hasEntry(res.Unmet, "Inglés") {
		t.Fatalf("mention should satisfy a level-less requirement, got %v", res.Unmet)
	}
}

func TestDomainYearsRequirement(t *testing.T) {
	t.Parallel()

	offer := "Requisitos:\nMínimo 5 años de experiencia en mercadeo digital."

	res := newTestEngine(t).Evaluate(offer, "Tengo 8 años de experiencia en marketing y campañas.")
	if hasEntry(res.Unmet, "mercadeo") {
		t.Fatalf("marketing evidence should satisfy the domain, got %v", res.Unmet)
	}

	res = newTestEngine(t).Evaluate(offer, "Desarrollador backend con énfasis en microservicios.")
	if !hasEntry(res.Unmet, "Experiencia mínima de 5 años en mercadeo/marketing") {
		t.Fatalf("expected domain years unmet, got %v", res.Unmet)
	}
	if !res.Excluded {
		t.Fatal("unmet hard requirement must exclude")
	}
}

func TestStrongRoleWithoutYears(t *testing.T) {
	t.Parallel()

	offer := "Buscamos Gerente Comercial para la región."
	res := newTestEngine(t).Evaluate(offer, "Perfil técnico en desarrollo de software.")
	if !hasEntry(res.Unmet, "comercial") {
		t.Fatalf("senior commercial title should demand commercial experience, got %v", res.Unmet)
	}
}

func TestGenericYearsFallback(t *testing.T) {
	t.Parallel()

	offer := "Se requieren 3 años de experiencia para el cargo."

	res := newTestEngine(t).Evaluate(offer, "Cuento con 5 años de experiencia profesional.")
	if hasEntry(res.Unmet, "Experiencia mínima requerida") {
		t.Fatalf("enough years should pass, got %v", res.Unmet)
	}

	res = newTestEngine(t).Evaluate(offer, "Recién egresado con prácticas universitarias.")
	if !hasEntry(res.Unmet, "Experiencia mínima requerida: 3 años") {
		t.Fatalf("expected generic years unmet, got %v", res.Unmet)
	}
}

func TestRequireAnyGuard(t *testing.T) {
	t.Parallel()

	// "producción" alone must not fire the plant-operations sector rule
	res := newTestEngine(t).Evaluate("Producción de contenido audiovisual.", "Editor de video.")
	if hasEntry(res.Unmet, "planta") {
		t.Fatalf("require_any guard should hold, got %v", res.Unmet)
	}
}

func TestProfessionRule(t *testing.T) {
	t.Parallel()

	offer := "IPS requiere médico general para consulta externa."

	res := newTestEngine(t).Evaluate(offer, "Médico con tarjeta profesional vigente.")
	if hasEntry(res.Unmet, "Medicina") {
		t.Fatalf("medical evidence should satisfy, got %v", res.Unmet)
	}

	res = newTestEngine(t).Evaluate(offer, "Administrador de empresas.")
	if !hasEntry(res.Unmet, "Medicina") {
		t.Fatalf("expected profession unmet, got %v", res.Unmet)
	}
}

func TestFreeTextKnowledgeCapture(t *testing.T) {
	t.Parallel()

	offer := "Conocimientos técnicos:\n• Experiencia en scrum y kanban\n• Manejo de SAP avanzado"

	res := newTestEngine(t).Evaluate(offer, "Scrum master certificado, metodologías ágiles.")
	if hasEntry(res.Unmet, "metodologías ágiles") {
		t.Fatalf("agile evidence should satisfy, got %v", res.Unmet)
	}
	if !hasEntry(res.Unmet, "Conocimiento requerido: sap avanzado") {
		t.Fatalf("expected sap knowledge unmet, got %v", res.Unmet)
	}
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Gestión de proyectos: con énfasis en entregas", "gestión de proyectos"},
		{"Project Management avanzado", "gestión de proyectos"},
		{"experiencia con Scrum", "metodologías ágiles"},
		{"Orquestación de proyectos multidisciplinarios", "orquestación de proyectos"},
		{"OKRs trimestrales", "okr"},
		{"manejo de herramientas ofimáticas modernas", "manejo herramientas ofimaticas modernas"},
	}
	e := newTestEngine(t)
	for _, tc := range cases {
		if got := e.canonicalize(tc.in); got != tc.want {
			t.Fatalf("canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalTokenCapConfigurable(t *testing.T) {
	t.Parallel()

	set := defaultRuleSet()
	set.CanonicalTokenCap = 2
	e := New(set, nil, zaptest.NewLogger(t))

	got := e.canonicalize("manejo de herramientas ofimáticas modernas corporativas")
	if got != "manejo herramientas" {
		t.Fatalf("expected the cap to keep two tokens, got %q", got)
	}
}

func TestManufacturaNeedsPlantEvidence(t *testing.T) {
	t.Parallel()

	// the sector word alone must not fire the rule
	res := newTestEngine(t).Evaluate(
		"Importante empresa del sector manufactura busca auxiliar administrativo.",
		"Contador público con experiencia en auditoría.",
	)
	if hasEntry(res.Unmet, "manufactura") {
		t.Fatalf("rule fired without planta/fabrica evidence: %v", res.Unmet)
	}

	res = newTestEngine(t).Evaluate(
		"Se requiere experiencia en planta de producción y manufactura.",
		"Contador público con experiencia en auditoría.",
	)
	if !hasEntry(res.Unmet, "sector manufactura") {
		t.Fatalf("expected the sector requirement unmet, got %v", res.Unmet)
	}
}

func TestCVContainsTolerance(t *testing.T) {
	t.Parallel()

	cv := "lidere la gestion integral de varios proyectos regionales"
	if !cvContains(cv, "gestion de proyectos") {
		t.Fatal("two significant tokens present should count as evidence")
	}
	if cvContains(cv, "auditoria forense") {
		t.Fatal("absent tag must not match")
	}
}

func TestMetDefaultMessage(t *testing.T) {
	t.Parallel()

	res := newTestEngine(t).Evaluate("Vacante para asistente administrativo.", "Asistente administrativo con buena actitud.")
	if res.Excluded {
		t.Fatalf("nothing triggered, must not exclude: %v", res.Unmet)
	}
	if !hasEntry(res.Met, "Cumple con requisitos básicos del cargo") {
		t.Fatalf("expected default met message, got %v", res.Met)
	}
}

func TestLearnedStorePersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "learned.json")
	log := zaptest.NewLogger(t)

	s := NewLearnedStore(path, log)
	s.Learn([]string{"Inglés requerido (nivel B2)", "Conocimiento requerido: sap"})
	s.Learn([]string{"Inglés requerido (nivel B2)"})

	reloaded := NewLearnedStore(path, log)
	top := reloaded.Top(1)
	if len(top) != 1 || !strings.Contains(top[0], "Inglés requerido (nivel B2) (2)") {
		t.Fatalf("expected english gap on top with count 2, got %v", top)
	}
}

func TestUnmetDeduplicated(t *testing.T) {
	t.Parallel()

	// scrum appears twice in the posting; the canonical tag must appear once
	offer := "Conocimientos técnicos:\n• scrum diario\n• scrum de escalado"
	res := newTestEngine(t).Evaluate(offer, "Contador público.")

	seen := 0
	for _, u := range res.Unmet {
		if strings.Contains(u, "metodologías ágiles") {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected exactly one agile tag, got %d in %v", seen, res.Unmet)
	}
}
