// Package rules implements the declarative hard-requirements engine. Rules
// live in a JSON file the user can edit; defaults are merged in additively
// by id so an incomplete file never loses capabilities. A rule that fails to
// evaluate is skipped, never fatal for the whole evaluation.
package rules

// Rule is one declarative requirement. TriggerAny activates the rule when
// any entry occurs in the posting; RequireAny is an optional second gate
// against false positives; CVAny is the evidence looked up in the CV.
type Rule struct {
	ID         string   `json:"id" mapstructure:"id"`
	Label      string   `json:"label" mapstructure:"label"`
	Type       string   `json:"type" mapstructure:"type"`
	Lang       string   `json:"lang,omitempty" mapstructure:"lang"`
	TriggerAny []string `json:"trigger_any" mapstructure:"trigger_any"`
	RequireAny []string `json:"require_any,omitempty" mapstructure:"require_any"`
	CVAny      []string `json:"cv_any,omitempty" mapstructure:"cv_any"`

	// language-only fields
	LevelRegex    string            `json:"level_regex,omitempty" mapstructure:"level_regex"`
	LevelSynonyms map[string]string `json:"level_synonyms,omitempty" mapstructure:"level_synonyms"`
}

// Rule types understood by the engine. Everything not listed evaluates as a
// generic trigger/evidence rule.
const (
	TypeLanguage   = "language"
	TypeProfession = "profession"
	TypeSector     = "sector"
	TypeTool       = "tool"
	TypeKnowledge  = "knowledge"
	TypeProcess    = "process"
	TypeRole       = "role"
	TypeDegree     = "degree"
)

// RuleSet is the on-disk shape of the rules file.
type RuleSet struct {
	Rules []Rule `json:"rules" mapstructure:"rules"`

	ExperienceRegex         string   `json:"experience_regex" mapstructure:"experience_regex"`
	KnowledgePrefixes       []string `json:"knowledge_prefixes" mapstructure:"knowledge_prefixes"`
	KnowledgeSectionHeaders []string `json:"knowledge_section_headers" mapstructure:"knowledge_section_headers"`
	BulletMarkers           []string `json:"bullet_markers" mapstructure:"bullet_markers"`

	// CanonicalTokenCap limits how many significant tokens a free-text
	// requirement keeps when no canonical pattern applies.
	CanonicalTokenCap int `json:"canonical_token_cap" mapstructure:"canonical_token_cap"`
}

// Result is the outcome of a requirements evaluation. Excluded mirrors what
// an ATS would do: any unmet hard requirement discards the application
// regardless of the skill score.
type Result struct {
	Met      []string `json:"cumple"`
	Unmet    []string `json:"no_cumple"`
	Excluded bool     `json:"alerta"`
}
