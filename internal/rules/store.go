package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Store loads the rules file from disk and merges it over the defaults.
type Store struct {
	path string
	log  *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load returns the effective rule set: the user file merged additively over
// the defaults. A missing file means pure defaults. A corrupt file is
// reported and replaced by the defaults, never fatal.
func (s *Store) Load() RuleSet {
	base := defaultRuleSet()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("cannot read rules file, using defaults", zap.String("path", s.path), zap.Error(err))
		}
		return base
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("rules file is not valid json, using defaults", zap.String("path", s.path), zap.Error(err))
		return base
	}

	var user RuleSet
	if err := mapstructure.Decode(doc, &user); err != nil {
		s.log.Warn("rules file has unexpected shape, using defaults", zap.String("path", s.path), zap.Error(err))
		return base
	}

	return merge(base, user)
}

// merge overlays user rules on the defaults. Rules match by id; a matching
// user rule only overrides fields it actually sets, so partial entries stay
// functional. Unknown ids are appended. Top-level knobs replace the default
// only when the user file provides them.
func merge(base, user RuleSet) RuleSet {
	byID := make(map[string]int, len(base.Rules))
	for i, r := range base.Rules {
		byID[r.ID] = i
	}
	for _, ur := range user.Rules {
		if ur.ID == "" {
			continue
		}
		i, ok := byID[ur.ID]
		if !ok {
			base.Rules = append(base.Rules, ur)
			byID[ur.ID] = len(base.Rules) - 1
			continue
		}
		base.Rules[i] = fillRule(base.Rules[i], ur)
	}

	if user.ExperienceRegex != "" {
		base.ExperienceRegex = user.ExperienceRegex
	}
	if len(user.KnowledgePrefixes) > 0 {
		base.KnowledgePrefixes = user.KnowledgePrefixes
	}
	if len(user.KnowledgeSectionHeaders) > 0 {
		base.KnowledgeSectionHeaders = user.KnowledgeSectionHeaders
	}
	if len(user.BulletMarkers) > 0 {
		base.BulletMarkers = user.BulletMarkers
	}
	if user.CanonicalTokenCap > 0 {
		base.CanonicalTokenCap = user.CanonicalTokenCap
	}
	return base
}

func fillRule(def, user Rule) Rule {
	out := user
	if out.Label == "" {
		out.Label = def.Label
	}
	if out.Type == "" {
		out.Type = def.Type
	}
	if out.Lang == "" {
		out.Lang = def.Lang
	}
	if len(out.TriggerAny) == 0 {
		out.TriggerAny = def.TriggerAny
	}
	if len(out.RequireAny) == 0 {
		out.RequireAny = def.RequireAny
	}
	if len(out.CVAny) == 0 {
		out.CVAny = def.CVAny
	}
	if out.LevelRegex == "" {
		out.LevelRegex = def.LevelRegex
	}
	if len(out.LevelSynonyms) == 0 {
		out.LevelSynonyms = def.LevelSynonyms
	}
	return out
}

// LearnedStore counts requirement tags the engine reported as unmet, so
// recurring gaps surface across runs. Same json-counter layout as the noise
// store.
type LearnedStore struct {
	path   string
	log    *zap.Logger
	counts map[string]int
}

func NewLearnedStore(path string, log *zap.Logger) *LearnedStore {
	s := &LearnedStore{path: path, log: log, counts: map[string]int{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(raw, &s.counts); err != nil {
		s.log.Warn("learned requirements file is corrupt, starting empty", zap.String("path", path), zap.Error(err))
		s.counts = map[string]int{}
	}
	return s
}

// Learn bumps the counter of every unmet tag and persists.
func (s *LearnedStore) Learn(tags []string) {
	if len(tags) == 0 {
		return
	}
	for _, t := range tags {
		s.counts[t]++
	}
	s.flush()
}

// Top returns the most frequent unmet tags, count descending then tag.
func (s *LearnedStore) Top(n int) []string {
	tags := make([]string, 0, len(s.counts))
	for t := range s.counts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if s.counts[tags[i]] != s.counts[tags[j]] {
			return s.counts[tags[i]] > s.counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if n > 0 && len(tags) > n {
		tags = tags[:n]
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = fmt.Sprintf("%s (%d)", t, s.counts[t])
	}
	return out
}

func (s *LearnedStore) flush() {
	raw, err := json.MarshalIndent(s.counts, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.log.Warn("cannot persist learned requirements", zap.String("path", s.path), zap.Error(err))
	}
}
