// Package jdmatcher implements the JDKeywordMatcher evaluator (spec.md
// §4.4): a rule-based must/nice keyword coverage check against the
// candidate's searchable text, with substring-then-fuzzy matching.
package jdmatcher

import (
	"strings"

	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/fuzzy"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

const Method = "jd_rule"

// Config holds the tunable JD-matching parameters.
type Config struct {
	MinSimilarity float64 `yaml:"min_similarity"`
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() Config {
	return Config{MinSimilarity: 60.0}
}

// Evaluator is the JDKeywordMatcher evaluator.
type Evaluator struct {
	config Config
}

// New builds an Evaluator; a zero-value Config falls back to DefaultConfig.
func New(config Config) *Evaluator {
	if config.MinSimilarity == 0 {
		config.MinSimilarity = DefaultConfig().MinSimilarity
	}
	return &Evaluator{config: config}
}

// Evaluate implements core.Evaluator.
func (e *Evaluator) Evaluate(candidate screenschema.CandidateProfile, ctx core.Context) (core.EvaluationResult, error) {
	overrides := jdKeywordOverrides(ctx.EvaluationOverrides)

	mustKeywords, niceKeywords, niceToHaveKeywords := e.extractKeywords(ctx, overrides)
	corpus := buildCorpus(candidate)

	mustHits := e.matchKeywords(corpus, mustKeywords)
	niceHits := e.matchKeywords(corpus, niceKeywords)
	niceToHaveHits := e.matchKeywords(corpus, niceToHaveKeywords)

	mustCoverage := coverageRatio(mustKeywords, mustHits)
	niceCoverage := coverageRatio(niceKeywords, niceHits)

	mustUnique := len(uniqueStrings(mustHits))
	niceUnique := len(uniqueStrings(niceHits))
	niceToHaveUnique := len(uniqueStrings(niceToHaveHits))

	weights := overrideWeights(overrides)
	mustWeight := 0.0
	if len(mustKeywords) > 0 {
		mustWeight = weights.must
	}
	niceWeight := 0.0
	if len(niceKeywords) > 0 {
		niceWeight = weights.nice
	}
	niceToHaveWeight := 0.0
	if len(niceToHaveKeywords) > 0 {
		niceToHaveWeight = weights.niceToHave
	}

	var weightedSum, totalWeight float64
	if mustWeight != 0 {
		weightedSum += mustWeight * (float64(mustUnique) / float64(len(mustKeywords)))
		totalWeight += mustWeight
	}
	if niceWeight != 0 {
		weightedSum += niceWeight * (float64(niceUnique) / float64(len(niceKeywords)))
		totalWeight += niceWeight
	}
	if niceToHaveWeight != 0 {
		weightedSum += niceToHaveWeight * (float64(niceToHaveUnique) / float64(len(niceToHaveKeywords)))
		totalWeight += niceToHaveWeight
	}

	score := 0.0
	if totalWeight > 0 {
		score = weightedSum / totalWeight
	}
	score = clamp01(score)

	jdPass := 0.0
	if score > 0 {
		jdPass = 1.0
	}

	titleBonus := 0.0
	if niceUnique > 0 {
		titleBonus = overrideTitleBonus(overrides)
	}

	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{
			"jd_must_coverage": mustCoverage,
			"jd_nice_coverage": niceCoverage,
			"jd_pass":          jdPass,
			"embed_sim":        score,
			"bm25_prox":        score,
			"sim_title":        niceCoverage,
			"title_bonus":      titleBonus,
		},
		Metadata: map[string]any{
			"must_keywords":         mustKeywords,
			"nice_keywords":         niceKeywords,
			"nice_to_have_keywords": niceToHaveKeywords,
			"must_hits":             mustHits,
			"nice_hits":             niceHits,
			"nice_to_have_hits":     niceToHaveHits,
			"corpus_size":           len(corpus),
			"min_similarity":        e.config.MinSimilarity,
			"weights":               map[string]float64{"must": mustWeight, "nice": niceWeight, "nice_to_have": niceToHaveWeight},
			"title_bonus":           titleBonus,
		},
	}, nil
}

// extractKeywords pulls each must/nice/nice_to_have group from, in order of
// precedence, evaluation_overrides.jd_keywords, context.jd_keywords, or
// (for must and nice only) job.key_phrases / job.role_titles as a fallback.
// nice_to_have has no positional fallback — it is only ever populated via
// context or override.
func (e *Evaluator) extractKeywords(ctx core.Context, overrides map[string]any) ([]string, []string, []string) {
	var must, nice, niceToHave []string

	if v, ok := overrides["must"]; ok {
		must = toStringSlice(v)
	} else if ctx.JDKeywords != nil && len(ctx.JDKeywords.Must) > 0 {
		must = ctx.JDKeywords.Must
	} else {
		must = ctx.Job.KeyPhrases
	}

	if v, ok := overrides["nice"]; ok {
		nice = toStringSlice(v)
	} else if ctx.JDKeywords != nil && len(ctx.JDKeywords.Nice) > 0 {
		nice = ctx.JDKeywords.Nice
	} else {
		nice = ctx.Job.RoleTitles
	}

	if v, ok := overrides["nice_to_have"]; ok {
		niceToHave = toStringSlice(v)
	} else if ctx.JDKeywords != nil && len(ctx.JDKeywords.NiceToHave) > 0 {
		niceToHave = ctx.JDKeywords.NiceToHave
	}

	return trimNonEmpty(must), trimNonEmpty(nice), trimNonEmpty(niceToHave)
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		trimmed := strings.TrimSpace(s)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func buildCorpus(candidate screenschema.CandidateProfile) []string {
	var corpus []string
	corpus = append(corpus, candidate.Skills...)
	for _, lang := range candidate.Languages {
		corpus = append(corpus, lang.Language)
	}
	for _, exp := range candidate.Experiences {
		if exp.Title != "" {
			corpus = append(corpus, exp.Title)
		}
		if exp.Summary != "" {
			corpus = append(corpus, exp.Summary)
		}
		corpus = append(corpus, exp.Bullets...)
	}
	if candidate.Notes != "" {
		corpus = append(corpus, candidate.Notes)
	}

	out := make([]string, 0, len(corpus))
	for _, text := range corpus {
		if text != "" {
			out = append(out, strings.ToLower(text))
		}
	}
	return out
}

func (e *Evaluator) matchKeywords(corpus []string, keywords []string) []string {
	var matches []string
	for _, keyword := range keywords {
		keywordLower := strings.ToLower(keyword)
		for _, text := range corpus {
			if strings.Contains(text, keywordLower) {
				matches = append(matches, keyword)
				break
			}
			if fuzzy.TokenSetRatio(keywordLower, text) >= e.config.MinSimilarity {
				matches = append(matches, keyword)
				break
			}
		}
	}
	return matches
}

func coverageRatio(keywords []string, hits []string) float64 {
	total := len(keywords)
	if total == 0 {
		return 1.0
	}
	return float64(len(uniqueStrings(hits))) / float64(total)
}

func uniqueStrings(in []string) map[string]bool {
	set := make(map[string]bool, len(in))
	for _, s := range in {
		set[s] = true
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type jdWeights struct {
	must       float64
	nice       float64
	niceToHave float64
}

// overrideWeights resolves the {must, nice, nice_to_have} weight triple.
// The default nice weight is 0.75 (not the original evaluator's 0.5) — see
// DESIGN.md's jd_rule entry for the resolved discrepancy.
func overrideWeights(overrides map[string]any) jdWeights {
	w := jdWeights{must: 1.0, nice: 0.75, niceToHave: 0.5}
	raw, ok := overrides["weights"]
	if !ok {
		return w
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return w
	}
	if v, ok := m["must"]; ok {
		if f, ok := toFloat(v); ok {
			w.must = f
		}
	}
	if v, ok := m["nice"]; ok {
		if f, ok := toFloat(v); ok {
			w.nice = f
		}
	}
	if v, ok := m["nice_to_have"]; ok {
		if f, ok := toFloat(v); ok {
			w.niceToHave = f
		}
	}
	return w
}

func overrideTitleBonus(overrides map[string]any) float64 {
	if v, ok := overrides["title_bonus"]; ok {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return 0.1
}

func jdKeywordOverrides(evaluationOverrides map[string]any) map[string]any {
	raw, ok := evaluationOverrides["jd_keywords"]
	if !ok {
		return map[string]any{}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}

func toStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func toFloat(v any) (float64, bool) {
	switch vv := v.(type) {
	case float64:
		return vv, true
	case float32:
		return float64(vv), true
	case int:
		return float64(vv), true
	default:
		return 0, false
	}
}
