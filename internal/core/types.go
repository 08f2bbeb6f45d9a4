// Package core implements the ScreeningCore aggregation and gating layer
// (spec.md §4.7): it fans a candidate out across an ordered set of
// evaluators, merges their per-metric scores additively, computes the
// weighted pre-LLM score, evaluates hard gates, and renders a decision.
package core

import "github.com/learnbot/hrscreening/internal/screenschema"

// Context is the per-evaluation context threaded through every evaluator,
// mirroring the original's ctx = {"job": ...} ∪ context merge (spec.md §4.7
// "Aggregation").
type Context struct {
	Job screenschema.JobDescription

	// AsOf is the date Tenure uses to resolve "ongoing" experiences; nil
	// means Tenure falls back to its own injected NowFunc (time.Now unless
	// the caller supplied another).
	AsOf *string

	// JDKeywords is the optional context.jd_keywords override consulted
	// by JDKeywordMatcher after evaluation_overrides.jd_keywords and ahead
	// of the job.key_phrases / job.role_titles fallback.
	JDKeywords *JDKeywordGroups

	// EvaluationOverrides is job.evaluation_overrides merged with any
	// caller-supplied override map (caller wins on key collision), so a
	// JD-embedded override and a per-call override both reach the
	// evaluator that consults context.evaluation_overrides.
	EvaluationOverrides map[string]any
}

// JDKeywordGroups is the {must, nice[, nice_to_have]} keyword group shape
// consulted by JDKeywordMatcher.
type JDKeywordGroups struct {
	Must         []string
	Nice         []string
	NiceToHave   []string
}

// EvaluationResult is an evaluator's normalized output (spec.md §3).
type EvaluationResult struct {
	Method   string             `json:"method"`
	Scores   map[string]float64 `json:"scores"`
	Metadata map[string]any     `json:"metadata,omitempty"`
}

// Evaluator is the capability every screening evaluator exposes
// (spec.md §9 "Evaluator polymorphism").
type Evaluator interface {
	Evaluate(candidate screenschema.CandidateProfile, ctx Context) (EvaluationResult, error)
}

// AggregateScores is the merged, weighted view of every evaluator's scores.
type AggregateScores struct {
	Scores      map[string]float64 `json:"scores"`
	PreLLMScore float64            `json:"pre_llm_score"`
}

// Decision is one of the three terminal screening outcomes.
type Decision string

const (
	DecisionPass       Decision = "pass"
	DecisionBorderline Decision = "borderline"
	DecisionReject     Decision = "reject"
)

// DecisionSummary is the final gated decision plus its supporting detail.
type DecisionSummary struct {
	Decision        Decision       `json:"decision"`
	PreLLMScore     float64        `json:"pre_llm_score"`
	HardGateFlags   map[string]bool `json:"hard_gate_flags"`
	HardGateDetails map[string]any `json:"hard_gate_details"`
	HardFailures    []string       `json:"hard_failures"`
}

// ScreeningOutcome is the complete per-candidate evaluation payload.
type ScreeningOutcome struct {
	CandidateID string            `json:"candidate_id"`
	JobID       string            `json:"job_id"`
	Evaluations []EvaluationResult `json:"evaluations"`
	Aggregate   AggregateScores   `json:"aggregate"`
	Decision    DecisionSummary   `json:"decision"`
}
