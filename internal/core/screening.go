package core

import (
	"errors"
	"sort"
	"strings"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

// ErrEvaluatorContract is returned when an evaluator's result is missing
// its method name or its score map — an evaluator contract violation per
// spec.md §7.3, fatal for that candidate.
var ErrEvaluatorContract = errors.New("evaluator result missing method")

// DefaultWeights are the score_weights used when ScreeningCore is built
// without an explicit override (spec.md §4.7 "Weighted score").
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		"bm25_prox":  0.45,
		"embed_sim":  0.40,
		"sim_title":  0.10,
		"title_bonus": 0.05,
	}
}

// Thresholds are the score bands used to render a decision once hard gates
// pass (spec.md §4.7 "Decision").
type Thresholds struct {
	Pass       float64
	Borderline float64
	Reject     float64
}

// DefaultThresholds are {pass: 0.80, borderline: 0.65, reject: 0.0}.
func DefaultThresholds() Thresholds {
	return Thresholds{Pass: 0.80, Borderline: 0.65, Reject: 0.0}
}

// languageAliases folds a free-form language string to a stable code,
// per spec.md §4.7 "language_ok".
var languageAliases = map[string]string{
	"日本語":        "ja",
	"にほんご":       "ja",
	"japanese":    "ja",
	"jp":          "ja",
	"ja":          "ja",
	"英語":         "en",
	"えいご":        "en",
	"english":     "en",
	"en":          "en",
}

func normalizeLanguage(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := languageAliases[lower]; ok {
		return alias
	}
	// strings.ToLower leaves the CJK keys (日本語, にほんご, 英語, えいご)
	// unchanged, so the lookup above already matches them; the raw trimmed
	// form is checked once more as a fallback.
	trimmed := strings.TrimSpace(s)
	if alias, ok := languageAliases[trimmed]; ok {
		return alias
	}
	return lower
}

// visaSentinels match any required visa value (spec.md §4.7 "visa_ok").
var visaSentinels = map[string]bool{"ok": true, "valid": true, "yes": true}

// ScreeningCore coordinates evaluators and aggregates scoring decisions.
type ScreeningCore struct {
	evaluators []Evaluator
	weights    map[string]float64
	thresholds Thresholds
}

// Option configures a ScreeningCore at construction time.
type Option func(*ScreeningCore)

// WithWeights overrides the default score weights.
func WithWeights(weights map[string]float64) Option {
	return func(c *ScreeningCore) {
		if weights != nil {
			c.weights = weights
		}
	}
}

// WithThresholds overrides the default decision thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *ScreeningCore) { c.thresholds = t }
}

// New builds a ScreeningCore over an ordered sequence of evaluators.
// Evaluator order is preserved exactly as given (spec.md §5); aggregation
// itself is a commutative sum, so reordering evaluators cannot change
// PreLLMScore, only the positional order of Evaluations.
func New(evaluators []Evaluator, opts ...Option) *ScreeningCore {
	c := &ScreeningCore{
		evaluators: append([]Evaluator(nil), evaluators...),
		weights:    DefaultWeights(),
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate runs every registered evaluator against candidate and job,
// merges their score maps additively, computes the weighted pre-LLM score,
// evaluates hard gates, and renders a ScreeningOutcome.
func (c *ScreeningCore) Evaluate(
	candidate screenschema.CandidateProfile,
	job screenschema.JobDescription,
	extra Context,
) (ScreeningOutcome, error) {
	ctx := extra
	ctx.Job = job
	ctx.EvaluationOverrides = mergeOverrides(job.EvaluationOverrides, extra.EvaluationOverrides)

	evaluations := make([]EvaluationResult, 0, len(c.evaluators))
	aggregated := make(map[string]float64)

	for _, evaluator := range c.evaluators {
		result, err := evaluator.Evaluate(candidate, ctx)
		if err != nil {
			return ScreeningOutcome{}, err
		}
		if result.Method == "" {
			return ScreeningOutcome{}, ErrEvaluatorContract
		}
		if result.Scores == nil {
			return ScreeningOutcome{}, ErrEvaluatorContract
		}
		evaluations = append(evaluations, result)
		for key, value := range result.Scores {
			aggregated[key] += value
		}
	}

	preLLMScore := c.weightedScore(aggregated)
	aggregate := AggregateScores{Scores: aggregated, PreLLMScore: preLLMScore}

	gateFlags, gateDetails := c.evaluateHardGates(candidate, job)
	hardFailures := failedGateLabels(gateFlags)

	decision := DecisionSummary{
		Decision:        c.decide(preLLMScore, hardFailures),
		PreLLMScore:     preLLMScore,
		HardGateFlags:   gateFlags,
		HardGateDetails: gateDetails,
		HardFailures:    hardFailures,
	}

	return ScreeningOutcome{
		CandidateID: candidate.CandidateID,
		JobID:       job.JobID,
		Evaluations: evaluations,
		Aggregate:   aggregate,
		Decision:    decision,
	}, nil
}

func (c *ScreeningCore) weightedScore(scores map[string]float64) float64 {
	var total float64
	for metric, weight := range c.weights {
		total += scores[metric] * weight
	}
	return total
}

func (c *ScreeningCore) decide(score float64, hardFailures []string) Decision {
	if len(hardFailures) > 0 {
		return DecisionReject
	}
	if score >= c.thresholds.Pass {
		return DecisionPass
	}
	if score >= c.thresholds.Borderline {
		return DecisionBorderline
	}
	return DecisionReject
}

// gateLabel maps a gate key to its hard_failures label; the label set is
// exactly {language, location, visa, salary} (spec.md §8 invariant).
var gateLabel = map[string]string{
	"language_ok": "language",
	"location_ok": "location",
	"visa_ok":     "visa",
	"salary_ok":   "salary",
}

func failedGateLabels(flags map[string]bool) []string {
	var failures []string
	for key, ok := range flags {
		if !ok {
			failures = append(failures, gateLabel[key])
		}
	}
	sort.Strings(failures)
	return failures
}

func (c *ScreeningCore) evaluateHardGates(
	candidate screenschema.CandidateProfile,
	job screenschema.JobDescription,
) (map[string]bool, map[string]any) {
	constraints := job.Constraints

	languageOK, languageDetail := evaluateLanguageGate(candidate, constraints)
	locationOK, locationDetail := evaluateLocationGate(candidate, constraints)
	visaOK, visaDetail := evaluateVisaGate(candidate, constraints)
	salaryOK, salaryDetail := evaluateSalaryGate(candidate, constraints)

	flags := map[string]bool{
		"language_ok": languageOK,
		"location_ok": locationOK,
		"visa_ok":     visaOK,
		"salary_ok":   salaryOK,
	}
	details := map[string]any{
		"language": languageDetail,
		"location": locationDetail,
		"visa":     visaDetail,
		"salary":   salaryDetail,
	}
	return flags, details
}

func evaluateLanguageGate(
	candidate screenschema.CandidateProfile,
	constraints screenschema.JobConstraints,
) (bool, map[string]any) {
	if len(constraints.Language) == 0 {
		return true, map[string]any{"status": "not_required"}
	}
	required := make(map[string]bool, len(constraints.Language))
	for _, lang := range constraints.Language {
		required[normalizeLanguage(lang)] = true
	}
	var matched []string
	for _, lang := range candidate.Languages {
		norm := normalizeLanguage(lang.Language)
		if required[norm] {
			matched = append(matched, lang.Language)
		}
	}
	ok := len(matched) > 0
	status := "ok"
	if !ok {
		status = "no_match"
	}
	return ok, map[string]any{
		"status":             status,
		"required_languages": constraints.Language,
		"matched_languages":  matched,
	}
}

func evaluateLocationGate(
	candidate screenschema.CandidateProfile,
	constraints screenschema.JobConstraints,
) (bool, map[string]any) {
	if len(constraints.Location) == 0 {
		return true, map[string]any{"status": "not_required"}
	}
	candidateLocation := ""
	if candidate.Location != nil {
		candidateLocation = strings.ToLower(strings.TrimSpace(*candidate.Location))
	}
	var matched string
	ok := false
	for _, loc := range constraints.Location {
		if strings.ToLower(strings.TrimSpace(loc)) == candidateLocation && candidateLocation != "" {
			ok = true
			matched = loc
			break
		}
	}
	status := "ok"
	if !ok {
		status = "no_match"
	}
	detail := map[string]any{
		"status":             status,
		"required_locations": constraints.Location,
		"candidate_location":  candidateLocation,
	}
	if matched != "" {
		detail["matched_location"] = matched
	}
	return ok, detail
}

func evaluateVisaGate(
	candidate screenschema.CandidateProfile,
	constraints screenschema.JobConstraints,
) (bool, map[string]any) {
	if constraints.Visa == nil || strings.TrimSpace(*constraints.Visa) == "" {
		return true, map[string]any{"status": "not_required"}
	}
	required := strings.ToLower(strings.TrimSpace(*constraints.Visa))

	var candidateVisa string
	if candidate.Constraints != nil && candidate.Constraints.Visa != nil {
		candidateVisa = strings.ToLower(strings.TrimSpace(*candidate.Constraints.Visa))
	}

	ok := visaSentinels[candidateVisa] || candidateVisa == required
	status := "ok"
	if !ok {
		status = "no_match"
	}
	return ok, map[string]any{
		"status":          status,
		"required_visa":   required,
		"candidate_visa":  candidateVisa,
	}
}

func evaluateSalaryGate(
	candidate screenschema.CandidateProfile,
	constraints screenschema.JobConstraints,
) (bool, map[string]any) {
	if constraints.SalaryRange == nil {
		return true, map[string]any{"status": "not_specified"}
	}
	minRequired := constraints.SalaryRange.MinJPY
	maxRequired := constraints.SalaryRange.MaxJPY
	if minRequired == nil && maxRequired == nil {
		return true, map[string]any{"status": "not_specified"}
	}

	desiredMin := candidate.DesiredSalaryMinJPY
	desiredMax := candidate.DesiredSalaryMaxJPY

	detail := map[string]any{
		"required_range":    map[string]any{"min": minRequired, "max": maxRequired},
		"candidate_desired": map[string]any{"min": desiredMin, "max": desiredMax},
	}

	if desiredMin == nil && desiredMax == nil {
		detail["status"] = "insufficient_candidate_data"
		return true, detail
	}

	if desiredMin != nil && maxRequired != nil && *desiredMin > *maxRequired {
		detail["status"] = "above_required_max"
		return false, detail
	}
	if desiredMax != nil && minRequired != nil && *desiredMax < *minRequired {
		detail["status"] = "below_required_min"
		return false, detail
	}

	detail["status"] = "ok"
	return true, detail
}

func mergeOverrides(jobOverrides, callerOverrides map[string]any) map[string]any {
	merged := make(map[string]any, len(jobOverrides)+len(callerOverrides))
	for k, v := range jobOverrides {
		merged[k] = v
	}
	for k, v := range callerOverrides {
		merged[k] = v
	}
	return merged
}
