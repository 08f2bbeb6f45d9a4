// Package salary implements the Salary evaluator (spec.md §4.6): a
// tolerance-expanded range-overlap check between candidate desired salary
// and the job's posted salary band.
package salary

import (
	"github.com/learnbot/hrscreening/internal/core"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

const Method = "salary"

// Config holds the tunable salary-matching parameters.
type Config struct {
	ToleranceRatio float64 `yaml:"tolerance_ratio"`
}

// DefaultConfig returns the default salary configuration.
func DefaultConfig() Config {
	return Config{ToleranceRatio: 0.10}
}

// Evaluator is the Salary evaluator.
type Evaluator struct {
	config Config
}

// New builds an Evaluator; a zero-value Config falls back to DefaultConfig.
func New(config Config) *Evaluator {
	if config.ToleranceRatio == 0 {
		config = DefaultConfig()
	}
	return &Evaluator{config: config}
}

type salaryRange struct {
	Min *int
	Max *int
}

// Evaluate implements core.Evaluator.
func (e *Evaluator) Evaluate(candidate screenschema.CandidateProfile, ctx core.Context) (core.EvaluationResult, error) {
	toleranceRatio := e.resolveTolerance(ctx.EvaluationOverrides)
	desiredRange := candidateRange(candidate)
	jobRange := jobRangeFrom(ctx.Job)

	if desiredRange == nil || jobRange == nil {
		return buildResult(buildResponse{
			desiredRange:   desiredRange,
			jobRange:       jobRange,
			status:         "insufficient_data",
			message:        "insufficient_data",
			toleranceRatio: toleranceRatio,
			passScore:      ptrFloat(0.5),
		}), nil
	}

	expandedMin, expandedMax := expandJobRange(*jobRange, toleranceRatio)
	expanded := salaryRange{Min: intFromFloat(expandedMin), Max: intFromFloat(expandedMax)}

	passes := rangesOverlap(*desiredRange, expandedMin, expandedMax)
	overlapSpan := overlapSpanOf(*desiredRange, expandedMin, expandedMax)
	gap := gapAmount(desiredRange, jobRange)

	status := "out_of_range"
	if passes {
		status = "within_tolerance"
	}

	return buildResult(buildResponse{
		desiredRange:    desiredRange,
		jobRange:        jobRange,
		expandedRange:   &expanded,
		overlapSpan:     overlapSpan,
		status:          status,
		gap:             gap,
		toleranceRatio:  toleranceRatio,
		passes:          passes,
	}), nil
}

func (e *Evaluator) resolveTolerance(overrides map[string]any) float64 {
	raw, ok := overrides["salary"]
	if !ok {
		return e.config.ToleranceRatio
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return e.config.ToleranceRatio
	}
	if v, ok := m["tolerance_ratio"]; ok {
		switch vv := v.(type) {
		case float64:
			return vv
		case float32:
			return float64(vv)
		case int:
			return float64(vv)
		}
	}
	return e.config.ToleranceRatio
}

func candidateRange(candidate screenschema.CandidateProfile) *salaryRange {
	minimum := candidate.DesiredSalaryMinJPY
	maximum := candidate.DesiredSalaryMaxJPY
	if minimum == nil && maximum == nil {
		return nil
	}
	if minimum == nil {
		minimum = maximum
	}
	if maximum == nil {
		maximum = minimum
	}
	if *minimum > *maximum {
		minimum, maximum = maximum, minimum
	}
	return &salaryRange{Min: minimum, Max: maximum}
}

func jobRangeFrom(job screenschema.JobDescription) *salaryRange {
	if job.Constraints.SalaryRange == nil {
		return nil
	}
	return &salaryRange{Min: job.Constraints.SalaryRange.MinJPY, Max: job.Constraints.SalaryRange.MaxJPY}
}

func expandJobRange(jobRange salaryRange, toleranceRatio float64) (*float64, *float64) {
	var expandedMin, expandedMax *float64
	if jobRange.Min != nil {
		v := float64(*jobRange.Min) * (1 - toleranceRatio)
		expandedMin = &v
	}
	if jobRange.Max != nil {
		v := float64(*jobRange.Max) * (1 + toleranceRatio)
		expandedMax = &v
	}
	return expandedMin, expandedMax
}

func rangesOverlap(candidate salaryRange, expandedJobMin, expandedJobMax *float64) bool {
	var lowerBound, upperBound *float64
	if expandedJobMin != nil {
		lowerBound = expandedJobMin
	} else if candidate.Min != nil {
		v := float64(*candidate.Min)
		lowerBound = &v
	}
	if expandedJobMax != nil {
		upperBound = expandedJobMax
	} else if candidate.Max != nil {
		v := float64(*candidate.Max)
		upperBound = &v
	}
	if lowerBound == nil || upperBound == nil {
		return true
	}
	return float64(*candidate.Max) >= *lowerBound && float64(*candidate.Min) <= *upperBound
}

func overlapSpanOf(candidate salaryRange, expandedJobMin, expandedJobMax *float64) *float64 {
	if candidate.Min == nil || candidate.Max == nil {
		return nil
	}
	candMin := float64(*candidate.Min)
	candMax := float64(*candidate.Max)

	low := candMin
	if expandedJobMin != nil && *expandedJobMin > low {
		low = *expandedJobMin
	}
	high := candMax
	if expandedJobMax != nil && *expandedJobMax < high {
		high = *expandedJobMax
	}
	if high < low {
		return nil
	}
	span := high - low
	return &span
}

func gapAmount(candidate, job *salaryRange) *int {
	if candidate == nil || job == nil {
		return nil
	}
	if candidate.Min == nil || candidate.Max == nil || job.Min == nil || job.Max == nil {
		return nil
	}
	if *candidate.Max < *job.Min {
		gap := *job.Min - *candidate.Max
		return &gap
	}
	if *candidate.Min > *job.Max {
		gap := *candidate.Min - *job.Max
		return &gap
	}
	zero := 0
	return &zero
}

type buildResponse struct {
	desiredRange   *salaryRange
	jobRange       *salaryRange
	expandedRange  *salaryRange
	overlapSpan    *float64
	message        string
	status         string
	gap            *int
	toleranceRatio float64
	passScore      *float64
	passes         bool
}

func buildResult(r buildResponse) core.EvaluationResult {
	passScore := 0.0
	if r.passScore != nil {
		passScore = *r.passScore
	} else if r.passes {
		passScore = 1.0
	}

	span := 0.0
	if r.overlapSpan != nil {
		span = *r.overlapSpan
	}

	return core.EvaluationResult{
		Method: Method,
		Scores: map[string]float64{
			"salary_pass":         passScore,
			"salary_overlap_span": span,
		},
		Metadata: map[string]any{
			"desired_range":       rangeOrNil(r.desiredRange),
			"job_range":           rangeOrNil(r.jobRange),
			"expanded_job_range":  rangeOrNil(r.expandedRange),
			"overlap_span":        r.overlapSpan,
			"tolerance_ratio":     r.toleranceRatio,
			"message":             r.message,
			"status":              r.status,
			"gap_amount":          r.gap,
		},
	}
}

func rangeOrNil(r *salaryRange) any {
	if r == nil {
		return nil
	}
	return map[string]any{"min": r.Min, "max": r.Max}
}

func ptrFloat(v float64) *float64 { return &v }

func intFromFloat(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
