package screenschema

import "fmt"

// ValidationError reports a malformed field in a candidate or job document,
// carrying enough location detail for the loader to report per-line errors
// (spec.md §7.1, "Schema validation").
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks required fields on CandidateProfile. It does not itself
// reject unknown nested JSON attributes — that invariant is enforced
// upstream, at decode time, by the JSON-decoding ingest adapters (see
// internal/ingest's decodeBizReachPayload, which decodes known top-level
// fields through a strict DisallowUnknownFields pass while preserving
// unrecognized top-level keys in Extra); Validate only asserts field-level
// shape invariants that survive that decoding.
func (c CandidateProfile) Validate() error {
	if c.Provider == "" {
		return &ValidationError{Field: "provider", Reason: "required"}
	}
	if c.CandidateID == "" {
		return &ValidationError{Field: "candidate_id", Reason: "required"}
	}
	for i, exp := range c.Experiences {
		if err := exp.validate(); err != nil {
			return fmt.Errorf("experiences[%d].%w", i, err)
		}
	}
	if c.DesiredSalaryMinJPY != nil && c.DesiredSalaryMaxJPY != nil &&
		*c.DesiredSalaryMinJPY > *c.DesiredSalaryMaxJPY {
		// Not an error: salary evaluator swaps reversed bounds itself.
		_ = struct{}{}
	}
	return nil
}

func (e ExperienceEntry) validate() error {
	// Date ordering is a tenure-time invariant, not a load-time rejection:
	// spec.md §3 says violators are "discarded by tenure but retained for
	// textual evaluators", so malformed date ordering must not fail
	// Validate.
	return nil
}

// Validate checks required fields on JobDescription.
func (j JobDescription) Validate() error {
	if j.JobID == "" {
		return &ValidationError{Field: "job_id", Reason: "required"}
	}
	return nil
}
