// Package screenschema defines the provider-neutral candidate and job
// description schema consumed by the screening core, along with the
// validation rules that keep evaluator input shapes predictable.
package screenschema

// CandidateProfile is the provider-neutral résumé record every evaluator
// consumes. Unknown top-level JSON attributes are preserved verbatim in
// Extra rather than discarded; unknown nested attributes are rejected at
// decode time by the JSON-decoding ingest adapters, not by this type or by
// Validate (see internal/ingest's decodeBizReachPayload).
type CandidateProfile struct {
	Provider    string   `json:"provider"`
	CandidateID string   `json:"candidate_id"`
	Name        *string  `json:"name,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	Age         *int     `json:"age,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Contact     *Contact `json:"contact,omitempty"`

	Experiences []ExperienceEntry      `json:"experiences,omitempty"`
	Education   []EducationEntry       `json:"education,omitempty"`
	Skills      []string               `json:"skills,omitempty"`
	Languages   []LanguageProficiency  `json:"languages,omitempty"`

	DesiredSalaryMinJPY *int `json:"desired_salary_min_jpy,omitempty"`
	DesiredSalaryMaxJPY *int `json:"desired_salary_max_jpy,omitempty"`

	Constraints *CandidateConstraints      `json:"constraints,omitempty"`
	SkillsAgg   map[string]SkillAggregate  `json:"skills_agg,omitempty"`
	Notes       string                     `json:"notes,omitempty"`
	ProviderRaw map[string]any             `json:"provider_raw,omitempty"`

	// Extra preserves unknown top-level attributes verbatim, matching
	// the original's extra="allow" behaviour on CandidateProfile.
	Extra map[string]any `json:"-"`
}

// Contact holds optional contact channels.
type Contact struct {
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ExperienceEntry is a single employment history record.
//
// Invariant: if both Start and End are present and parseable, Start <= End.
// Violators are discarded by the Tenure evaluator but retained for the
// lexical evaluators (bm25 proximity, embedding similarity, JD matching),
// which read raw text regardless of date validity.
type ExperienceEntry struct {
	Company        string   `json:"company"`
	Title          string   `json:"title"`
	Start          *string  `json:"start,omitempty"` // "YYYY-MM"
	End            *string  `json:"end,omitempty"`   // "YYYY-MM" or "現在" or absent
	EmploymentType *string  `json:"employment_type,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
}

// IsOngoing reports whether End is absent or the literal "現在" sentinel.
func (e ExperienceEntry) IsOngoing() bool {
	return e.End == nil || *e.End == "現在"
}

// EducationEntry is a single educational qualification.
type EducationEntry struct {
	School string  `json:"school,omitempty"`
	Major  *string `json:"major,omitempty"`
	Degree *string `json:"degree,omitempty"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
}

// LanguageProficiency is a language + optional self-reported level.
type LanguageProficiency struct {
	Language string  `json:"language"`
	Level    *string `json:"level,omitempty"`
}

// SkillAggregate carries optional tenure metadata per skill.
type SkillAggregate struct {
	Years    *float64 `json:"years,omitempty"`
	LastUsed *string  `json:"last_used,omitempty"`
}

// CandidateConstraints are candidate-declared hard constraints.
type CandidateConstraints struct {
	Language    []string `json:"language,omitempty"`
	Location    []string `json:"location,omitempty"`
	Visa        *string  `json:"visa,omitempty"`
	CanRelocate *bool    `json:"can_relocate,omitempty"`
	RemoteOK    *bool    `json:"remote_ok,omitempty"`
}

// JobDescription is the provider-neutral job description schema.
type JobDescription struct {
	JobID            string            `json:"job_id"`
	Locale           *string           `json:"locale,omitempty"`
	RoleTitles       []string          `json:"role_titles,omitempty"`
	RequirementsText []string          `json:"requirements_text,omitempty"`
	KeyPhrases       []string          `json:"key_phrases,omitempty"`
	Constraints      JobConstraints    `json:"constraints"`
	EvaluationOverrides map[string]any `json:"evaluation_overrides,omitempty"`
}

// JobConstraints are the job's hard requirements.
type JobConstraints struct {
	Language    []string     `json:"language,omitempty"`
	Location    []string     `json:"location,omitempty"`
	Visa        *string      `json:"visa,omitempty"`
	SalaryRange *SalaryRange `json:"salary_range,omitempty"`
}

// SalaryRange bounds a yen salary band. Either bound may be absent.
type SalaryRange struct {
	MinJPY *int `json:"min_jpy,omitempty"`
	MaxJPY *int `json:"max_jpy,omitempty"`
}
