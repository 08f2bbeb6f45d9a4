package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

// BizReachAdapter converts BizReach-shaped JSON payloads into
// CandidateProfile, grounded on the original adapters/bizreach.py: either
// a {"provider": "bizreach", "payload": {...}} envelope, or a bare
// top-level payload for backward compatibility.
type BizReachAdapter struct{}

// NewBizReachAdapter builds a BizReachAdapter.
func NewBizReachAdapter() *BizReachAdapter { return &BizReachAdapter{} }

// Provider implements Adapter.
func (a *BizReachAdapter) Provider() string { return "bizreach" }

// CanHandle implements Adapter.
func (a *BizReachAdapter) CanHandle(blob []byte, metadata map[string]any) bool {
	if provider, ok := metadata["provider"].(string); ok && strings.EqualFold(provider, a.Provider()) {
		return true
	}
	var data map[string]any
	if err := json.Unmarshal(blob, &data); err != nil {
		return false
	}
	provider, _ := data["provider"].(string)
	return strings.EqualFold(provider, a.Provider())
}

// SplitCandidates implements Adapter: one line is one candidate record.
func (a *BizReachAdapter) SplitCandidates(text string) ([]string, error) {
	return []string{text}, nil
}

type bizReachPayload struct {
	CandidateID         string                              `json:"candidate_id"`
	Name                *string                             `json:"name"`
	DesiredSalaryMinJPY *int                                `json:"desired_salary_min_jpy"`
	DesiredSalaryMaxJPY *int                                `json:"desired_salary_max_jpy"`
	Experiences         []bizReachExperience                `json:"experiences"`
	Skills              []string                            `json:"skills"`
	Languages           []bizReachLanguage                  `json:"languages"`
	Education           []bizReachEducation                 `json:"education"`
	Constraints         *screenschema.CandidateConstraints `json:"constraints"`
}

type bizReachExperience struct {
	Company        string   `json:"company"`
	Title          string   `json:"title"`
	Start          *string  `json:"start"`
	End            *string  `json:"end"`
	EmploymentType *string  `json:"employment_type"`
	Summary        string   `json:"summary"`
	Bullets        []string `json:"bullets"`
}

type bizReachLanguage struct {
	Language string  `json:"language"`
	Level    *string `json:"level"`
}

type bizReachEducation struct {
	School string  `json:"school"`
	Major  *string `json:"major"`
	Degree *string `json:"degree"`
	Start  *string `json:"start"`
	End    *string `json:"end"`
}

// bizReachKnownFields names every top-level key bizReachPayload decodes.
// Anything else at the top level is preserved verbatim in
// CandidateProfile.Extra rather than rejected, matching the original's
// extra="allow" behaviour on the candidate envelope; nested objects inside
// the known fields (experiences[], education[], and so on) get no such
// leniency — decodeBizReachPayload rejects unknown nested attributes.
var bizReachKnownFields = map[string]bool{
	"candidate_id":           true,
	"name":                   true,
	"desired_salary_min_jpy": true,
	"desired_salary_max_jpy": true,
	"experiences":            true,
	"skills":                 true,
	"languages":              true,
	"education":              true,
	"constraints":            true,
}

// decodeBizReachPayload splits raw into known top-level fields (decoded
// strictly, with DisallowUnknownFields rejecting any unrecognized nested
// attribute) and unknown top-level fields (decoded loosely into extra, to be
// preserved rather than discarded).
func decodeBizReachPayload(raw json.RawMessage) (bizReachPayload, map[string]any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return bizReachPayload{}, nil, err
	}

	known := make(map[string]json.RawMessage, len(fields))
	var extra map[string]any
	for key, value := range fields {
		if bizReachKnownFields[key] {
			known[key] = value
			continue
		}
		if key == "provider" || key == "payload" {
			// Envelope metadata, not a candidate attribute: present when the
			// caller sends a bare (unenveloped) payload whose top level
			// mixes envelope and candidate keys together.
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return bizReachPayload{}, nil, fmt.Errorf("decode unknown field %q: %w", key, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = v
	}

	knownJSON, err := json.Marshal(known)
	if err != nil {
		return bizReachPayload{}, nil, err
	}

	var payload bizReachPayload
	dec := json.NewDecoder(bytes.NewReader(knownJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return bizReachPayload{}, nil, fmt.Errorf("strict decode: %w", err)
	}
	return payload, extra, nil
}

// ParseCandidate implements Adapter.
func (a *BizReachAdapter) ParseCandidate(section string) (screenschema.CandidateProfile, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(section), &envelope); err != nil {
		return screenschema.CandidateProfile{}, fmt.Errorf("invalid bizreach payload: %w", err)
	}

	raw, ok := envelope["payload"]
	if !ok {
		raw = json.RawMessage(section)
	}

	payload, extra, err := decodeBizReachPayload(raw)
	if err != nil {
		return screenschema.CandidateProfile{}, fmt.Errorf("invalid bizreach payload: %w", err)
	}

	experiences := make([]screenschema.ExperienceEntry, 0, len(payload.Experiences))
	for _, item := range payload.Experiences {
		experiences = append(experiences, screenschema.ExperienceEntry{
			Company:        item.Company,
			Title:          item.Title,
			Start:          item.Start,
			End:            item.End,
			EmploymentType: item.EmploymentType,
			Summary:        item.Summary,
			Bullets:        item.Bullets,
		})
	}

	languages := make([]screenschema.LanguageProficiency, 0, len(payload.Languages))
	for _, lang := range payload.Languages {
		languages = append(languages, screenschema.LanguageProficiency{Language: lang.Language, Level: lang.Level})
	}

	education := make([]screenschema.EducationEntry, 0, len(payload.Education))
	for _, item := range payload.Education {
		education = append(education, screenschema.EducationEntry{
			School: item.School,
			Major:  item.Major,
			Degree: item.Degree,
			Start:  item.Start,
			End:    item.End,
		})
	}

	return screenschema.CandidateProfile{
		Provider:            a.Provider(),
		CandidateID:         payload.CandidateID,
		Name:                payload.Name,
		DesiredSalaryMinJPY: payload.DesiredSalaryMinJPY,
		DesiredSalaryMaxJPY: payload.DesiredSalaryMaxJPY,
		Experiences:         experiences,
		Skills:              payload.Skills,
		Languages:           languages,
		Education:           education,
		Constraints:         payload.Constraints,
		Extra:               extra,
	}, nil
}
