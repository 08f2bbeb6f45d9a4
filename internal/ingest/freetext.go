package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/learnbot/hrscreening/internal/extractor"
	"github.com/learnbot/hrscreening/internal/screenschema"
)

// FreetextAdapter converts an unstructured resume text blob — typically the
// markdown produced by internal/pdfmd.ExtractMarkdown for a candidate whose
// provider never shipped structured fields — into a best-effort
// CandidateProfile, reusing the teacher's section-splitting field
// extractors instead of a provider-specific JSON mapping.
type FreetextAdapter struct{}

// NewFreetextAdapter builds a FreetextAdapter.
func NewFreetextAdapter() *FreetextAdapter { return &FreetextAdapter{} }

func (a *FreetextAdapter) Provider() string { return "freetext" }

func (a *FreetextAdapter) CanHandle(blob []byte, metadata map[string]any) bool {
	if metadata == nil {
		return false
	}
	provider, _ := metadata["provider"].(string)
	return strings.EqualFold(provider, "freetext")
}

func (a *FreetextAdapter) SplitCandidates(text string) ([]string, error) {
	return []string{text}, nil
}

type freetextEnvelope struct {
	Provider    string `json:"provider"`
	CandidateID string `json:"candidate_id"`
	Text        string `json:"text"`
}

// ParseCandidate mines a CandidateProfile out of the envelope's raw resume
// text, using the same section-split-then-extract pipeline the teacher's
// ResumeParser.Parse runs over a PDF/DOCX's text, repointed at producing a
// screenschema.CandidateProfile instead of a ParsedResume.
func (a *FreetextAdapter) ParseCandidate(section string) (screenschema.CandidateProfile, error) {
	var env freetextEnvelope
	if err := json.Unmarshal([]byte(section), &env); err != nil {
		return screenschema.CandidateProfile{}, fmt.Errorf("freetext: decode envelope: %w", err)
	}
	if env.CandidateID == "" {
		return screenschema.CandidateProfile{}, fmt.Errorf("freetext: missing candidate_id")
	}

	sections := extractor.SplitSections(env.Text)
	personal := extractor.ExtractPersonalInfo(env.Text)

	expText := extractor.GetSectionText(sections, extractor.SectionExperience)
	education := extractor.ExtractEducation(extractor.GetSectionText(sections, extractor.SectionEducation))
	skills := extractor.ExtractSkills(extractor.GetSectionText(sections, extractor.SectionSkills))
	certs := extractor.ExtractCertifications(extractor.GetSectionText(sections, extractor.SectionCertifications))
	projects := extractor.ExtractProjects(extractor.GetSectionText(sections, extractor.SectionProjects))
	summary := strings.TrimSpace(extractor.GetSectionText(sections, extractor.SectionSummary))

	profile := screenschema.CandidateProfile{
		Provider:    "freetext",
		CandidateID: env.CandidateID,
		Experiences: convertExperiences(extractor.ExtractWorkExperience(expText)),
		Education:   convertEducation(education),
		Skills:      skills,
		Constraints: extractor.ExtractConstraints(env.Text),
		Notes:       buildNotes(summary, certs, projects),
		ProviderRaw: map[string]any{"text": env.Text},
	}
	if personal.Name != "" {
		profile.Name = strPtr(personal.Name)
	}
	if personal.Location != "" {
		profile.Location = strPtr(personal.Location)
	}
	if personal.Email != "" || personal.Phone != "" {
		contact := &screenschema.Contact{}
		if personal.Email != "" {
			contact.Email = strPtr(personal.Email)
		}
		if personal.Phone != "" {
			contact.Phone = strPtr(personal.Phone)
		}
		profile.Contact = contact
	}
	return profile, nil
}

func convertExperiences(in []extractor.WorkExperience) []screenschema.ExperienceEntry {
	out := make([]screenschema.ExperienceEntry, 0, len(in))
	for _, exp := range in {
		entry := screenschema.ExperienceEntry{
			Company: exp.Company,
			Title:   exp.Title,
			Summary: strings.Join(exp.Responsibilities, " "),
			Bullets: exp.Responsibilities,
		}
		if exp.StartDate != "" {
			entry.Start = strPtr(exp.StartDate)
		}
		switch {
		case exp.IsCurrent, strings.EqualFold(exp.EndDate, "present"), exp.EndDate == "":
			entry.End = strPtr("現在")
		default:
			entry.End = strPtr(exp.EndDate)
		}
		out = append(out, entry)
	}
	return out
}

func convertEducation(in []extractor.Education) []screenschema.EducationEntry {
	out := make([]screenschema.EducationEntry, 0, len(in))
	for _, edu := range in {
		entry := screenschema.EducationEntry{School: edu.Institution}
		if edu.Degree != "" {
			entry.Degree = strPtr(edu.Degree)
		}
		if edu.Field != "" {
			entry.Major = strPtr(edu.Field)
		}
		if edu.StartDate != "" {
			entry.Start = strPtr(edu.StartDate)
		}
		if edu.EndDate != "" {
			entry.End = strPtr(edu.EndDate)
		}
		out = append(out, entry)
	}
	return out
}

func buildNotes(summary string, certs []extractor.Certification, projects []extractor.Project) string {
	var sb strings.Builder
	if summary != "" {
		sb.WriteString(summary)
	}
	for _, c := range certs {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("certification: " + c.Name)
	}
	for _, p := range projects {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("project: " + p.Name + " " + p.Description)
	}
	return sb.String()
}

func strPtr(s string) *string { return &s }
