package extractor

import (
	"regexp"
	"strings"

	"github.com/learnbot/hrscreening/internal/screenschema"
)

var (
	visaStatusRe = regexp.MustCompile(`(?i)(?:visa\s+status|work\s+authorization|authorized\s+to\s+work)[\s:]+([A-Za-z0-9 ,.\-]{2,60})`)

	relocateYesRe = regexp.MustCompile(`(?i)\b(?:willing|open|able)\s+to\s+relocate\b`)
	relocateNoRe  = regexp.MustCompile(`(?i)\b(?:not\s+willing|not\s+able|unable|unwilling)\s+to\s+relocate\b|\bno\s+relocation\b`)

	remoteYesRe = regexp.MustCompile(`(?i)\b(?:remote[\s\-]ok(?:ay)?|open\s+to\s+remote|fully\s+remote|remote[\s\-]first)\b`)
	remoteNoRe  = regexp.MustCompile(`(?i)\b(?:on[\s\-]?site\s+only|no\s+remote|not\s+open\s+to\s+remote)\b`)

	languageFluentRe = regexp.MustCompile(`(?i)\b(native|fluent|business[\s\-]level|conversational)\s+([A-Za-z]+)\b`)
)

// known spoken/written languages a résumé might state fluency in; kept
// separate from the technical/soft skill ontology since these describe the
// candidate rather than a tool they used.
var knownLanguages = map[string]bool{
	"english": true, "japanese": true, "mandarin": true, "cantonese": true,
	"spanish": true, "french": true, "german": true, "korean": true,
	"portuguese": true, "italian": true, "vietnamese": true, "thai": true,
	"tagalog": true, "hindi": true, "arabic": true, "russian": true,
}

// ExtractConstraints scans free résumé text for visa, work-location, and
// language-fluency signals, producing the same CandidateConstraints shape
// the structured BizReach adapter populates from its own "constraints"
// field. Returns nil when nothing relevant is found, matching the adapter's
// omitempty convention for candidates with no declared constraints.
func ExtractConstraints(text string) *screenschema.CandidateConstraints {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c := &screenschema.CandidateConstraints{}
	found := false

	if m := visaStatusRe.FindStringSubmatch(text); len(m) > 1 {
		visa := strings.TrimSpace(strings.Trim(m[1], ".,; "))
		if visa != "" {
			c.Visa = &visa
			found = true
		}
	}

	switch {
	case relocateNoRe.MatchString(text):
		v := false
		c.CanRelocate = &v
		found = true
	case relocateYesRe.MatchString(text):
		v := true
		c.CanRelocate = &v
		found = true
	}

	switch {
	case remoteNoRe.MatchString(text):
		v := false
		c.RemoteOK = &v
		found = true
	case remoteYesRe.MatchString(text):
		v := true
		c.RemoteOK = &v
		found = true
	}

	for _, m := range languageFluentRe.FindAllStringSubmatch(text, -1) {
		lang := strings.ToLower(strings.TrimSpace(m[2]))
		if knownLanguages[lang] {
			name := strings.ToUpper(lang[:1]) + lang[1:]
			if !containsString(c.Language, name) {
				c.Language = append(c.Language, name)
				found = true
			}
		}
	}

	if !found {
		return nil
	}
	return c
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
