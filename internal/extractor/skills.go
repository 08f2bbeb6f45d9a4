package extractor

import (
	"regexp"
	"strings"

	"github.com/learnbot/hrscreening/internal/synonyms"
)

var (
	// Skill list separators
	skillSepRe = regexp.MustCompile(`[,;|•\t]+`)
	// Parenthetical content
	parenRe = regexp.MustCompile(`\([^)]*\)`)
)

// ExtractSkills parses skills from the skills section text, canonicalizing
// each token against the built-in ontology (so "golang" and "go" collapse
// to the same entry) and returning the deduplicated canonical names.
func ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	rawSkills := tokenizeSkills(text)
	seen := map[string]bool{}
	var skills []string

	for _, raw := range rawSkills {
		normalized := normalizeSkill(raw)
		if normalized == "" {
			continue
		}

		name := normalized
		if canonical, _, ok := synonyms.Canonicalize(normalized); ok {
			name = canonical
		}

		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, name)
	}

	return skills
}

// tokenizeSkills splits the skills section into individual skill tokens.
func tokenizeSkills(text string) []string {
	// Remove parenthetical notes
	text = parenRe.ReplaceAllString(text, "")

	// Split by common separators
	parts := skillSepRe.Split(text, -1)
	var tokens []string

	for _, part := range parts {
		part = strings.TrimSpace(part)
		// Remove bullet characters
		part = strings.TrimLeft(part, "•-*>·")
		part = strings.TrimSpace(part)

		if part == "" || len(part) < 2 {
			continue
		}

		// If the part is a line with multiple words that looks like a category header, skip
		if isSkillCategoryHeader(part) {
			continue
		}

		// Split by newlines too
		for _, line := range strings.Split(part, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && len(line) >= 2 {
				tokens = append(tokens, line)
			}
		}
	}

	return tokens
}

// normalizeSkill cleans and normalizes a skill string.
func normalizeSkill(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,;:\"'")
	s = strings.TrimSpace(s)

	// Skip if too long (likely a sentence, not a skill)
	if len(s) > 50 {
		return ""
	}

	// Skip if it's a number
	if len(s) <= 4 {
		allDigits := true
		for _, r := range s {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return ""
		}
	}

	return s
}

// isSkillCategoryHeader returns true if the string looks like a category label.
func isSkillCategoryHeader(s string) bool {
	headers := []string{
		"technical skills", "soft skills", "programming languages",
		"frameworks", "tools", "databases", "cloud", "languages",
		"core competencies", "areas of expertise",
	}
	lower := strings.ToLower(s)
	for _, h := range headers {
		if lower == h {
			return true
		}
	}
	return false
}
