// Package synonyms owns the built-in skill ontology and everything derived
// from it: the token-expansion table consumed by the BM25Proximity and
// EmbeddingSimilarity evaluators, canonical-name resolution for résumé skill
// extraction, and free-text skill mention scanning. Every alias and the
// canonical name of a skillEntry resolve to the same group, so "golang" in a
// job requirement matches "go" in a résumé's skills section and vice versa.
package synonyms

import (
	"regexp"
	"sort"
	"strings"
)

// wordBoundaryRe strips punctuation that is not itself meaningful inside a
// skill token (".", "#", "+", "/", "-" survive for things like "C++",
// "node.js", "C#", "CI/CD") so FindMentioned can pad matches with spaces and
// do whole-word/phrase containment checks without false positives like
// matching "go" inside "gorilla".
var wordBoundaryRe = regexp.MustCompile(`[^a-z0-9.#+/\-]+`)

// Table builds a token -> alternate-tokens map from the built-in ontology.
// Every alias and the canonical name resolve to the same group, so looking
// up any member yields every other member (excluding itself).
func Table() map[string][]string {
	table := make(map[string][]string)

	for _, entry := range builtinSkills {
		group := aliasGroup(entry)
		for _, member := range group {
			for _, other := range group {
				if other == member {
					continue
				}
				table[member] = appendUnique(table[member], other)
			}
		}
	}
	return table
}

// Canonicalize resolves a raw skill token (as mined from free text) to its
// ontology entry. It matches the canonical name or any alias, case- and
// whitespace-insensitively. ok is false when raw matches nothing in the
// built-in ontology, in which case callers fall back to treating raw as its
// own canonical name.
func Canonicalize(raw string) (canonical, category string, ok bool) {
	norm := normalize(raw)
	if norm == "" {
		return "", "", false
	}
	for _, entry := range builtinSkills {
		if normalize(entry.canonical) == norm {
			return entry.canonical, entry.category, true
		}
		for _, alias := range entry.aliases {
			if normalize(alias) == norm {
				return entry.canonical, entry.category, true
			}
		}
	}
	return "", "", false
}

// IsSoftSkill reports whether category (as returned by Canonicalize) names
// a soft/behavioral skill rather than a technical one.
func IsSoftSkill(category string) bool {
	return softCategories[category]
}

// FindMentioned scans free text for every ontology entry (by canonical name
// or alias) mentioned as a whole word/phrase, returning the deduplicated
// canonical names in the order they were first matched by entry position.
// It is the substring-scan counterpart to Canonicalize's exact-token match,
// used where the caller has a block of prose rather than one pre-split
// token (e.g. a project description naming technologies inline).
func FindMentioned(text string) []string {
	lower := " " + wordBoundaryRe.ReplaceAllString(normalize(text), " ") + " "
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	for _, entry := range builtinSkills {
		candidates := append([]string{entry.canonical}, entry.aliases...)
		sort.Slice(candidates, func(i, j int) bool { return len(candidates[i]) > len(candidates[j]) })
		for _, candidate := range candidates {
			needle := " " + normalize(candidate) + " "
			if strings.Contains(lower, needle) {
				if !seen[entry.canonical] {
					seen[entry.canonical] = true
					found = append(found, entry.canonical)
				}
				break
			}
		}
	}
	return found
}

func aliasGroup(entry skillEntry) []string {
	group := make([]string, 0, len(entry.aliases)+1)
	seen := make(map[string]bool)

	add := func(s string) {
		norm := normalize(s)
		if norm == "" || seen[norm] {
			return
		}
		seen[norm] = true
		group = append(group, norm)
	}
	add(entry.canonical)
	for _, alias := range entry.aliases {
		add(alias)
	}
	return group
}

func appendUnique(existing []string, value string) []string {
	for _, v := range existing {
		if v == value {
			return existing
		}
	}
	return append(existing, value)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
