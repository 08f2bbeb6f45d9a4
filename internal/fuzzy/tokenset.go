// Package fuzzy implements the fuzzy token-set-ratio approximate string
// match used by the BM25 title bonus and the JD keyword matcher
// (spec.md §4.2, §4.4). It mirrors rapidfuzz's token_set_ratio algorithm:
// split both strings into token sets, score the intersection against each
// side's remainder, and keep the best of three Levenshtein-ratio
// comparisons. No Go port of rapidfuzz exists in the reference corpus, so
// the edit-distance primitive comes from the well-established
// agnivade/levenshtein package instead.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// TokenSetRatio returns a similarity score in [0, 100] between a and b,
// matching the semantics consulted generally by approximate-matching
// libraries for "token set" comparisons: word order and duplicate
// whitespace don't matter, and a string that is a subset of the other's
// words scores highly regardless of extra words on either side.
func TokenSetRatio(a, b string) float64 {
	tokensA := splitWords(a)
	tokensB := splitWords(b)
	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 100
	}
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := toSet(tokensA)
	setB := toSet(tokensB)

	var intersection, onlyA, onlyB []string
	for tok := range setA {
		if setB[tok] {
			intersection = append(intersection, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if !setA[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(intersection)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sortedSect := strings.Join(intersection, " ")
	combinedA := joinNonEmpty(sortedSect, strings.Join(onlyA, " "))
	combinedB := joinNonEmpty(sortedSect, strings.Join(onlyB, " "))

	best := ratio(sortedSect, combinedA)
	if r := ratio(sortedSect, combinedB); r > best {
		best = r
	}
	if r := ratio(combinedA, combinedB); r > best {
		best = r
	}
	return best
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

// ratio converts a Levenshtein edit distance into a similarity percentage
// in [0, 100], the same normalization rapidfuzz applies to its internal
// Indel distance.
func ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(total-dist) / float64(total) * 100
}

func splitWords(s string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(s)))
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
