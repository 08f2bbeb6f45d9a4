// Package tokenizer provides the text normalizer shared by the BM25
// proximity, embedding similarity, and JD keyword evaluators, guaranteeing
// all three evaluators agree on what counts as a "word" (spec.md §4.1).
package tokenizer

import (
	"regexp"
	"strings"
)

// tokenPattern matches a maximal run of ASCII letters/digits, or a maximal
// run of Hiragana, Katakana, or CJK unified ideographs.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9]+|[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FFF}]+`)

// canonical folds known synonym spellings to a single canonical token.
var canonical = map[string]string{
	"iac":                  "iac",
	"infrastructureascode": "iac",
	"aws":                  "aws",
	"amazonwebservices":    "aws",
}

// Tokenize lowercases text and splits it into tokens per spec.md §4.1.
// The result is idempotent: tokenizing an already-lowercased, already
// canonicalized token sequence joined by spaces reproduces the same tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	raw := tokenPattern.FindAllString(lower, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if canon, ok := canonical[tok]; ok {
			tokens = append(tokens, canon)
		} else {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Join tokenizes then re-joins with spaces; used for de-duplicating
// queries by their tokenized form (spec.md §4.2's query de-dup rule).
func Join(text string) string {
	return strings.Join(Tokenize(text), " ")
}
