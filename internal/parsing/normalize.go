// Package parsing provides text normalization and tokenization shared by the
// extractors and scorers.
package parsing

import (
	"regexp"
	"strings"
)

var (
	// nonToken strips everything outside word characters, whitespace and
	// '+'. The '+' survives so tokens like "c++" stay intact.
	nonToken   = regexp.MustCompile(`[^\w\s+]+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces characters outside [word, whitespace,
// +] with spaces, and collapses whitespace runs to a single space.
// It is idempotent, and returns "" for empty input rather than failing.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = nonToken.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits text into normalized word tokens. Returns nil for text
// with no tokens.
func Tokenize(text string) []string {
	n := Normalize(text)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}

// WordSet returns the set of distinct normalized tokens in text.
func WordSet(text string) map[string]bool {
	tokens := Tokenize(text)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
