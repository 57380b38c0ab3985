// Package lexicon matches whole words and phrases against free text.
package lexicon

import (
	"strings"
	"unicode"
)

// Text is a message normalized for phrase lookups: lower case, punctuation folded to
// single spaces, padded on both ends so " word " only matches whole words.
type Text struct {
	padded string
}

// Normalize prepares raw text for matching.
func Normalize(raw string) Text {
	return Text{padded: " " + fold(raw) + " "}
}

// String returns the normalized text without padding.
func (t Text) String() string {
	return strings.TrimSpace(t.padded)
}

// Has reports whether phrase occurs as whole words.
func (t Text) Has(phrase string) bool {
	p := fold(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(t.padded, " "+p+" ")
}

// Matches returns the phrases of set that occur in t, in set order.
func (t Text) Matches(set []string) []string {
	var hits []string
	for _, phrase := range set {
		if t.Has(phrase) {
			hits = append(hits, phrase)
		}
	}
	return hits
}

// Tokens returns the normalized words.
func (t Text) Tokens() []string {
	return strings.Fields(t.padded)
}

func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := true
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			space = false
			continue
		}
		// Apostrophes inside words are dropped so "where's" folds to "wheres".
		if r == '\'' || r == '’' {
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}
