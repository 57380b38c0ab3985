package order

import (
	"regexp"
	"strings"
)

var (
	prefixedID = regexp.MustCompile(`(?i)\bORD\d+\b`)
	hashID     = regexp.MustCompile(`#(\d+)\b`)
	bareID     = regexp.MustCompile(`\b(\d{5})\b`)
	validID    = regexp.MustCompile(`^ORD\d+$`)
)

// ExtractIdentifier finds an order id in free text. Patterns are tried in order:
// ORD-prefixed, then #digits, then a bare 5-digit number. The first match wins
// and the result is normalized to "ORD<digits>".
func ExtractIdentifier(text string) (string, bool) {
	if m := prefixedID.FindString(text); m != "" {
		return strings.ToUpper(m), true
	}
	if m := hashID.FindStringSubmatch(text); m != nil {
		return "ORD" + m[1], true
	}
	if m := bareID.FindStringSubmatch(text); m != nil {
		return "ORD" + m[1], true
	}
	return "", false
}

// NormalizeID upper-cases an id and reports whether it has the ORD<digits> shape.
func NormalizeID(id string) (string, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	return id, validID.MatchString(id)
}
