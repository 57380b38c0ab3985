// Package verify masks personal data in a reply, flags unsafe content and builds a display summary.
package verify

import (
	"regexp"
	"unicode/utf8"

	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
)

const (
	CardMask = "[CARD]"

	SummaryLimit   = 120
	ellipsis       = "..."
	ellipsisLength = 3

	confidenceClean   = 1.0
	confidenceFlagged = 0.6
)

var (
	cardPattern = regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)

	// BlockedTerms flag a reply. They never escalate on their own.
	BlockedTerms = []string{"bomb", "kill", "illegal", "attack"}
)

// Verify never reorders text: masking only replaces the matched substrings.
func Verify(text string) model.Verdict {
	masked := cardPattern.ReplaceAllLiteralString(text, CardMask)

	flags := []model.SafetyFlag{}
	if len(lexicon.Normalize(text).Matches(BlockedTerms)) > 0 {
		flags = append(flags, model.FlagBlockedContent)
	}
	if masked != text {
		flags = append(flags, model.FlagPIIMasked)
	}

	return model.Verdict{
		Full:        text,
		Masked:      masked,
		Summary:     Summarize(masked),
		SafetyFlags: flags,
	}
}

// Summarize keeps text up to SummaryLimit runes. Longer text is cut to leave room for "...".
func Summarize(text string) string {
	if utf8.RuneCountInString(text) <= SummaryLimit {
		return text
	}
	runes := []rune(text)
	return string(runes[:SummaryLimit-ellipsisLength]) + ellipsis
}

// Run wraps Verify as a verify-stage result.
func Run(text string) model.StageResult[model.Verdict] {
	v := Verify(text)
	confidence, explain := confidenceClean, "clean"
	if len(v.SafetyFlags) > 0 {
		confidence, explain = confidenceFlagged, "flagged"
		for _, f := range v.SafetyFlags {
			explain += " " + string(f)
		}
	}
	return model.NewStageResult(model.StageVerify, v, confidence, explain)
}
