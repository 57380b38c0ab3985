// Package sentiment scores the mood and urgency of a message from fixed lexicons.
package sentiment

import (
	"fmt"
	"strings"

	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
)

const (
	ConfidenceMatched = 0.8
	ConfidenceDefault = 0.5
)

var (
	AngryTerms = []string{
		"angry", "furious", "infuriating", "infuriated", "outraged", "unacceptable", "ridiculous",
		"hate", "scam", "livid", "mad", "worst",
	}
	NegativeTerms = []string{
		"upset", "frustrated", "frustrating", "disappointed", "annoyed", "unhappy", "terrible", "awful", "bad",
	}
	PositiveTerms = []string{
		"thanks", "thank you", "great", "love", "appreciate", "perfect", "awesome",
	}
	HighUrgencyTerms = []string{
		"now", "urgent", "urgently", "asap", "immediately", "emergency", "right away",
	}
	MediumUrgencyTerms = []string{
		"soon", "today", "waiting", "still", "again",
	}
)

// Analyze never fails. Text without any lexicon hit is neutral with low urgency.
func Analyze(text string) model.StageResult[model.Mood] {
	norm := lexicon.Normalize(text)
	mood := model.Mood{Sentiment: model.SentimentNeutral, Urgency: model.UrgencyLow}
	var why []string

	// angry outranks negative outranks positive
	switch {
	case hit(norm, AngryTerms, &why):
		mood.Sentiment = model.SentimentAngry
	case hit(norm, NegativeTerms, &why):
		mood.Sentiment = model.SentimentNegative
	case hit(norm, PositiveTerms, &why):
		mood.Sentiment = model.SentimentPositive
	}

	switch {
	case hit(norm, HighUrgencyTerms, &why):
		mood.Urgency = model.UrgencyHigh
	case repeatedPunctuation(text):
		mood.Urgency = model.UrgencyHigh
		why = append(why, "repeated punctuation")
	case hit(norm, MediumUrgencyTerms, &why):
		mood.Urgency = model.UrgencyMedium
	}

	if len(why) == 0 {
		return model.NewStageResult(model.StageSentiment, mood, ConfidenceDefault, "no lexicon match")
	}
	return model.NewStageResult(model.StageSentiment, mood, ConfidenceMatched,
		fmt.Sprintf("matched %s", strings.Join(why, ", ")))
}

func hit(norm lexicon.Text, terms []string, why *[]string) bool {
	m := norm.Matches(terms)
	*why = append(*why, m...)
	return len(m) > 0
}

// repeatedPunctuation reports two or more consecutive '!' or '?'.
func repeatedPunctuation(text string) bool {
	var prev rune
	for _, r := range text {
		if (r == '!' || r == '?') && (prev == '!' || prev == '?') {
			return true
		}
		prev = r
	}
	return false
}
