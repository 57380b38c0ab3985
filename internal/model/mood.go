package model

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentAngry    Sentiment = "angry"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Mood is the sentiment stage output.
type Mood struct {
	Sentiment Sentiment `json:"sentiment"`
	Urgency   Urgency   `json:"urgency"`
}

// IsNegative reports whether the sentiment is negative or angry.
func (m Mood) IsNegative() bool {
	return m.Sentiment == SentimentNegative || m.Sentiment == SentimentAngry
}
