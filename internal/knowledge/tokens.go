package knowledge

import (
	"customer-support-agent/internal/lexicon"
	"customer-support-agent/internal/model"
)

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {}, "on": {}, "for": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "it": {}, "its": {}, "my": {}, "your": {}, "our": {},
	"i": {}, "im": {}, "me": {}, "we": {}, "you": {}, "this": {}, "that": {}, "with": {}, "do": {}, "does": {},
	"can": {}, "how": {}, "what": {}, "wheres": {}, "where": {}, "when": {}, "why": {}, "has": {}, "have": {},
	"at": {}, "by": {}, "from": {}, "if": {}, "not": {}, "no": {}, "please": {}, "hi": {}, "hello": {},
}

// tokenize returns normalized content words.
func tokenize(s string) []string {
	all := lexicon.Normalize(s).Tokens()
	out := all[:0]
	for _, t := range all {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func documentText(it model.KnowledgeItem) string {
	return it.Title + " " + it.Passage
}
