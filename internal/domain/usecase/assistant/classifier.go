package assistant

import "strings"

// goldKeywords is the fixed keyword list the classifier matches against.
// Matching is by substring, so negations still match ("I don't think gold is
// safe" classifies as gold-related). That false-positive class is accepted.
var goldKeywords = []string{
	"gold",
	"digital gold",
	"invest in gold",
	"buy gold",
	"gold investment",
	"is gold safe",
	"should i buy gold",
}

// IsGoldQuery reports whether the text is about gold investment. It
// lower-cases the input and checks for any keyword as a substring. Pure and
// total; no tokenization or stemming.
func IsGoldQuery(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range goldKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
