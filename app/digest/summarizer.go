package digest

import "strings"

// NoSummary is emitted when an article has no description to
// summarize.
const NoSummary = "No summary available"

const maxSummarySentences = 2

// Summarizer produces an extractive summary: the first sentences of
// the article description, split on end-of-sentence punctuation. No
// semantic analysis.
type Summarizer struct{}

func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

func (s *Summarizer) Run(text string) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return NoSummary
	}
	if len(sentences) > maxSummarySentences {
		sentences = sentences[:maxSummarySentences]
	}
	return strings.Join(sentences, " ")
}

// splitSentences segments text on '.', '!' and '?', keeping the
// terminator with its sentence. Whitespace-only fragments are skipped.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}
