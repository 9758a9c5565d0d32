package analysis

import "strings"

// DefaultWindow is the number of trailing messages summarized per prompt.
const DefaultWindow = 5

// Aggregation caps applied across the window after flattening.
const (
	maxTopics    = 5
	maxQuestions = 2
	maxTerms     = 3
	maxEmotions  = 3
	maxExamples  = 3
)

// Summarize folds the last window message texts through the signal
// extractors and renders a bounded natural-language summary. Sections with
// no signal are omitted entirely; the section order is fixed. An empty
// window yields an empty string.
func Summarize(texts []string, window int) string {
	if window <= 0 {
		window = DefaultWindow
	}
	if len(texts) > window {
		texts = texts[len(texts)-window:]
	}
	if len(texts) == 0 {
		return ""
	}

	var topics, questions, terms, emotions, examples []string
	for _, t := range texts {
		topics = append(topics, ExtractTopics(t)...)
		questions = append(questions, ExtractQuestions(t)...)
		terms = append(terms, ExtractTechnicalTerms(t)...)
		emotions = append(emotions, DetectEmotions(t)...)
		examples = append(examples, ExtractExamples(t)...)
	}

	topics = lastN(dedup(topics), maxTopics)
	questions = lastN(questions, maxQuestions)
	terms = lastN(dedup(terms), maxTerms)
	emotions = lastN(dedup(emotions), maxEmotions)
	examples = lastN(examples, maxExamples)

	var b strings.Builder
	writeSection(&b, "Recent topics: ", topics, ", ")
	writeSection(&b, "Recent questions: ", questions, "; ")
	writeSection(&b, "Technical context: ", terms, ", ")
	writeSection(&b, "Emotional context: ", emotions, ", ")
	writeSection(&b, "Previous examples: ", examples, "; ")
	return strings.TrimSpace(b.String())
}

func writeSection(b *strings.Builder, label string, items []string, sep string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label)
	b.WriteString(strings.Join(items, sep))
	b.WriteString(". ")
}

// dedup removes duplicates preserving first-occurrence order.
func dedup(in []string) []string {
	if len(in) < 2 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// lastN keeps the trailing n elements.
func lastN(in []string, n int) []string {
	if len(in) > n {
		return in[len(in)-n:]
	}
	return in
}
