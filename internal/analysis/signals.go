// Package analysis derives conversational signals from chat text: topics,
// questions, technical terms, emotions, and examples. It is intentionally
// small and dependency-free, deterministic, and data-driven: the heuristics
// are fixed indicator lists, vocabularies, and keyword tables, not a
// statistical model. Callers fold these signals into a bounded context
// summary (see summary.go) that is interpolated into the model prompt.
package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// topicIndicators are phrases that introduce a subject; the word run that
// follows each occurrence is captured as a topic.
var topicIndicators = []string{
	"about", "regarding", "concerning", "related to", "topic of",
	"discussing", "talking about", "focus on", "interested in",
}

// topicIndicatorREs is compiled once per indicator: the phrase followed by
// the trailing word run (letters, digits, spaces).
var topicIndicatorREs = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(topicIndicators))
	for i, p := range topicIndicators {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\s+([\p{L}\p{N}][\p{L}\p{N} ]*)`)
	}
	return res
}()

// topicStopWords filters filler from the frequency-based topic candidates.
var topicStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "of": {},
	"to": {}, "in": {}, "is": {}, "are": {}, "was": {}, "were": {}, "for": {},
	"on": {}, "with": {}, "by": {}, "from": {}, "at": {}, "as": {}, "that": {},
	"this": {}, "these": {}, "those": {}, "it": {}, "its": {}, "be": {},
	"been": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "can": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "who": {}, "how": {},
	"why": {}, "there": {}, "their": {}, "they": {}, "them": {}, "then": {},
	"than": {}, "your": {}, "you": {}, "about": {}, "into": {}, "some": {},
	"more": {}, "very": {}, "just": {}, "like": {}, "also": {}, "much": {},
}

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*`)

// ExtractTopics returns the topics of a single message: indicator-phrase
// captures first, then the three most frequent significant words. The result
// is de-duplicated preserving first-seen order.
func ExtractTopics(text string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(t string) {
		t = strings.TrimSpace(strings.ToLower(t))
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	// (a) indicator-phrase captures, in indicator order then occurrence order
	for _, re := range topicIndicatorREs {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}

	// (b) top 3 words by frequency, len > 3, non-stop-word; ties broken by
	// first occurrence (the stable sort input is in first-occurrence order)
	counts := make(map[string]int)
	var order []string
	for _, w := range wordRE.FindAllString(strings.ToLower(text), -1) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := topicStopWords[w]; stop {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for i, w := range order {
		if i >= 3 {
			break
		}
		add(w)
	}

	return out
}

var questionRE = regexp.MustCompile(`[^.!?]+\?`)

// ExtractQuestions returns every maximal run of non-terminator characters
// ending in '?', trimmed, in order of appearance.
func ExtractQuestions(text string) []string {
	var out []string
	for _, q := range questionRE.FindAllString(text, -1) {
		if t := strings.TrimSpace(q); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// technicalVocabulary is the fixed term list checked by substring
// containment. Matches are reported in this order, not input order.
var technicalVocabulary = []string{
	"javascript", "typescript", "python", "golang", "java", "kotlin",
	"swift", "rust", "ruby", "php", "c++", "c#", "scala", "html", "css",
	"sass", "tailwind", "bootstrap", "react", "angular", "vue", "svelte",
	"nextjs", "nuxt", "flutter", "node", "express", "django", "flask",
	"spring", "rails", "laravel", "graphql", "rest api", "websocket",
	"http", "json", "xml", "yaml", "oauth", "jwt", "sql", "postgresql",
	"mysql", "sqlite", "mongodb", "redis", "kafka", "docker", "kubernetes",
	"terraform", "aws", "azure", "gcp", "firebase", "serverless", "lambda",
	"microservices", "webpack", "vite", "github", "gitlab", "machine learning",
	"neural network", "tensorflow", "pytorch",
}

// ExtractTechnicalTerms reports which vocabulary terms appear in the text
// (case-insensitive substring containment), in vocabulary order. Duplicates
// are impossible because the vocabulary has unique entries.
func ExtractTechnicalTerms(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, term := range technicalVocabulary {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

// emotionCategory pairs a category name with its keyword list. Within a
// category the first keyword hit wins; scanning then moves to the next
// category, so several categories can fire for one message.
type emotionCategory struct {
	name     string
	keywords []string
}

var emotionCategories = []emotionCategory{
	{"happy", []string{"happy", "joy", "excited", "glad", "delighted", "thrilled", "cheerful", "wonderful", "awesome"}},
	{"sad", []string{"sad", "unhappy", "depressed", "miserable", "heartbroken", "disappointed", "crying", "grief"}},
	{"angry", []string{"angry", "mad", "furious", "annoyed", "irritated", "frustrated", "outraged", "hate"}},
	{"anxious", []string{"anxious", "worried", "nervous", "afraid", "scared", "stress", "panic", "uneasy", "overwhelmed"}},
	{"confused", []string{"confused", "unsure", "puzzled", "don't understand", "unclear", "baffled"}},
	{"love", []string{"love", "adore", "cherish", "affection", "care about"}},
	{"gratitude", []string{"thank", "grateful", "appreciate", "gratitude"}},
	{"pride", []string{"proud", "accomplished", "achievement", "pride"}},
	{"regret", []string{"regret", "sorry", "wish i had", "should have", "mistake", "guilt"}},
	{"hope", []string{"hope", "hopeful", "looking forward", "optimistic", "dream"}},
}

var (
	highIntensityWords = []string{"extremely", "incredibly", "absolutely", "very", "really", "so much", "deeply", "totally"}
	lowIntensityWords  = []string{"slightly", "a bit", "a little", "somewhat", "kind of", "mildly"}
)

// emotionContext pairs a context tag with its keyword set; sets are scanned
// in the order listed and the first matching set wins.
type emotionContext struct {
	name     string
	keywords []string
}

var emotionContexts = []emotionContext{
	{"personal", []string{"my job", "my work", "my career", "my studies", "my health", "my project"}},
	{"relationship", []string{"friend", "family", "partner", "girlfriend", "boyfriend", "wife", "husband", "mother", "father", "colleague"}},
	{"lifeEvents", []string{"wedding", "marriage", "graduation", "birthday", "funeral", "new job", "moving", "baby", "retirement", "anniversary"}},
}

// DetectEmotions returns the detected emotion categories in category-table
// order, optionally followed by an intensity tag ("<level> intensity") and a
// context tag ("<context> context"). Intensity and context are only appended
// when at least one emotion matched; a low-intensity keyword overrides a
// high-intensity one, and the default "moderate" level is never reported.
func DetectEmotions(text string) []string {
	lower := strings.ToLower(text)

	var out []string
	for _, cat := range emotionCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, cat.name)
				break // first match wins per category
			}
		}
	}
	if len(out) == 0 {
		return nil
	}

	intensity := "moderate"
	for _, kw := range highIntensityWords {
		if strings.Contains(lower, kw) {
			intensity = "high"
			break
		}
	}
	for _, kw := range lowIntensityWords {
		if strings.Contains(lower, kw) {
			intensity = "low"
			break
		}
	}
	if intensity != "moderate" {
		out = append(out, intensity+" intensity")
	}

	for _, cc := range emotionContexts {
		matched := false
		for _, kw := range cc.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if matched {
			out = append(out, cc.name+" context")
			break // first matching set wins
		}
	}

	return out
}

// exampleIndicators introduce illustrative material; the whole sentence from
// the indicator to the next terminator is captured.
var exampleIndicators = []string{
	"for example", "such as", "like", "instance", "example",
	"illustration", "case in point",
}

var exampleIndicatorREs = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exampleIndicators))
	for i, p := range exampleIndicators {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b[^.!?]*[.!?]`)
	}
	return res
}()

var codeBlockRE = regexp.MustCompile("(?s)```.*?```")

// ExtractExamples collects indicator-introduced sentences (in indicator-list
// order, then occurrence order) followed by every fenced code block verbatim.
func ExtractExamples(text string) []string {
	var out []string
	for _, re := range exampleIndicatorREs {
		for _, m := range re.FindAllString(text, -1) {
			if t := strings.TrimSpace(m); t != "" {
				out = append(out, t)
			}
		}
	}
	out = append(out, codeBlockRE.FindAllString(text, -1)...)
	return out
}
