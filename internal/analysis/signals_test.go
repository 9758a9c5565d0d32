package analysis

import (
	"reflect"
	"strings"
	"testing"
)

// ---------- ExtractTopics ----------

func TestExtractTopics_IndicatorCapture(t *testing.T) {
	got := ExtractTopics("Tell me about distributed systems please")
	if len(got) == 0 || got[0] != "distributed systems please" {
		t.Fatalf("first topic = %v, want indicator capture first", got)
	}
}

func TestExtractTopics_FrequencyFallback(t *testing.T) {
	// No indicator phrase; "compiler" appears twice, beats once-seen words.
	got := ExtractTopics("compiler optimizations make the compiler faster")
	if len(got) == 0 || got[0] != "compiler" {
		t.Fatalf("got %v, want compiler ranked first", got)
	}
	if len(got) > 3 {
		t.Fatalf("frequency part must cap at 3, got %v", got)
	}
}

func TestExtractTopics_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	got := ExtractTopics("alpha bravo charlie")
	want := []string{"alpha", "bravo", "charlie"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractTopics_Deduplicates(t *testing.T) {
	got := ExtractTopics("talking about kubernetes, always kubernetes kubernetes")
	count := 0
	for _, topic := range got {
		if topic == "kubernetes" {
			count++
		}
	}
	if count > 1 {
		t.Fatalf("duplicate topic survived: %v", got)
	}
}

func TestExtractTopics_Empty(t *testing.T) {
	if got := ExtractTopics("a an the"); len(got) != 0 {
		t.Fatalf("stop-words only should yield nothing, got %v", got)
	}
}

// ---------- ExtractQuestions ----------

func TestExtractQuestions_SingleQuestion(t *testing.T) {
	got := ExtractQuestions("What time is it? I am fine.")
	want := []string{"What time is it?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractQuestions_MultiplePreserveOrder(t *testing.T) {
	got := ExtractQuestions("Why? How does it work? Done. And when?")
	want := []string{"Why?", "How does it work?", "And when?"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractQuestions_None(t *testing.T) {
	if got := ExtractQuestions("No questions here."); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

// ---------- ExtractTechnicalTerms ----------

func TestExtractTechnicalTerms_VocabularyOrder(t *testing.T) {
	// Input order is docker-then-python; output must follow vocabulary order.
	got := ExtractTechnicalTerms("We deploy with Docker after writing Python")
	want := []string{"python", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractTechnicalTerms_CaseInsensitiveSubstring(t *testing.T) {
	got := ExtractTechnicalTerms("I love TYPESCRIPT and PostgreSQL")
	joined := strings.Join(got, ",")
	if !strings.Contains(joined, "typescript") || !strings.Contains(joined, "postgresql") {
		t.Fatalf("got %v", got)
	}
}

func TestExtractTechnicalTerms_None(t *testing.T) {
	if got := ExtractTechnicalTerms("the weather is nice"); len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

// ---------- DetectEmotions ----------

func TestDetectEmotions_EmotionIntensityContextOrder(t *testing.T) {
	got := DetectEmotions("I am extremely happy about my wedding")
	want := []string{"happy", "high intensity", "lifeEvents context"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDetectEmotions_LowOverridesHigh(t *testing.T) {
	got := DetectEmotions("I am really just slightly worried")
	want := []string{"anxious", "low intensity"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDetectEmotions_ModerateNotReported(t *testing.T) {
	got := DetectEmotions("I am happy today")
	want := []string{"happy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDetectEmotions_MultipleCategories(t *testing.T) {
	got := DetectEmotions("I am happy but also worried")
	want := []string{"happy", "anxious"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDetectEmotions_NoEmotionSuppressesTags(t *testing.T) {
	// High-intensity and context keywords are present, but with no emotion
	// matched nothing at all is reported.
	got := DetectEmotions("The wedding was extremely long")
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestDetectEmotions_FirstContextSetWins(t *testing.T) {
	// Personal context appears in the text alongside a life event; the
	// personal set is scanned first.
	got := DetectEmotions("I am proud of my work before the wedding")
	want := []string{"pride", "personal context"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// ---------- ExtractExamples ----------

func TestExtractExamples_IndicatorSentence(t *testing.T) {
	got := ExtractExamples("Queues decouple work. For example a job runner drains them. The end.")
	// The bare "example" indicator also fires inside "For example"; both
	// captures are kept, in indicator-list order.
	want := []string{
		"For example a job runner drains them.",
		"example a job runner drains them.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractExamples_IndicatorOrderThenOccurrence(t *testing.T) {
	text := "Tools like hammers help. For example a saw cuts."
	got := ExtractExamples(text)
	// "for example" precedes "like", which precedes the bare "example".
	want := []string{
		"For example a saw cuts.",
		"like hammers help.",
		"example a saw cuts.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractExamples_CodeBlocksAppendedVerbatim(t *testing.T) {
	text := "Such as this snippet.\n```go\nfmt.Println(\"hi\")\n```"
	got := ExtractExamples(text)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if !strings.HasPrefix(got[1], "```go") || !strings.HasSuffix(got[1], "```") {
		t.Fatalf("code block not verbatim: %q", got[1])
	}
}

func TestExtractExamples_MultipleCodeBlocks(t *testing.T) {
	text := "```a```\ntext\n```b```"
	got := ExtractExamples(text)
	if len(got) != 2 {
		t.Fatalf("got %v, want two code blocks", got)
	}
}
