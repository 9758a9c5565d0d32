// Package prompt assembles the text sent to the language model. The
// template is deterministic: the same inputs always produce the same
// prompt, which keeps cached responses and tests stable.
package prompt

import "strings"

const preamble = `You are a helpful, knowledgeable assistant. You answer technical and
general questions accurately, admit uncertainty instead of guessing, and
keep responses focused on what was actually asked.`

const formattingInstructions = `Response structure:
- Lead with the direct answer before any background.
- Use short paragraphs; use bullet points only for genuinely list-shaped content.
- Include code blocks with language tags when showing code.
- Do not repeat the question back.`

const qualityInstructions = `Quality:
- Be concrete. Prefer a worked example over an abstract description.
- If the question is ambiguous, answer the most likely reading and say so.
- Never fabricate APIs, flags, or version numbers.`

const empathyInstructions = `Tone:
- Match the emotional register of the conversation when it is personal.
- Acknowledge frustration or confusion briefly, then move to the answer.
- Stay professional; no filler enthusiasm.`

const (
	noHistoryPlaceholder = "(no prior conversation)"
	noPairPlaceholder    = "(none)"
)

// Build renders the full model prompt from the running conversation
// state and the current question. History is the accumulated Q/A log,
// lastQuery/lastResponse the most recent completed exchange, and
// summary the derived context blob. User content passes through
// unescaped.
func Build(history, lastQuery, lastResponse, summary, query string) string {
	var b strings.Builder

	b.WriteString(preamble)
	b.WriteString("\n\n")

	b.WriteString("Conversation so far:\n")
	b.WriteString(orPlaceholder(history, noHistoryPlaceholder))
	b.WriteString("\n\n")

	b.WriteString("Previous question: ")
	b.WriteString(orPlaceholder(lastQuery, noPairPlaceholder))
	b.WriteString("\n")
	b.WriteString("Previous answer: ")
	b.WriteString(orPlaceholder(lastResponse, noPairPlaceholder))
	b.WriteString("\n\n")

	b.WriteString("Context: ")
	b.WriteString(strings.TrimSpace(summary))
	b.WriteString("\n\n")

	b.WriteString("Current question: ")
	b.WriteString(strings.TrimSpace(query))
	b.WriteString("\n\n")

	b.WriteString(formattingInstructions)
	b.WriteString("\n\n")
	b.WriteString(qualityInstructions)
	b.WriteString("\n\n")
	b.WriteString(empathyInstructions)

	return b.String()
}

func orPlaceholder(s, placeholder string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return placeholder
}
