// Package services: response formatting
//
// Model output arrives with conversational padding that adds nothing in a
// chat transcript: opening greetings, transition filler, closing
// pleasantries. FormatResponse strips the known patterns and normalizes
// list spacing so replies render consistently.
package services

import (
	"regexp"
	"strings"
)

// greetingRE matches a generic salutation at the very start of a reply.
var greetingRE = regexp.MustCompile(`(?i)^(hello|hi|hey|greetings|good (morning|afternoon|evening))( there)?[,.! ]+\s*`)

// fillerREs are transition and closing phrases removed wherever they occur.
var fillerREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(sure|certainly|of course|absolutely|great question)[,.! ]+\s*`),
	regexp.MustCompile(`(?i)\bi hope (this|that) helps[^.!?]*[.!?]?\s*`),
	regexp.MustCompile(`(?i)\blet me know if you have any (other |further )?questions[^.!?]*[.!?]?\s*`),
	regexp.MustCompile(`(?i)\bfeel free to ask[^.!?]*[.!?]?\s*`),
	regexp.MustCompile(`(?i)\bis there anything else (i can help|you'd like)[^.!?]*[.!?]?\s*`),
}

var (
	// bulletSpacingRE fixes "-item" / "*  item" to a single space after the marker.
	bulletSpacingRE = regexp.MustCompile(`(?m)^(\s*)([-*•])[ \t]*`)
	// numberSpacingRE fixes "1.item" / "2)  item" to "1. item".
	numberSpacingRE = regexp.MustCompile(`(?m)^(\s*)(\d+)[.)][ \t]*`)
	// blankRunRE collapses three or more consecutive newlines to two.
	blankRunRE = regexp.MustCompile(`\n{3,}`)
)

// FormatResponse cleans raw model output for display. The result is
// trimmed; an input consisting only of stripped filler becomes empty.
func FormatResponse(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSpace(s)

	s = greetingRE.ReplaceAllString(s, "")
	for _, re := range fillerREs {
		s = re.ReplaceAllString(s, "")
	}

	s = bulletSpacingRE.ReplaceAllString(s, "$1$2 ")
	s = numberSpacingRE.ReplaceAllString(s, "$1$2. ")
	s = blankRunRE.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}
