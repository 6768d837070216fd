package prompt

import (
	"strings"
	"unicode/utf8"
)

// Instruction is prepended to questions that look like real requests so the
// model answers in "## Heading" lines and plain paragraphs.
const Instruction = "Please respond using markdown headings (## Heading) and normal paragraphs. Avoid asterisks (*) or dashes (-)."

// minFormatLength is the trimmed rune count below which no instruction is added.
const minFormatLength = 10

var greetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
}

// Length is the rune count of the trimmed question, the measure NeedsFormat
// compares against its threshold.
func Length(question string) int {
	return utf8.RuneCountInString(strings.TrimSpace(question))
}

// NeedsFormat reports whether the formatting instruction should be prepended.
// Short inputs and bare greetings are sent as they are.
func NeedsFormat(question string) bool {
	q := strings.TrimSpace(question)
	if Length(q) < minFormatLength {
		return false
	}
	_, greeting := greetings[strings.ToLower(q)]
	return !greeting
}

// Compose returns the text sent to the model for question.
func Compose(question string) string {
	if !NeedsFormat(question) {
		return question
	}
	return Instruction + "\n\n" + question
}
