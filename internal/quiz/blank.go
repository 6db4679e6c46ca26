package quiz

import (
	"regexp"
	"strings"
)

// BlankPlaceholder replaces the target word in fill-in-the-blank prompts.
const BlankPlaceholder = "_____"

// BlankOut replaces every whole-word, case-insensitive occurrence of word in
// example with BlankPlaceholder. An empty word or example is returned unchanged.
func BlankOut(example, word string) string {
	word = strings.TrimSpace(word)
	if example == "" || word == "" {
		return example
	}

	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return pattern.ReplaceAllLiteralString(example, BlankPlaceholder)
}
