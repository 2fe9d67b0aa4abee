// Package chatbot answers questions about the dataset from a fixed keyword table.
package chatbot

import "strings"

// keywordsPerEntry is how many leading words of a question must appear in the input.
const keywordsPerEntry = 2

type rule struct {
	keywords []string
	answer   string
}

// Bot matches input against the corpus in order. It is safe for concurrent use.
type Bot struct {
	rules    []rule
	fallback string
}

// New builds a Bot that matches the first words of each corpus question.
func New(c Corpus) *Bot {
	rules := make([]rule, 0, len(c.Entries))
	for _, e := range c.Entries {
		words := strings.Fields(strings.ToLower(e.Question))
		if len(words) > keywordsPerEntry {
			words = words[:keywordsPerEntry]
		}
		rules = append(rules, rule{keywords: words, answer: e.Answer})
	}
	return &Bot{rules: rules, fallback: c.Default}
}

// Reply returns the first answer whose keywords all occur in the input, or the
// default reply. Keywords match as substrings of the whole input and earlier
// entries win.
func (b *Bot) Reply(input string) (reply string, matched bool) {
	text := strings.ToLower(input)
	for _, r := range b.rules {
		if containsAll(text, r.keywords) {
			return r.answer, true
		}
	}
	return b.fallback, false
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}
