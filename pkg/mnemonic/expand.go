package mnemonic

import (
	"strings"

	"github.com/seedworks/mnemonic/pkg/textnorm"
)

// ExpandWord resolves a truncated word to its unique full form. An exact
// list member comes back unchanged, a prefix matching exactly one entry
// expands to that entry, and anything ambiguous or unknown comes back
// unchanged rather than guessed. Empty and whitespace-only input is
// returned as-is, never matched against the list.
func (m *Mnemonic) ExpandWord(prefix string) string {
	if strings.TrimSpace(prefix) == "" {
		return prefix
	}
	if _, ok := m.list.Index(prefix); ok {
		return prefix
	}
	if matches := m.list.WordsWithPrefix(prefix); len(matches) == 1 {
		return matches[0]
	}
	return prefix
}

// Expand applies ExpandWord to each whitespace-separated token of sentence
// independently and rejoins the tokens with single spaces. Tokens are not
// renormalized or reordered.
func (m *Mnemonic) Expand(sentence string) string {
	tokens := textnorm.Fields(sentence)
	for i, tok := range tokens {
		tokens[i] = m.ExpandWord(tok)
	}
	return strings.Join(tokens, " ")
}
