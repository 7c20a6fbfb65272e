// Package textnorm provides the Unicode normalization rules shared by the
// wordlist store, the mnemonic codec and seed derivation. Every string that
// participates in encoding, lookup or key derivation passes through
// Normalize first, so semantically identical text in NFC, NFD, NFKC or NFKD
// form maps to one byte sequence.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IdeographicSpace is the U+3000 word separator used in Japanese mnemonic
// sentences. Exported for callers that implement their own splitting.
const IdeographicSpace = '　'

// Normalize returns s in Unicode NFKD form with every ideographic space
// replaced by an ASCII space. NFKD already decomposes U+3000 to U+0020; the
// explicit replacement keeps the guarantee independent of that table detail.
func Normalize(s string) string {
	s = norm.NFKD.String(s)
	return strings.ReplaceAll(s, string(IdeographicSpace), " ")
}

// Fields splits s into words, treating ASCII whitespace and the ideographic
// space as equivalent separators and collapsing runs. Splitting behaves the
// same whether it runs before or after Normalize.
func Fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', IdeographicSpace:
			return true
		}
		return false
	})
}
