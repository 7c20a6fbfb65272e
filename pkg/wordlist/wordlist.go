// Package wordlist provides the fixed 2048-entry vocabularies that mnemonics
// are encoded against, with load-time validation, O(1) reverse lookup and
// language auto-detection.
package wordlist

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/seedworks/mnemonic/internal/log"
	"github.com/seedworks/mnemonic/pkg/textnorm"
)

// Size is the number of entries in every wordlist.
const Size = 2048

// ErrLoad is returned when a wordlist cannot be loaded or fails validation.
var ErrLoad = errors.New("wordlist: load failed")

//go:embed data/*.txt
var listFS embed.FS

// Wordlist is one language's ordered vocabulary. It is immutable after Load
// and safe to share by reference across concurrent callers.
type Wordlist struct {
	lang  Language
	words []string
	// index is keyed by the normalized form of each word. Some standardized
	// lists are not in code-point-sorted order, so lookups must not assume
	// binary-search compatibility; the map trades a little load-time work
	// for order-independent O(1) lookups.
	index map[string]int
}

var (
	loadMu sync.Mutex
	loaded = map[Language]*Wordlist{}
)

// Load returns the wordlist for lang, reading and validating the embedded
// list on first use. The result is cached for the process lifetime.
func Load(lang Language) (*Wordlist, error) {
	loadMu.Lock()
	defer loadMu.Unlock()
	if wl, ok := loaded[lang]; ok {
		return wl, nil
	}
	wl, err := parse(lang)
	if err != nil {
		return nil, err
	}
	loaded[lang] = wl
	log.Wordlist.Debug().
		Str("language", string(lang)).
		Int("words", len(wl.words)).
		Msg("wordlist loaded")
	return wl, nil
}

func parse(lang Language) (*Wordlist, error) {
	defer log.Benchmark("wordlist_parse")()
	raw, err := listFS.ReadFile("data/" + string(lang) + ".txt")
	if err != nil {
		return nil, fmt.Errorf("%w: no embedded list for language %q", ErrLoad, lang)
	}
	return parseBytes(lang, raw)
}

func parseBytes(lang Language, raw []byte) (*Wordlist, error) {
	if strings.HasPrefix(string(raw), "\uFEFF") {
		return nil, fmt.Errorf("%w: %s list has a byte-order mark", ErrLoad, lang)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != Size {
		return nil, fmt.Errorf("%w: %s list has %d entries, want %d", ErrLoad, lang, len(lines), Size)
	}

	rules, checked := rulesByLanguage[lang]
	wl := &Wordlist{
		lang:  lang,
		words: make([]string, 0, Size),
		index: make(map[string]int, Size),
	}
	for i, word := range lines {
		if word == "" || word != strings.TrimSpace(word) {
			return nil, fmt.Errorf("%w: %s list entry %d is blank or padded", ErrLoad, lang, i)
		}
		if checked {
			if err := checkEntry(word, rules); err != nil {
				return nil, fmt.Errorf("%w: %s list entry %q: %v", ErrLoad, lang, word, err)
			}
		}
		key := textnorm.Normalize(word)
		if _, dup := wl.index[key]; dup {
			return nil, fmt.Errorf("%w: %s list has duplicate entry %q", ErrLoad, lang, word)
		}
		wl.index[key] = i
		wl.words = append(wl.words, word)
	}
	return wl, nil
}

func checkEntry(word string, rules validationRules) error {
	n := 0
	for _, r := range word {
		if !strings.ContainsRune(rules.alphabet, r) {
			return fmt.Errorf("character %q outside allowed alphabet", r)
		}
		n++
	}
	if n < rules.minLen || n > rules.maxLen {
		return fmt.Errorf("length %d outside [%d,%d]", n, rules.minLen, rules.maxLen)
	}
	return nil
}

// Language returns the language this list was loaded for.
func (wl *Wordlist) Language() Language {
	return wl.lang
}

// Words returns a copy of the ordered entries.
func (wl *Wordlist) Words() []string {
	out := make([]string, len(wl.words))
	copy(out, wl.words)
	return out
}

// Word returns the entry at position i. The codec only ever produces
// 11-bit positions, which are always in range.
func (wl *Wordlist) Word(i int) string {
	return wl.words[i]
}

// Index returns the position of word in the list. The given word is matched
// against the normalized form of each entry.
func (wl *Wordlist) Index(word string) (int, bool) {
	i, ok := wl.index[textnorm.Normalize(word)]
	return i, ok
}

// WordsWithPrefix returns every entry whose normalized form starts with the
// normalized prefix, in list order.
func (wl *Wordlist) WordsWithPrefix(prefix string) []string {
	p := textnorm.Normalize(prefix)
	var matches []string
	for _, w := range wl.words {
		if strings.HasPrefix(textnorm.Normalize(w), p) {
			matches = append(matches, w)
		}
	}
	return matches
}

// DuplicatePrefixes reports groups of entries sharing the same first n code
// points after normalization. A well-formed standard list has none at n=4;
// the result is a diagnostic, not a load-time invariant.
func (wl *Wordlist) DuplicatePrefixes(n int) map[string][]string {
	groups := make(map[string][]string)
	for _, w := range wl.words {
		r := []rune(textnorm.Normalize(w))
		if len(r) > n {
			r = r[:n]
		}
		groups[string(r)] = append(groups[string(r)], w)
	}
	for p, ws := range groups {
		if len(ws) < 2 {
			delete(groups, p)
		}
	}
	return groups
}
