package wordlist

import (
	"errors"
	"fmt"

	"github.com/seedworks/mnemonic/internal/log"
)

// ErrAmbiguousWord is returned when a word belongs to zero lists or, should
// the cross-language uniqueness invariant ever be violated, to more than one.
var ErrAmbiguousWord = errors.New("wordlist: word not in exactly one list")

// Detect returns the unique language whose list contains word. Words are
// globally unique across all supported lists, so membership in exactly one
// list identifies the language.
func Detect(word string) (Language, error) {
	var found Language
	hits := 0
	for _, lang := range Languages() {
		wl, err := Load(lang)
		if err != nil {
			return "", err
		}
		if _, ok := wl.Index(word); ok {
			found = lang
			hits++
		}
	}
	if hits != 1 {
		return "", fmt.Errorf("%w: %q found in %d lists", ErrAmbiguousWord, word, hits)
	}
	// The word itself stays out of the log.
	logger := log.WithLanguage(string(found))
	logger.Debug().Msg("language detected")
	return found, nil
}
