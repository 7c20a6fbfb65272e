package mnemonic

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/seedworks/mnemonic/internal/log"
)

// Generate creates a fresh mnemonic from bits of entropy read from
// crypto/rand. bits must be one of 128, 160, 192, 224 or 256.
func (m *Mnemonic) Generate(bits int) (string, error) {
	return m.GenerateFrom(bits, rand.Reader)
}

// GenerateFrom is Generate with an explicit entropy source. The entropy is
// consumed once and not retained.
func (m *Mnemonic) GenerateFrom(bits int, random io.Reader) (string, error) {
	switch bits {
	case 128, 160, 192, 224, 256:
	default:
		return "", fmt.Errorf("%w: got %d bits", ErrEntropyLength, bits)
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(random, entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	// Never log the entropy or the resulting words.
	log.Codec.Debug().
		Str("language", string(m.Language())).
		Int("bits", bits).
		Msg("mnemonic generated")
	return m.ToMnemonic(entropy)
}
