// Package mnemonic implements the deterministic transformation between raw
// entropy and a human-transcribable word sequence with an embedded checksum,
// plus seed derivation from a mnemonic sentence and passphrase (BIP-39).
//
// A Mnemonic handle is bound to one language's wordlist. ToSeed is
// independent of any wordlist and works on arbitrary sentences.
package mnemonic

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/seedworks/mnemonic/pkg/textnorm"
	"github.com/seedworks/mnemonic/pkg/wordlist"
)

// Sentinel errors for decoding and validation. Check is the only operation
// that swallows these; everything else surfaces them, since silently
// recovering would mask a corrupted secret.
var (
	ErrEntropyLength  = errors.New("mnemonic: entropy must be 16, 20, 24, 28 or 32 bytes")
	ErrMnemonicLength = errors.New("mnemonic: word count must be a positive multiple of 3")
	ErrUnknownWord    = errors.New("mnemonic: word not in wordlist")
	ErrChecksum       = errors.New("mnemonic: checksum mismatch")
)

// wordBits is the number of bits encoded by each word, fixed by the
// 2048-entry list size.
const wordBits = 11

// Mnemonic encodes and decodes mnemonics against one language's wordlist.
// It is stateless between calls and safe for concurrent use.
type Mnemonic struct {
	list *wordlist.Wordlist
}

// New returns a handle bound to the given language, loading its wordlist.
func New(lang wordlist.Language) (*Mnemonic, error) {
	wl, err := wordlist.Load(lang)
	if err != nil {
		return nil, fmt.Errorf("bind language %q: %w", lang, err)
	}
	return &Mnemonic{list: wl}, nil
}

// Language returns the language this handle is bound to.
func (m *Mnemonic) Language() wordlist.Language {
	return m.list.Language()
}

// Wordlist returns the immutable wordlist this handle is bound to.
func (m *Mnemonic) Wordlist() *wordlist.Wordlist {
	return m.list
}

// ToMnemonic encodes entropy as a space-separated mnemonic sentence. The
// leading len(entropy)*8/32 bits of SHA-256(entropy) are appended as a
// checksum before the bit stream is split into 11-bit word positions,
// most significant bit first.
func (m *Mnemonic) ToMnemonic(entropy []byte) (string, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", fmt.Errorf("%w: got %d bytes", ErrEntropyLength, len(entropy))
	}
	digest := sha256.Sum256(entropy)
	checkBits := len(entropy) * 8 / 32

	words := make([]string, 0, (len(entropy)*8+checkBits)/wordBits)
	acc := uint32(0)
	bits := 0
	for _, b := range entropy {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= wordBits {
			bits -= wordBits
			words = append(words, m.list.Word(int(acc>>uint(bits))&(1<<wordBits-1)))
		}
	}
	// The checksum is at most 8 bits, so one digest byte completes the
	// final 11-bit group; surplus low bits are discarded.
	acc = acc<<8 | uint32(digest[0])
	bits += 8
	for bits >= wordBits {
		bits -= wordBits
		words = append(words, m.list.Word(int(acc>>uint(bits))&(1<<wordBits-1)))
	}
	return strings.Join(words, " "), nil
}

// ToEntropy decodes a word sequence back to the entropy it encodes,
// verifying the embedded checksum. Every word count that is a positive
// multiple of 3 is accepted: n words carry n*11 bits, which always split
// exactly into 32k entropy bits and k checksum bits with k = n/3.
func (m *Mnemonic) ToEntropy(words []string) ([]byte, error) {
	if len(words) == 0 || len(words)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d words", ErrMnemonicLength, len(words))
	}
	totalBits := len(words) * wordBits
	checkBits := totalBits / 33
	entropyBits := totalBits - checkBits

	// Rebuild the bit stream from word positions, zero-padding the tail
	// byte so checksum bits stay addressable.
	buf := make([]byte, 0, totalBits/8+1)
	acc := uint32(0)
	bits := 0
	for _, w := range words {
		i, ok := m.list.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		acc = acc<<wordBits | uint32(i)
		bits += wordBits
		for bits >= 8 {
			bits -= 8
			buf = append(buf, byte(acc>>uint(bits)))
		}
	}
	if bits > 0 {
		buf = append(buf, byte(acc<<uint(8-bits)))
	}

	entropy := buf[:entropyBits/8]
	digest := sha256.Sum256(entropy)
	for i := 0; i < checkBits; i++ {
		claimed := buf[(entropyBits+i)/8] >> uint(7-(entropyBits+i)%8) & 1
		want := digest[i/8] >> uint(7-i%8) & 1
		if claimed != want {
			return nil, ErrChecksum
		}
	}
	return entropy, nil
}

// Check reports whether sentence is a well-formed mnemonic with a valid
// checksum. It never panics or returns an error: unknown words, bad lengths
// and checksum mismatches all yield false.
func (m *Mnemonic) Check(sentence string) bool {
	words := textnorm.Fields(textnorm.Normalize(sentence))
	if len(words) == 0 {
		return false
	}
	_, err := m.ToEntropy(words)
	return err == nil
}
