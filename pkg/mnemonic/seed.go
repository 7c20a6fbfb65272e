package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"

	"github.com/seedworks/mnemonic/pkg/textnorm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// seedIterations is the fixed PBKDF2 round count.
const seedIterations = 2048

// seedSaltPrefix is prepended to the normalized passphrase to form the salt.
const seedSaltPrefix = "mnemonic"

// ToSeed derives the 64-byte seed from a mnemonic sentence and an optional
// passphrase using PBKDF2 with HMAC-SHA512: password = NFKD(sentence), salt
// = "mnemonic" + NFKD(passphrase), 2048 iterations. It is a pure function
// of the two strings, needs no wordlist, and succeeds even on sentences
// that fail Check.
func ToSeed(sentence, passphrase string) []byte {
	password := []byte(textnorm.Normalize(sentence))
	salt := []byte(seedSaltPrefix + textnorm.Normalize(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}
