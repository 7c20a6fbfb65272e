package mnemonic

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerate_WordCounts(t *testing.T) {
	m := newEnglish(t)

	for bits, words := range map[int]int{128: 12, 160: 15, 192: 18, 224: 21, 256: 24} {
		sentence, err := m.Generate(bits)
		if err != nil {
			t.Fatalf("Generate(%d): %v", bits, err)
		}
		if got := len(strings.Fields(sentence)); got != words {
			t.Errorf("Generate(%d) word count = %d, want %d", bits, got, words)
		}
		if !m.Check(sentence) {
			t.Errorf("Generate(%d) produced a sentence that fails Check", bits)
		}
	}
}

func TestGenerate_InvalidBits(t *testing.T) {
	m := newEnglish(t)

	for _, bits := range []int{0, 1, 64, 127, 129, 512} {
		_, err := m.Generate(bits)
		if !errors.Is(err, ErrEntropyLength) {
			t.Errorf("Generate(%d) error = %v, want ErrEntropyLength", bits, err)
		}
	}
}

func TestGenerateFrom_Deterministic(t *testing.T) {
	m := newEnglish(t)

	source := bytes.Repeat([]byte{0x00}, 16)
	sentence, err := m.GenerateFrom(128, bytes.NewReader(source))
	if err != nil {
		t.Fatalf("GenerateFrom: %v", err)
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if sentence != want {
		t.Errorf("GenerateFrom = %q, want %q", sentence, want)
	}
}

func TestGenerateFrom_ShortSource(t *testing.T) {
	m := newEnglish(t)

	_, err := m.GenerateFrom(256, bytes.NewReader(make([]byte, 4)))
	if err == nil {
		t.Error("GenerateFrom with a short source should fail")
	}
}
