package wordlist

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func mustLoad(t *testing.T, lang Language) *Wordlist {
	t.Helper()
	wl, err := Load(lang)
	if err != nil {
		t.Fatalf("Load(%s): %v", lang, err)
	}
	return wl
}

func TestLoad_English(t *testing.T) {
	wl := mustLoad(t, English)

	if wl.Language() != English {
		t.Errorf("Language() = %q, want %q", wl.Language(), English)
	}
	words := wl.Words()
	if len(words) != Size {
		t.Fatalf("len(Words()) = %d, want %d", len(words), Size)
	}
	if words[0] != "abandon" {
		t.Errorf("first word = %q, want %q", words[0], "abandon")
	}
	if words[Size-1] != "zoo" {
		t.Errorf("last word = %q, want %q", words[Size-1], "zoo")
	}
}

func TestLoad_Cached(t *testing.T) {
	a := mustLoad(t, English)
	b := mustLoad(t, English)
	if a != b {
		t.Error("Load should return the same immutable list on repeat calls")
	}
}

func TestParseBytes_Malformed(t *testing.T) {
	good, err := listFS.ReadFile("data/english.txt")
	if err != nil {
		t.Fatalf("read embedded list: %v", err)
	}

	truncated := good[:len(good)-len("zoo\n")]
	duplicated := append([]byte(nil), truncated...)
	duplicated = append(duplicated, "abandon\n"...)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"byte-order mark", append([]byte("\uFEFF"), good...)},
		{"wrong count", truncated},
		{"duplicate entry", duplicated},
		{"padded entry", append(append([]byte(nil), truncated...), " zoo\n"...)},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseBytes(English, tt.raw); !errors.Is(err, ErrLoad) {
				t.Errorf("parseBytes error = %v, want ErrLoad", err)
			}
		})
	}
}

func TestLoad_UnknownLanguage(t *testing.T) {
	_, err := Load(Language("klingon"))
	if !errors.Is(err, ErrLoad) {
		t.Errorf("Load(klingon) error = %v, want ErrLoad", err)
	}
}

func TestWordlist_Index(t *testing.T) {
	wl := mustLoad(t, English)

	tests := []struct {
		word string
		pos  int
		ok   bool
	}{
		{"abandon", 0, true},
		{"ability", 1, true},
		{"about", 3, true},
		{"zoo", 2047, true},
		{"security", 1558, true},
		{"notaword", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		pos, ok := wl.Index(tt.word)
		if ok != tt.ok || (ok && pos != tt.pos) {
			t.Errorf("Index(%q) = (%d, %v), want (%d, %v)", tt.word, pos, ok, tt.pos, tt.ok)
		}
	}
}

func TestWordlist_WordRoundTrip(t *testing.T) {
	wl := mustLoad(t, English)
	for i := 0; i < Size; i++ {
		pos, ok := wl.Index(wl.Word(i))
		if !ok || pos != i {
			t.Fatalf("Index(Word(%d)) = (%d, %v)", i, pos, ok)
		}
	}
}

func TestWordlist_EntryRules(t *testing.T) {
	// Load already enforces these, so this doubles as a check that the
	// embedded data actually satisfies the documented invariants.
	for _, lang := range Languages() {
		rules, checked := rulesByLanguage[lang]
		if !checked {
			continue
		}
		wl := mustLoad(t, lang)
		for _, w := range wl.Words() {
			if n := utf8.RuneCountInString(w); n < rules.minLen || n > rules.maxLen {
				t.Errorf("%s %q: length %d outside [%d,%d]", lang, w, n, rules.minLen, rules.maxLen)
			}
			for _, r := range w {
				if !strings.ContainsRune(rules.alphabet, r) {
					t.Errorf("%s %q: character %q outside alphabet", lang, w, r)
				}
			}
		}
	}
}

func TestWordlist_GlobalUniqueness(t *testing.T) {
	// Language auto-detection relies on no word appearing in two lists.
	seen := make(map[string]Language)
	for _, lang := range Languages() {
		wl := mustLoad(t, lang)
		for _, w := range wl.Words() {
			if prev, dup := seen[w]; dup {
				t.Errorf("word %q appears in both %s and %s", w, prev, lang)
			}
			seen[w] = lang
		}
	}
	if len(seen) != len(Languages())*Size {
		t.Errorf("union size = %d, want %d", len(seen), len(Languages())*Size)
	}
}

func TestWordlist_DuplicatePrefixes(t *testing.T) {
	for _, lang := range Languages() {
		wl := mustLoad(t, lang)
		if dups := wl.DuplicatePrefixes(4); len(dups) != 0 {
			t.Errorf("%s: %d duplicate 4-character prefixes: %v", lang, len(dups), dups)
		}
	}
}

func TestWordsWithPrefix(t *testing.T) {
	wl := mustLoad(t, English)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"acce", []string{"access"}},
		{"acc", []string{"access", "accident", "account", "accuse"}},
		{"zoo", []string{"zoo"}},
		{"qqq", nil},
	}
	for _, tt := range tests {
		if got := wl.WordsWithPrefix(tt.prefix); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WordsWithPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	lang, err := Detect("security")
	if err != nil {
		t.Fatalf("Detect(security): %v", err)
	}
	if lang != English {
		t.Errorf("Detect(security) = %q, want %q", lang, English)
	}
}

func TestDetect_Unknown(t *testing.T) {
	_, err := Detect("xxxxxxx")
	if !errors.Is(err, ErrAmbiguousWord) {
		t.Errorf("Detect(xxxxxxx) error = %v, want ErrAmbiguousWord", err)
	}
}

func TestLanguages_Order(t *testing.T) {
	a := Languages()
	b := Languages()
	if !reflect.DeepEqual(a, b) {
		t.Error("Languages() should return a stable order")
	}
	if len(a) == 0 {
		t.Fatal("no supported languages")
	}
}
