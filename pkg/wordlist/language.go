package wordlist

// Language identifies one supported wordlist.
type Language string

// Supported languages. The set is fixed at build time: adding a language
// means embedding its list under data/ and appending it here.
const (
	English Language = "english"
)

// Languages returns the supported languages in a stable order.
func Languages() []Language {
	return []Language{English}
}

// validationRules describes the per-language constraints every entry of a
// validated list must satisfy: length in Unicode code points and the set of
// allowed characters. Languages without an entry skip these checks.
type validationRules struct {
	minLen, maxLen int
	alphabet       string
}

var rulesByLanguage = map[Language]validationRules{
	English: {minLen: 3, maxLen: 8, alphabet: "abcdefghijklmnopqrstuvwxyz"},
}
