package strength

import (
	"math"
	"slices"
	"unicode/utf8"
)

// CommonPasswords is the built-in list consulted even when no wordlist
// has been loaded.
var CommonPasswords = []string{
	"password",
	"123456",
	"12345678",
	"qwerty",
	"letmein",
	"admin",
	"welcome",
	"iloveyou",
}

// DictionaryWords are base words that cost a password most of its entropy.
var DictionaryWords = []string{
	"password",
	"admin",
	"welcome",
	"dragon",
	"football",
	"monkey",
	"shadow",
	"master",
	"hello",
	"freedom",
	"troubador",
}

const (
	commonPenalty     = 30
	repeatPenalty     = 15
	sequencePenalty   = 15
	keyboardPenalty   = 15
	dictionaryPenalty = 45
	passphrasePenalty = 50
)

// Entropy estimates the password's entropy in bits: character count times
// log2 of the pool size, less a fixed penalty per weakness detected.
// Never negative.
func Entropy(password string) float64 {
	if password == "" {
		return 0
	}

	pool := DetectCharsets(password).PoolSize()
	if pool == 0 {
		return 0
	}

	entropy := float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))

	normalized := Normalize(password)
	base := BaseWord(password)
	normalizedBase := BaseWord(normalized)

	if slices.Contains(CommonPasswords, normalized) {
		entropy -= commonPenalty
	}
	if HasRepeatedChars(password) {
		entropy -= repeatPenalty
	}
	if HasSequentialPattern(password) {
		entropy -= sequencePenalty
	}
	if HasKeyboardPattern(password) {
		entropy -= keyboardPenalty
	}

	if len(base) >= 4 &&
		(slices.Contains(DictionaryWords, base) || slices.Contains(DictionaryWords, normalizedBase)) {
		entropy -= dictionaryPenalty
	}

	if IsLikelyPassphrase(password) {
		entropy -= passphrasePenalty
	}

	return math.Max(entropy, 0)
}
