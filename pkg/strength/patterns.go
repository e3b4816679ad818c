package strength

import (
	"strings"
	"unicode/utf8"
)

var sequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
}

var keyboardPatterns = []string{"qwerty", "asdf", "zxcv"}

var leet = strings.NewReplacer(
	"@", "a",
	"0", "o",
	"1", "l",
	"3", "e",
	"$", "s",
	"!", "i",
)

// HasRepeatedChars reports a run of three or more identical characters.
func HasRepeatedChars(password string) bool {
	var prev rune
	run := 0
	for _, ch := range password {
		if run > 0 && ch == prev && !isLineTerminator(ch) {
			run++
			if run >= 3 {
				return true
			}
			continue
		}
		prev = ch
		run = 1
	}
	return false
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}

// HasSequentialPattern reports any four consecutive letters of the alphabet
// or four consecutive digits.
func HasSequentialPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, seq := range sequences {
		for i := 0; i+4 <= len(seq); i++ {
			if strings.Contains(lower, seq[i:i+4]) {
				return true
			}
		}
	}
	return false
}

func HasKeyboardPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range keyboardPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Normalize lower-cases the password and undoes common leetspeak substitutions.
func Normalize(password string) string {
	return leet.Replace(strings.ToLower(password))
}

// BaseWord keeps only the ASCII letters of the lower-cased password.
func BaseWord(password string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(password) {
		if ch >= 'a' && ch <= 'z' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// IsLikelyPassphrase matches long runs of lower-case letters only.
func IsLikelyPassphrase(password string) bool {
	if utf8.RuneCountInString(password) < 16 {
		return false
	}
	for _, ch := range password {
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
