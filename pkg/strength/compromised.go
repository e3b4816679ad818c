package strength

import (
	"slices"
	"strings"

	"github.com/hatchdotlol/cipherpass/pkg/wordlist"
)

// Checker detects passwords that appear on a known-compromised list.
type Checker struct {
	List wordlist.Store
}

func (c Checker) known(entry string) bool {
	if c.List != nil && c.List.Contains(entry) {
		return true
	}
	return slices.Contains(CommonPasswords, entry)
}

// IsCompromised checks the lower-cased password, its base word when that is
// at least four letters long, and its leetspeak-normalised form.
func (c Checker) IsCompromised(password string) bool {
	lower := strings.ToLower(password)

	if c.known(lower) {
		return true
	}

	if base := BaseWord(lower); len(base) >= 4 && c.known(base) {
		return true
	}

	return c.known(Normalize(lower))
}
