// Package generator produces random passwords and passphrases.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/bcrypt"
)

const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{}<>?"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16

	BcryptCost = 10
)

var (
	ErrNoCharset = errors.New("select at least one character set")
	ErrLength    = errors.New("length must be between 4 and 128")
	ErrWordCount = errors.New("words must be one of 12, 15, 18, 21 or 24")
)

// Default selects every set at the default length.
var Default = Options{Length: DefaultLength, Lower: true, Upper: true, Numbers: true, Symbols: true}

// Options selects the character sets a password is drawn from.
type Options struct {
	Length  int
	Lower   bool
	Upper   bool
	Numbers bool
	Symbols bool
}

func (o Options) Charset() string {
	var b strings.Builder
	if o.Lower {
		b.WriteString(Lower)
	}
	if o.Upper {
		b.WriteString(Upper)
	}
	if o.Numbers {
		b.WriteString(Numbers)
	}
	if o.Symbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Generate draws each character uniformly from the selected sets.
func Generate(o Options) (string, error) {
	charset := o.Charset()
	if charset == "" {
		return "", ErrNoCharset
	}
	if o.Length < MinLength || o.Length > MaxLength {
		return "", ErrLength
	}

	size := big.NewInt(int64(len(charset)))
	pw := make([]byte, o.Length)
	for i := range pw {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		pw[i] = charset[n.Int64()]
	}

	return string(pw), nil
}

// Passphrase returns a BIP-39 English mnemonic and the bits of entropy
// behind it.
func Passphrase(words int) (string, int, error) {
	bits, ok := map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}[words]
	if !ok {
		return "", 0, ErrWordCount
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", 0, err
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", 0, err
	}

	return mnemonic, bits, nil
}

// Hash returns a bcrypt hash of the password, for pasting into config.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
