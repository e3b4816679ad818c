package strength

import (
	"fmt"

	"github.com/hatchdotlol/cipherpass/pkg/wordlist"
	"github.com/nbutton23/zxcvbn-go"
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// zxcvbn slows down sharply with length, only the prefix is scored
const maxZxcvbnLength = 50

// Report is everything the checker page shows for one password.
type Report struct {
	Entropy     float64    `json:"entropy"`
	EntropyText string     `json:"entropyText"`
	Score       int        `json:"score"`
	Rating      Rating     `json:"rating"`
	Compromised bool       `json:"compromised"`
	CrackTimes  CrackTimes `json:"crackTimes"`
	ZxcvbnScore int        `json:"zxcvbnScore"`
	Feedback    string     `json:"feedback,omitempty"`
}

// Estimator checks passwords against a wordlist and an entropy policy.
type Estimator struct {
	Checker
	MinEntropy float64
}

func NewEstimator(list wordlist.Store, minEntropy float64) *Estimator {
	return &Estimator{
		Checker:    Checker{List: list},
		MinEntropy: minEntropy,
	}
}

func (e *Estimator) Check(password string) Report {
	entropy := Entropy(password)
	score := Score(entropy)
	compromised := e.IsCompromised(password)

	r := Report{
		Entropy:     entropy,
		EntropyText: EntropyText(entropy),
		Score:       score,
		Rating:      RatingFor(score),
		Compromised: compromised,
		CrackTimes:  EstimateCrackTimes(entropy, compromised),
	}

	if password == "" {
		return r
	}

	r.ZxcvbnScore = ZxcvbnScore(password)

	if e.MinEntropy > 0 {
		if err := passwordvalidator.Validate(password, e.MinEntropy); err != nil {
			r.Feedback = err.Error()
		}
	}
	if compromised {
		r.Feedback = "this password appears in a list of compromised passwords"
	}

	return r
}

// ZxcvbnScore is zxcvbn's 0..4 guessability bucket, reported alongside our
// own estimate as a second opinion.
func ZxcvbnScore(password string) int {
	runes := []rune(password)
	if len(runes) > maxZxcvbnLength {
		password = string(runes[:maxZxcvbnLength])
	}
	return zxcvbn.PasswordStrength(password, nil).Score
}

func EntropyText(entropy float64) string {
	return fmt.Sprintf("%.1f bits", entropy)
}
