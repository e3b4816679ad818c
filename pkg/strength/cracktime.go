package strength

import (
	"fmt"
	"math"
)

// Guesses per second for each attacker.
const (
	OnlineRate = 100
	GPURate    = 1e9
	BotnetRate = 1e11
	NationRate = 1e13
)

const impossibleSeconds = 1e18

const (
	instant            = "Instant"
	instantKnown       = "Instant (known password)"
	effectivelyForever = "Effectively impossible"
)

// CrackTimes is a human readable time-to-crack per attack model.
type CrackTimes struct {
	Online string `json:"online"`
	GPU    string `json:"gpu"`
	Botnet string `json:"botnet"`
	Nation string `json:"nation"`
}

type unit struct {
	singular string
	plural   string
	seconds  float64
}

// largest first
var units = []unit{
	{"millennium", "millennia", 31536000000},
	{"year", "years", 31536000},
	{"month", "months", 2592000},
	{"day", "days", 86400},
	{"hour", "hours", 3600},
	{"minute", "minutes", 60},
	{"second", "seconds", 1},
}

// EstimateCrackTimes projects 2^entropy guesses against every attack model.
// Compromised passwords fall to a dictionary attack immediately.
func EstimateCrackTimes(entropy float64, compromised bool) CrackTimes {
	if compromised {
		return CrackTimes{
			Online: instantKnown,
			GPU:    instant,
			Botnet: instant,
			Nation: instant,
		}
	}

	combinations := math.Pow(2, entropy)

	return CrackTimes{
		Online: FormatDuration(combinations / OnlineRate),
		GPU:    FormatDuration(combinations / GPURate),
		Botnet: FormatDuration(combinations / BotnetRate),
		Nation: FormatDuration(combinations / NationRate),
	}
}

// FormatDuration renders seconds using the largest whole unit.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || seconds <= 0 {
		return instant
	}
	if math.IsInf(seconds, 1) || seconds > impossibleSeconds {
		return effectivelyForever
	}

	for _, u := range units {
		amount := math.Floor(seconds / u.seconds)
		if amount >= 1 {
			label := u.singular
			if amount > 1 {
				label = u.plural
			}
			return fmt.Sprintf("%.0f %s", amount, label)
		}
	}

	return instant
}
