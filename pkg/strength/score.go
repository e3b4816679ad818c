package strength

import "math"

type Rating string

const (
	Danger  Rating = "danger"
	Warning Rating = "warning"
	Success Rating = "success"
)

// Score maps entropy onto 0..100.
func Score(entropy float64) int {
	if entropy >= 100 {
		return 100
	}
	if entropy <= 0 {
		return 0
	}
	return int(math.Round(entropy))
}

func RatingFor(score int) Rating {
	switch {
	case score < 40:
		return Danger
	case score < 70:
		return Warning
	default:
		return Success
	}
}
