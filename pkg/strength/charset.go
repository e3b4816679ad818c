package strength

// Pool sizes contributed by each character class.
const (
	lowerPool  = 26
	upperPool  = 26
	numberPool = 10
	symbolPool = 32
)

// Charsets records which character classes appear in a password.
type Charsets struct {
	Lower  bool
	Upper  bool
	Number bool
	Symbol bool
}

func DetectCharsets(password string) Charsets {
	var sets Charsets
	for _, ch := range password {
		switch {
		case ch >= 'a' && ch <= 'z':
			sets.Lower = true
		case ch >= 'A' && ch <= 'Z':
			sets.Upper = true
		case ch >= '0' && ch <= '9':
			sets.Number = true
		default:
			sets.Symbol = true
		}
	}
	return sets
}

// PoolSize is the number of distinct characters an attacker would have to
// try per position given the classes in use.
func (c Charsets) PoolSize() int {
	pool := 0
	if c.Lower {
		pool += lowerPool
	}
	if c.Upper {
		pool += upperPool
	}
	if c.Number {
		pool += numberPool
	}
	if c.Symbol {
		pool += symbolPool
	}
	return pool
}
