package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Ids at or beyond maxExactInt cannot be told apart from their neighbours.
const maxExactInt = 1 << 53

// toNumber converts raw request text to a number the same way for ids and
// limits. It never fails: malformed input yields NaN. Blank input is zero.
// Accepted forms are decimal numbers with optional sign, fraction and
// exponent, "Infinity" with optional sign, and unsigned 0x/0o/0b integers.
func toNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		if base := radix(s[1]); base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return math.NaN()
			}
			return float64(u)
		}
	}

	if !isDecimal(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func radix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// isDecimal rejects the spellings strconv accepts beyond plain decimal
// notation: inf, nan, hex floats and underscores.
func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}

// ParseID maps a path segment to a product id. ok is false for anything that
// cannot equal an integer id, which callers treat as "no such product".
func ParseID(raw string) (id int, ok bool) {
	f := toNumber(raw)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= maxExactInt {
		return 0, false
	}
	return int(f), true
}

// Limit caps the size of a search result. The zero value means no limit.
type Limit struct {
	set bool
	n   float64
}

// NoLimit keeps every result.
var NoLimit = Limit{}

// ParseLimit reads the limit query parameter. An empty parameter means no
// limit; unparsable text limits to zero results.
func ParseLimit(raw string) Limit {
	if raw == "" {
		return NoLimit
	}
	return Limit{set: true, n: toNumber(raw)}
}

// ParseLimitValues reads every value sent for the limit query parameter. A
// repeated parameter is not a number, so it limits to zero results.
func ParseLimitValues(values []string) Limit {
	switch len(values) {
	case 0:
		return NoLimit
	case 1:
		return ParseLimit(values[0])
	}
	return Limit{set: true, n: math.NaN()}
}

// LimitOf is a limit of exactly n results.
func LimitOf(n int) Limit {
	return Limit{set: true, n: float64(n)}
}

// Take returns how many of size leading results survive the limit. Fractions
// truncate toward zero and a negative limit counts back from the end.
func (l Limit) Take(size int) int {
	if !l.set {
		return size
	}

	n := l.n
	if math.IsNaN(n) {
		return 0
	}
	n = math.Trunc(n)

	if n < 0 {
		n += float64(size)
		if n < 0 {
			return 0
		}
		return int(n)
	}
	if n > float64(size) {
		return size
	}
	return int(n)
}
