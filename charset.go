package codekit

import "math/rand"

const (
	digits       = "0123456789"
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumeric = letters + digits
)

type charsetKind int

const (
	charsetNumeric charsetKind = iota
	charsetAlphabetic
	charsetAlphanumeric
	charsetCustom
)

// Charset is a closed set of character pools that codes draw from.
// Use one of the predefined values (Numeric, Alphabetic, Alphanumeric)
// or build a caller-supplied pool with Custom. The zero value is Numeric.
type Charset struct {
	kind charsetKind
	pool []rune
}

// Predefined charsets.
var (
	// Numeric contains the ten ASCII digits.
	Numeric = Charset{kind: charsetNumeric}

	// Alphabetic contains the 52 lower- and uppercase ASCII letters.
	Alphabetic = Charset{kind: charsetAlphabetic}

	// Alphanumeric contains the 62 ASCII letters and digits.
	Alphanumeric = Charset{kind: charsetAlphanumeric}
)

// Custom builds a charset from a caller-supplied pool of characters.
// The pool is taken as a sequence, not a set: duplicate characters stay in
// the pool and raise their sampling probability accordingly. An empty pool
// yields a charset with Len() == 0, which can never be sampled.
func Custom(pool string) Charset {
	return Charset{kind: charsetCustom, pool: []rune(pool)}
}

// Len reports the number of characters available for sampling.
func (c Charset) Len() int {
	switch c.kind {
	case charsetNumeric:
		return len(digits)
	case charsetAlphabetic:
		return len(letters)
	case charsetAlphanumeric:
		return len(alphanumeric)
	case charsetCustom:
		return len(c.pool)
	}
	return 0
}

// Pool returns the charset's characters as a string, in sampling order.
// Useful for membership checks in callers and tests.
func (c Charset) Pool() string {
	switch c.kind {
	case charsetNumeric:
		return digits
	case charsetAlphabetic:
		return letters
	case charsetAlphanumeric:
		return alphanumeric
	case charsetCustom:
		return string(c.pool)
	}
	return ""
}

// sample draws one character uniformly over pool positions.
// Callers must ensure Len() > 0 and hold the source's lock.
func (c Charset) sample(rnd *rand.Rand) rune {
	switch c.kind {
	case charsetNumeric:
		return rune(digits[rnd.Intn(len(digits))])
	case charsetAlphabetic:
		return rune(letters[rnd.Intn(len(letters))])
	case charsetAlphanumeric:
		return rune(alphanumeric[rnd.Intn(len(alphanumeric))])
	case charsetCustom:
		return c.pool[rnd.Intn(len(c.pool))]
	}
	panic("codekit: unknown charset kind")
}
