package codekit

// Config bundles everything a generation call needs. It is a plain value:
// set the fields you care about and pass it by value, there is no builder
// and no mutation after the fact.
type Config struct {
	// Pattern describes the shape of each code.
	Pattern Pattern

	// Count is the number of unique codes Generate must produce.
	Count int

	// Charset supplies the characters for the pattern's wildcard positions.
	Charset Charset

	// Prefix and Suffix are literal strings wrapped around every generated
	// code verbatim. They are never scanned for wildcard markers and do not
	// count toward the pattern's combinatorial capacity, so a literal '#'
	// is allowed here.
	Prefix string
	Suffix string
}

// DefaultConfig returns a config for a single 8-character alphanumeric code.
func DefaultConfig() Config {
	return Config{
		Pattern: Length(8),
		Count:   1,
		Charset: Alphanumeric,
	}
}
