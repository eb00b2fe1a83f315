// Package codekit generates unique, pattern-constrained random codes such as
// referral codes, coupon codes, and invite codes.
//
// A code's shape is described by a Pattern: either a fixed number of random
// positions (Length) or an explicit template where '#' marks the random
// positions and everything else is copied verbatim (Template). Characters for
// the random positions come from a Charset, either one of the predefined
// pools (Numeric, Alphabetic, Alphanumeric) or a caller-supplied Custom pool.
//
// # Feasibility
//
// Generate checks up front whether charset.Len() ^ pattern.Wildcards() can
// hold the requested number of unique codes and fails fast with
// ErrNonFeasibleConfig before drawing a single sample. The check saturates on
// overflow, so very large patterns are always considered feasible rather
// than wrapping into a false pass.
//
// # Randomness
//
// Sampling uses a process-wide math/rand source seeded at startup. It is
// uniform but not cryptographic; do not use the generated codes as secrets.
//
// # Usage
//
//	import "github.com/dmitrymomot/codekit"
//
//	codes, err := codekit.Generate(codekit.Config{
//	    Pattern: codekit.Template("REF-####-####"),
//	    Charset: codekit.Alphanumeric,
//	    Count:   100,
//	})
//	if err != nil {
//	    // the template cannot hold 100 unique codes
//	}
//
// A single code without uniqueness bookkeeping:
//
//	code, err := codekit.GenerateOne(codekit.DefaultConfig())
//
// The result order of Generate is unspecified; treat it as a set. Custom
// charsets keep duplicate characters, which raises those characters'
// sampling probability on purpose.
package codekit
