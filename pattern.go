package codekit

import "strings"

// Marker is the wildcard character in pattern templates. Every occurrence is
// replaced with a freshly sampled charset character during generation; every
// other character is copied verbatim. There is no escape mechanism: a literal
// '#' cannot appear in a template's fixed portion (put it in Config.Prefix or
// Config.Suffix instead, which are never scanned for markers).
const Marker = '#'

type patternKind int

const (
	patternLength patternKind = iota
	patternTemplate
)

// Pattern describes the shape of generated codes: either a fixed number of
// wildcard positions (Length) or an explicit template mixing literals and
// wildcards (Template). The zero value is Length(0), which renders the empty
// string.
type Pattern struct {
	kind     patternKind
	length   int
	template string
}

// Length returns a pattern of n wildcard positions and no literals.
// Negative n is treated as zero.
func Length(n int) Pattern {
	if n < 0 {
		n = 0
	}
	return Pattern{kind: patternLength, length: n}
}

// Template returns a pattern backed by an explicit template string, where
// every Marker character is a random-fill position and everything else is a
// literal.
func Template(s string) Pattern {
	return Pattern{kind: patternTemplate, template: s}
}

// Wildcards reports the number of random-fill positions in the pattern.
func (p Pattern) Wildcards() int {
	switch p.kind {
	case patternLength:
		return p.length
	case patternTemplate:
		return strings.Count(p.template, string(Marker))
	}
	return 0
}

// String renders the pattern's template, with Marker standing for each
// random-fill position.
func (p Pattern) String() string {
	switch p.kind {
	case patternLength:
		return strings.Repeat(string(Marker), p.length)
	case patternTemplate:
		return p.template
	}
	return ""
}
