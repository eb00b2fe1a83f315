package codekit

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// GenerateOne renders a single code from the config's pattern and charset,
// without any uniqueness or feasibility checking. It fails only when the
// pattern has wildcard positions and the charset is empty.
func GenerateOne(cfg Config) (string, error) {
	tpl := cfg.Pattern.String()
	if cfg.Charset.Len() == 0 && strings.ContainsRune(tpl, Marker) {
		return "", ErrEmptyCharset
	}

	mu.Lock()
	defer mu.Unlock()
	return fill(cfg, tpl), nil
}

// Generate produces exactly cfg.Count pairwise-distinct codes matching the
// config's pattern, or fails with ErrNonFeasibleConfig before any sampling
// when the pattern's combinatorial space is too small to hold them.
//
// The result's order follows acceptance order but is not part of the
// contract; callers must treat it as an unordered set. Termination is
// guaranteed by the feasibility check, but when the capacity only barely
// exceeds the count the loop slows down on duplicate candidates, so callers
// on a deadline should wrap the call with their own timeout.
func Generate(cfg Config) ([]string, error) {
	capacity := pow(cfg.Charset.Len(), cfg.Pattern.Wildcards())
	if capacity < cfg.Count {
		return nil, ErrNonFeasibleConfig
	}
	if cfg.Count <= 0 {
		return nil, nil
	}

	tpl := cfg.Pattern.String()
	codes := make([]string, 0, cfg.Count)
	seen := make(map[string]struct{}, cfg.Count)

	mu.Lock()
	defer mu.Unlock()
	for len(codes) < cfg.Count {
		code := fill(cfg, tpl)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}

// fill renders one candidate: prefix, then the template with every marker
// replaced by a fresh sample, then suffix. Caller holds mu.
func fill(cfg Config, tpl string) string {
	var b strings.Builder
	b.Grow(len(cfg.Prefix) + len(tpl) + len(cfg.Suffix))
	b.WriteString(cfg.Prefix)
	for _, r := range tpl {
		if r == Marker {
			b.WriteRune(cfg.Charset.sample(rnd))
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteString(cfg.Suffix)
	return b.String()
}

// pow computes base**exp with saturation at math.MaxInt, so an oversized
// pattern can never overflow into a false feasibility pass. pow(b, 0) is 1
// for every b, including 0: a pattern without wildcards always has exactly
// one rendering.
func pow(base, exp int) int {
	if exp == 0 {
		return 1
	}
	if base == 0 {
		return 0
	}
	result := 1
	for i := 0; i < exp; i++ {
		if result > math.MaxInt/base {
			return math.MaxInt
		}
		result *= base
	}
	return result
}
