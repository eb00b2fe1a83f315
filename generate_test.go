package codekit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/codekit"
)

func TestGenerate(t *testing.T) {
	t.Run("produces exactly count distinct codes", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Length(8),
			Charset: codekit.Alphanumeric,
			Count:   3,
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)
		require.Len(t, codes, 3)

		seen := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			assert.Len(t, code, 8)
			assertDrawnFrom(t, code, codekit.Alphanumeric)

			_, dup := seen[code]
			assert.False(t, dup, "duplicate code %q in result", code)
			seen[code] = struct{}{}
		}
	})

	t.Run("template literals survive in every code", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Template("REF-##-##"),
			Charset: codekit.Numeric,
			Count:   20,
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)
		require.Len(t, codes, 20)

		for _, code := range codes {
			require.Len(t, code, len("REF-##-##"))
			assert.Equal(t, "REF-", code[:4])
			assert.Equal(t, byte('-'), code[6])
			for _, i := range []int{4, 5, 7, 8} {
				assert.Contains(t, codekit.Numeric.Pool(), string(code[i]))
			}
		}
	})

	t.Run("prefix and suffix wrap every code verbatim", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Length(4),
			Charset: codekit.Numeric,
			Count:   10,
			Prefix:  "promo-",
			Suffix:  "#2024",
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)

		for _, code := range codes {
			assert.True(t, strings.HasPrefix(code, "promo-"), "code %q missing prefix", code)
			// A '#' in the suffix stays literal; it is never a wildcard.
			assert.True(t, strings.HasSuffix(code, "#2024"), "code %q missing suffix", code)
			assert.Len(t, code, len("promo-")+4+len("#2024"))
		}
	})

	t.Run("exhausts the full space at the feasibility boundary", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Length(1),
			Charset: codekit.Alphanumeric,
			Count:   62,
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)
		require.Len(t, codes, 62)

		// 62 distinct one-character codes over a 62-character pool is the
		// whole pool.
		seen := make(map[string]struct{})
		for _, code := range codes {
			seen[code] = struct{}{}
		}
		assert.Len(t, seen, 62)
	})

	t.Run("fails just past the feasibility boundary", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Length(1),
			Charset: codekit.Alphanumeric,
			Count:   63,
		}

		codes, err := codekit.Generate(cfg)
		require.ErrorIs(t, err, codekit.ErrNonFeasibleConfig)
		assert.Nil(t, codes)
	})

	t.Run("fails when count exceeds a small space by far", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Length(1),
			Charset: codekit.Alphanumeric,
			Count:   100,
		}

		_, err := codekit.Generate(cfg)
		require.ErrorIs(t, err, codekit.ErrNonFeasibleConfig)
	})

	t.Run("custom charset draws only pool characters", func(t *testing.T) {
		charset := codekit.Custom("AB1")
		cfg := codekit.Config{
			Pattern: codekit.Length(5),
			Charset: charset,
			Count:   25,
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)
		require.Len(t, codes, 25)
		for _, code := range codes {
			assertDrawnFrom(t, code, charset)
		}
	})
}

func TestGenerateEdgeCases(t *testing.T) {
	t.Run("zero count returns empty result for any config", func(t *testing.T) {
		configs := []codekit.Config{
			{Pattern: codekit.Length(8), Charset: codekit.Alphanumeric},
			{Pattern: codekit.Template("ABC"), Charset: codekit.Numeric},
			{Pattern: codekit.Length(3), Charset: codekit.Custom("")},
		}

		for _, cfg := range configs {
			codes, err := codekit.Generate(cfg)
			require.NoError(t, err)
			assert.Empty(t, codes)
		}
	})

	t.Run("zero wildcards yields the single constant code", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Template("ABC"),
			Charset: codekit.Alphanumeric,
			Count:   1,
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{"ABC"}, codes)
	})

	t.Run("zero wildcards cannot yield two distinct codes", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Template("ABC"),
			Charset: codekit.Alphanumeric,
			Count:   2,
		}

		_, err := codekit.Generate(cfg)
		require.ErrorIs(t, err, codekit.ErrNonFeasibleConfig)
	})

	t.Run("empty charset with wildcards is never sampled", func(t *testing.T) {
		cfg := codekit.Config{
			Pattern: codekit.Length(4),
			Charset: codekit.Custom(""),
			Count:   1,
		}

		_, err := codekit.Generate(cfg)
		require.ErrorIs(t, err, codekit.ErrNonFeasibleConfig)
	})

	t.Run("huge exponent saturates instead of overflowing", func(t *testing.T) {
		// 62^1000 overflows any fixed-width integer; a wrapping
		// implementation would reject this clearly feasible config.
		cfg := codekit.Config{
			Pattern: codekit.Length(1000),
			Charset: codekit.Alphanumeric,
			Count:   5,
		}

		codes, err := codekit.Generate(cfg)
		require.NoError(t, err)
		require.Len(t, codes, 5)
		for _, code := range codes {
			assert.Len(t, code, 1000)
		}
	})
}

func TestGenerateOne(t *testing.T) {
	t.Run("matches the pattern shape", func(t *testing.T) {
		code, err := codekit.GenerateOne(codekit.Config{
			Pattern: codekit.Template("A#B#"),
			Charset: codekit.Numeric,
		})
		require.NoError(t, err)
		require.Len(t, code, 4)
		assert.Equal(t, byte('A'), code[0])
		assert.Equal(t, byte('B'), code[2])
		assert.Contains(t, codekit.Numeric.Pool(), string(code[1]))
		assert.Contains(t, codekit.Numeric.Pool(), string(code[3]))
	})

	t.Run("default config yields an 8-character alphanumeric code", func(t *testing.T) {
		code, err := codekit.GenerateOne(codekit.DefaultConfig())
		require.NoError(t, err)
		assert.Len(t, code, 8)
		assertDrawnFrom(t, code, codekit.Alphanumeric)
	})

	t.Run("no feasibility check", func(t *testing.T) {
		// Count is ignored by GenerateOne; an infeasible count still
		// renders a single candidate.
		code, err := codekit.GenerateOne(codekit.Config{
			Pattern: codekit.Length(1),
			Charset: codekit.Numeric,
			Count:   1000,
		})
		require.NoError(t, err)
		assert.Len(t, code, 1)
	})

	t.Run("empty charset with wildcards fails", func(t *testing.T) {
		_, err := codekit.GenerateOne(codekit.Config{
			Pattern: codekit.Length(1),
			Charset: codekit.Custom(""),
		})
		require.ErrorIs(t, err, codekit.ErrEmptyCharset)
	})

	t.Run("empty charset without wildcards succeeds", func(t *testing.T) {
		code, err := codekit.GenerateOne(codekit.Config{
			Pattern: codekit.Template("FIXED"),
			Charset: codekit.Custom(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "FIXED", code)
	})
}

// assertDrawnFrom checks that every character of code outside a pattern's
// literal positions belongs to the charset's pool. For fully-wildcard
// patterns that is every character.
func assertDrawnFrom(t *testing.T, code string, charset codekit.Charset) {
	t.Helper()
	pool := charset.Pool()
	for _, r := range code {
		assert.Contains(t, pool, string(r), "character %q of %q not in charset pool", r, code)
	}
}
