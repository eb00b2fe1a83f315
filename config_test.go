package codekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/codekit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := codekit.DefaultConfig()

	assert.Equal(t, 8, cfg.Pattern.Wildcards())
	assert.Equal(t, "########", cfg.Pattern.String())
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, 62, cfg.Charset.Len())
	assert.Empty(t, cfg.Prefix)
	assert.Empty(t, cfg.Suffix)
}
