package challenge_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idbridge/core/challenge"
)

func TestNew_URLSafe(t *testing.T) {
	chal, err := challenge.New()

	require.NoError(t, err)
	assert.NotContains(t, chal, "+")
	assert.NotContains(t, chal, "/")
	assert.NotContains(t, chal, "=")
}

func TestNew_Entropy(t *testing.T) {
	chal, err := challenge.New()

	require.NoError(t, err)
	// 32 bytes of base64 without padding is always 43 characters.
	assert.Len(t, chal, 43)

	decoded, err := base64.RawURLEncoding.DecodeString(chal)
	require.NoError(t, err)
	assert.Len(t, decoded, challenge.Size)
}

func TestNew_Unique(t *testing.T) {
	const n = 1000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		chal, err := challenge.New()
		require.NoError(t, err)

		_, dup := seen[chal]
		require.False(t, dup, "duplicate challenge generated")
		seen[chal] = struct{}{}
	}
}

func TestNew_EmbeddableInURL(t *testing.T) {
	chal, err := challenge.New()

	require.NoError(t, err)
	// The raw challenge must survive URL embedding without escaping.
	url := "https://example.com/verify?nonce=" + chal
	assert.True(t, strings.HasSuffix(url, chal))
}
