package papertrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := BcryptHasher{}

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash, "hash must be opaque")

	assert.True(t, h.Verify(hash, "s3cret"))
	assert.False(t, h.Verify(hash, "wrong"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	h := BcryptHasher{}
	first, err := h.Hash("s3cret")
	require.NoError(t, err)
	second, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify(first, "s3cret"))
	assert.True(t, h.Verify(second, "s3cret"))
}
