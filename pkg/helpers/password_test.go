package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)

	assert.NotEqual(t, "rahasia123", hash)
	assert.True(t, CompareHashAndPassword(hash, "rahasia123"))
	assert.False(t, CompareHashAndPassword(hash, "rahasia124"))
}
