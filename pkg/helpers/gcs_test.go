package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURLEscapesSegments(t *testing.T) {
	got := PublicURL("wisata", "contents/1700000000000-my pic #1?.png")
	assert.Equal(t, "https://storage.googleapis.com/wisata/contents/1700000000000-my%20pic%20%231%3F.png", got)

	back, ok := ObjectPathFromURL("wisata", got)
	require.True(t, ok)
	assert.Equal(t, "contents/1700000000000-my pic #1?.png", back)
}

func TestObjectPathFromURLRejectsOtherBuckets(t *testing.T) {
	_, ok := ObjectPathFromURL("wisata", "https://storage.googleapis.com/other/contents/a.png")
	assert.False(t, ok)
	_, ok = ObjectPathFromURL("wisata", "https://example.com/wisata/a.png")
	assert.False(t, ok)
}

func TestNilGCSStore(t *testing.T) {
	var s *GCSStore
	assert.Error(t, s.DeleteURL(context.Background(), "https://storage.googleapis.com/wisata/a.png"))
}
