package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	data := NewWelcomeData("", "Sari <b>", "sari@wisata.id", "user", time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC))

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Wisata, Sari <b>", subject)
	assert.Contains(t, text, "sari@wisata.id")
	assert.Contains(t, text, "02 January 2024, 03:04 UTC")
	assert.Contains(t, html, "Sari &lt;b&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}
