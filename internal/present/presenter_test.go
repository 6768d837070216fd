package present

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/gemchat/internal/present/format"
)

func TestParseMode(t *testing.T) {
	for _, name := range []string{"plain", "pretty", "json", "ndjson", "tui"} {
		m, ok := ParseMode(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.String())
	}
	_, ok := ParseMode("xml")
	assert.False(t, ok)
}

func TestRenderAnswerModes(t *testing.T) {
	r := format.NewResult("q", "## Title\nbody", false, nil)

	var plain bytes.Buffer
	require.NoError(t, RenderAnswer(&plain, r, Options{Mode: ModePlain}))
	assert.Equal(t, "Title\nbody\n", plain.String())

	var nd bytes.Buffer
	require.NoError(t, RenderAnswer(&nd, r, Options{Mode: ModeNDJSON}))
	assert.Equal(t, "{\"kind\":\"heading\",\"text\":\"Title\"}\n{\"kind\":\"paragraph\",\"text\":\"body\"}\n", nd.String())

	var pretty bytes.Buffer
	require.NoError(t, RenderAnswer(&pretty, r, Options{Mode: ModePretty, Style: "notty"}))
	assert.Contains(t, pretty.String(), "body")

	err := RenderAnswer(&bytes.Buffer{}, r, Options{Mode: ModeTUI})
	assert.ErrorIs(t, err, ErrInteractive)
}
