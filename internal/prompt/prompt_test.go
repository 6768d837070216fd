package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{name: "short input is verbatim", question: "cats", want: "cats"},
		{name: "greeting is verbatim", question: "Hello", want: "Hello"},
		{name: "greeting any case", question: "HEY", want: "HEY"},
		{name: "nine runes is verbatim", question: "123456789", want: "123456789"},
		{
			name:     "real question gets instruction",
			question: "Explain quantum computing",
			want:     Instruction + "\n\n" + "Explain quantum computing",
		},
		{
			name:     "exactly ten runes gets instruction",
			question: "1234567890",
			want:     Instruction + "\n\n1234567890",
		},
		{
			name:     "length is measured after trimming",
			question: "   cats   ",
			want:     "   cats   ",
		},
		{
			name:     "multibyte runes count once",
			question: "日本語のテスト",
			want:     "日本語のテスト",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.question))
		})
	}
}

func TestNeedsFormatGreetingNeedsExactMatch(t *testing.T) {
	assert.True(t, NeedsFormat("hello there, how are you"))
	assert.False(t, NeedsFormat("  hello  "))
}

func TestLengthCountsTrimmedRunes(t *testing.T) {
	assert.Equal(t, 0, Length("   "))
	assert.Equal(t, 4, Length("  cats  "))
	assert.Equal(t, 8, Length(" ünïcödé! "))
	assert.False(t, NeedsFormat(" ünïcödé! "))
}

func TestFindCard(t *testing.T) {
	c, err := FindCard("2")
	require.NoError(t, err)
	assert.Equal(t, Cards[1], c)

	c, err = FindCard("road trip")
	require.NoError(t, err)
	assert.Equal(t, Cards[0], c)

	c, err = FindCard("Readability")
	require.NoError(t, err)
	assert.Equal(t, Cards[3], c)

	_, err = FindCard("9")
	require.ErrorIs(t, err, ErrNoCard)

	_, err = FindCard("zzzzqqq")
	require.ErrorIs(t, err, ErrNoCard)

	_, err = FindCard("  ")
	require.ErrorIs(t, err, ErrNoCard)
}
