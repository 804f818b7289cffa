package generator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/colour"
)

var canonicalHex = regexp.MustCompile(`^[0-9a-f]{6}$`)

func TestRandom_Length(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"five", 5, 5},
		{"default limit", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Random(NewRand(0), tt.n)
			require.NotNil(t, p)
			assert.Len(t, p, tt.want)
		})
	}
}

func TestRandom_EntriesAreCanonical(t *testing.T) {
	for _, info := range Random(NewRand(0), 64) {
		assert.Regexp(t, canonicalHex, info.Hex)

		back, err := colour.Decode(info.Hex)
		require.NoError(t, err)
		assert.Equal(t, info.RGB, back)
	}
}

func TestRandom_SeedIsRepeatable(t *testing.T) {
	a := Random(NewRand(42), 16)
	b := Random(NewRand(42), 16)
	assert.Equal(t, a, b)

	c := Random(NewRand(43), 16)
	assert.NotEqual(t, a, c)
}

func TestRandom_CoversChannelRange(t *testing.T) {
	var sawLow, sawHigh bool
	for _, info := range Random(NewRand(7), 2000) {
		for _, v := range []uint8{info.RGB.R, info.RGB.G, info.RGB.B} {
			if v < 16 {
				sawLow = true
			}
			if v > 239 {
				sawHigh = true
			}
		}
	}
	assert.True(t, sawLow, "expected some channel values below 16")
	assert.True(t, sawHigh, "expected some channel values above 239")
}
