package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInfo_HexMatchesChannels(t *testing.T) {
	info := NewInfo(RGB{R: 0xde, G: 0xad, B: 0x01})
	assert.Equal(t, "dead01", info.Hex)

	back, err := Decode(info.Hex)
	require.NoError(t, err)
	assert.Equal(t, info.RGB, back)
}

func TestInfoFromHex_Canonicalises(t *testing.T) {
	info, err := InfoFromHex("#DEAD01", PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, "dead01", info.Hex)

	_, err = InfoFromHex("nope", PolicyStrict)
	assert.ErrorIs(t, err, ErrMalformedHex)
}

func TestPalette_Take(t *testing.T) {
	p := Palette{
		NewInfo(RGB{R: 1}),
		NewInfo(RGB{R: 2}),
		NewInfo(RGB{R: 3}),
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"fewer", 2, 2},
		{"exact", 3, 3},
		{"more", 10, 3},
		{"negative keeps all", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, p.Take(tt.n), tt.want)
		})
	}
}

func TestPalette_Hexes(t *testing.T) {
	p := Palette{NewInfo(RGB{R: 0xff}), NewInfo(RGB{B: 0xff})}
	assert.Equal(t, []string{"ff0000", "0000ff"}, p.Hexes(false))
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, p.Hexes(true))
	assert.Empty(t, Palette{}.Hexes(true))
}
