package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/colour"
)

var testPalette = colour.Palette{
	colour.NewInfo(colour.RGB{R: 255}),
	colour.NewInfo(colour.RGB{G: 128, B: 10}),
}

func render(t *testing.T, r Renderer, p colour.Palette) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	return buf.String()
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "ff0000\n00800a\n", render(t, Plain{}, testPalette))
	assert.Equal(t, "", render(t, Plain{}, colour.Palette{}))
}

func TestSwatch(t *testing.T) {
	expected := "\x1b[48;2;255;0;0m      \x1b[0m ff0000\n" +
		"\x1b[48;2;0;128;10m      \x1b[0m 00800a\n"
	assert.Equal(t, expected, render(t, Swatch{}, testPalette))
}

func TestSwatch_Width(t *testing.T) {
	got := render(t, Swatch{Width: 2}, testPalette[:1])
	assert.Equal(t, "\x1b[48;2;255;0;0m  \x1b[0m ff0000\n", got)
}

func TestLined(t *testing.T) {
	expected := "\x1b[48;2;255;0;0m\n" +
		"\x1b[48;2;0;128;10m\n" +
		"\x1b[0m\n"
	assert.Equal(t, expected, render(t, Lined{}, testPalette))
	assert.Equal(t, "\x1b[0m\n", render(t, Lined{}, colour.Palette{}))
}

func TestCode_Plain(t *testing.T) {
	expected := "[\n" +
		"  \"#ff0000\",\n" +
		"  \"#00800a\"\n" +
		"]\n"
	assert.Equal(t, expected, render(t, Code{}, testPalette))
}

func TestCode_SingleEntryHasNoComma(t *testing.T) {
	assert.Equal(t, "[\n  \"#ff0000\"\n]\n", render(t, Code{}, testPalette[:1]))
}

func TestCode_Empty(t *testing.T) {
	assert.Equal(t, "[]\n", render(t, Code{}, colour.Palette{}))
	assert.Equal(t, "[]\n", render(t, Code{Coloured: true}, nil))
}

func TestCode_Coloured(t *testing.T) {
	expected := "[\n" +
		"  \x1b[48;2;255;0;0m\"#ff0000\"\x1b[0m,\n" +
		"  \x1b[48;2;0;128;10m\"#00800a\"\x1b[0m\n" +
		"]\n"
	assert.Equal(t, expected, render(t, Code{Coloured: true}, testPalette))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRenderers_PropagateWriteErrors(t *testing.T) {
	for _, r := range []Renderer{Plain{}, Swatch{}, Lined{}, Code{}, Code{Coloured: true}} {
		err := r.Render(failingWriter{}, testPalette)
		assert.EqualError(t, err, "closed pipe")
	}
}
