package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"palette/internal/colour"
)

// DefaultSwatchWidth is the number of blank cells in a swatch.
const DefaultSwatchWidth = 6

// Renderer writes a palette to a terminal.
type Renderer interface {
	Render(w io.Writer, p colour.Palette) error
}

// Options tune the renderers returned by New.
type Options struct {
	SwatchWidth int
}

// New returns the renderer for mode.
func New(mode Mode, opts Options) Renderer {
	switch mode {
	case ModePlain:
		return Plain{}
	case ModePlainCode:
		return Code{}
	case ModeLined:
		return Lined{}
	case ModeCode:
		return Code{Coloured: true}
	default:
		return Swatch{Width: opts.SwatchWidth}
	}
}

var reset = termenv.CSI + termenv.ResetSeq + "m"

// background returns the 24-bit background escape for c.
func background(c colour.RGB) string {
	return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, termenv.Background, c.R, c.G, c.B)
}

// Plain prints one bare hex value per line.
type Plain struct{}

func (Plain) Render(w io.Writer, p colour.Palette) error {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(c.Hex)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Swatch prints a block of colour, then the hex value.
type Swatch struct {
	// Width is the number of blank cells; values below 1 use DefaultSwatchWidth.
	Width int
}

func (s Swatch) Render(w io.Writer, p colour.Palette) error {
	width := s.Width
	if width < 1 {
		width = DefaultSwatchWidth
	}
	block := strings.Repeat(" ", width)

	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(background(c.RGB))
		sb.WriteString(block)
		sb.WriteString(reset)
		sb.WriteString(" ")
		sb.WriteString(c.Hex)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Lined prints nothing but the background escape on each line and resets
// the terminal on a final line of its own.
type Lined struct{}

func (Lined) Render(w io.Writer, p colour.Palette) error {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(background(c.RGB))
		sb.WriteString("\n")
	}
	sb.WriteString(reset)
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Code prints the palette as an array literal of quoted "#rrggbb" strings.
type Code struct {
	Coloured bool
}

func (c Code) Render(w io.Writer, p colour.Palette) error {
	_, err := io.WriteString(w, c.format(p))
	return err
}

func (c Code) format(p colour.Palette) string {
	if len(p) == 0 {
		return "[]\n"
	}

	var sb strings.Builder
	sb.WriteString("[\n")
	for i, info := range p {
		sb.WriteString("  ")
		entry := fmt.Sprintf("%q", "#"+info.Hex)
		if c.Coloured {
			entry = background(info.RGB) + entry + reset
		}
		sb.WriteString(entry)
		if i < len(p)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("]\n")
	return sb.String()
}
