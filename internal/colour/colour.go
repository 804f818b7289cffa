package colour

// RGB is a colour made of three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Info pairs a colour with its canonical hex text.
type Info struct {
	RGB RGB
	// Hex is lowercase, zero-padded and has no '#'.
	Hex string
}

// NewInfo builds the Info for c.
func NewInfo(c RGB) Info {
	return Info{RGB: c, Hex: Encode(c)}
}

// Palette is an ordered sequence of colours produced by one generator.
type Palette []Info

// Take returns at most the first n colours. A negative n keeps everything.
func (p Palette) Take(n int) Palette {
	if n < 0 || n >= len(p) {
		return p
	}
	return p[:n]
}

// Hexes returns the hex text of every colour, optionally prefixed with '#'.
func (p Palette) Hexes(withHash bool) []string {
	out := make([]string, 0, len(p))
	for _, c := range p {
		if withHash {
			out = append(out, "#"+c.Hex)
			continue
		}
		out = append(out, c.Hex)
	}
	return out
}
