package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"palette/internal/colour"
)

// ErrInvalidStepCount is returned for a gradient with fewer than one step.
var ErrInvalidStepCount = errors.New("gradient needs at least one step")

// Gradient walks from start toward end in steps colours.
//
// The first colour is start. Every later colour adds (end-start)/steps,
// truncated toward zero, to the previous colour's channels. The truncation
// is never corrected, so the last colour approaches end without necessarily
// reaching it.
func Gradient(start, end string, steps int, policy colour.Policy) (colour.Palette, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStepCount, steps)
	}

	from, err := colour.DecodeWith(start, policy)
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}
	to, err := colour.DecodeWith(end, policy)
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}

	dr := channelDelta(from.R, to.R, steps)
	dg := channelDelta(from.G, to.G, steps)
	db := channelDelta(from.B, to.B, steps)

	p := make(colour.Palette, 0, steps)
	current := from
	p = append(p, colour.NewInfo(current))
	for i := 1; i < steps; i++ {
		current = colour.RGB{
			R: stepChannel(current.R, dr),
			G: stepChannel(current.G, dg),
			B: stepChannel(current.B, db),
		}
		p = append(p, colour.NewInfo(current))
	}
	return p, nil
}

// GradientRandom builds a gradient between two random colours.
func GradientRandom(rng *rand.Rand, steps int, policy colour.Policy) (colour.Palette, error) {
	ends := Random(rng, 2)
	return Gradient(ends[0].Hex, ends[1].Hex, steps, policy)
}

func channelDelta(from, to uint8, steps int) int {
	return (int(to) - int(from)) / steps
}

// stepChannel saturates at the channel bounds.
func stepChannel(v uint8, delta int) uint8 {
	return uint8(max(0, min(255, int(v)+delta)))
}
