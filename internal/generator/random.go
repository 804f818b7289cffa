package generator

import (
	"math/rand/v2"

	"palette/internal/colour"
)

// NewRand returns the random source for one invocation. A zero seed draws
// the seed from the runtime; any other seed gives a repeatable sequence.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Random returns n colours with independently random channels.
func Random(rng *rand.Rand, n int) colour.Palette {
	if n <= 0 {
		return colour.Palette{}
	}

	p := make(colour.Palette, 0, n)
	for range n {
		p = append(p, colour.NewInfo(colour.RGB{
			R: randomChannel(rng),
			G: randomChannel(rng),
			B: randomChannel(rng),
		}))
	}
	return p
}

func randomChannel(rng *rand.Rand) uint8 {
	return uint8(rng.Uint32N(256))
}
