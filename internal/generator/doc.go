// Package generator produces colour palettes.
//
// There are four sources of colours:
//
//   - Random: uniformly random channels from an explicit *rand.Rand.
//   - Gradient: repeated per-step deltas from a start colour toward an end
//     colour. GradientRandom picks both endpoints at random.
//   - Wal: the "colors" object of a pywal colors.json file, in document order.
//   - Colourize: newline-separated hex colours read from a stream.
//
// Every generator returns either a complete palette or an error; callers
// never receive a partial palette.
package generator
