// Package config provides configuration management for palette.
//
// Configuration is read from YAML files and merged over built-in defaults,
// with later sources overriding earlier ones:
//
//  1. Default Configuration (compiled in)
//  2. User Configuration (~/.config/palette/config.yaml)
//  3. Project Configuration (./.palette/config.yaml)
//
// A file passed with --config replaces layers 2 and 3.
//
// # Configuration Structure
//
//	limit: 8            # default for --limit
//	hexPolicy: strict   # strict | lenient
//	swatchWidth: 6      # blank cells in a coloured swatch
//	walPath: ""         # defaults to ~/.cache/wal/colors.json
//
// Zero values in a file leave the lower layer's value untouched, so a file
// only needs the keys it changes.
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	p := generator.Random(rng, cfg.Limit)
package config
