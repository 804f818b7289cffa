package config

// PaletteConfig is the top-level configuration structure for palette.
type PaletteConfig struct {
	// Limit is the default for --limit.
	Limit int `yaml:"limit,omitempty"`
	// HexPolicy is "strict" or "lenient", see colour.ParsePolicy.
	HexPolicy string `yaml:"hexPolicy,omitempty"`
	// SwatchWidth is the number of blank cells in a coloured swatch.
	SwatchWidth int `yaml:"swatchWidth,omitempty"`
	// WalPath overrides ~/.cache/wal/colors.json.
	WalPath string `yaml:"walPath,omitempty"`
}
