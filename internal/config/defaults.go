package config

const (
	DefaultLimit       = 8
	DefaultHexPolicy   = "strict"
	DefaultSwatchWidth = 6
)

// GetDefaultConfig returns the built-in configuration.
// WalPath stays empty so the generator falls back to the wal cache in $HOME.
func GetDefaultConfig() PaletteConfig {
	return PaletteConfig{
		Limit:       DefaultLimit,
		HexPolicy:   DefaultHexPolicy,
		SwatchWidth: DefaultSwatchWidth,
	}
}
