package app

import (
	"io"

	"palette/internal/config"
)

// Config holds the settings one palette invocation was started with.
type Config struct {
	// Limit is the --limit value; it only applies when LimitSet is true,
	// otherwise the configured default is used.
	Limit    int
	LimitSet bool

	// Output switches
	Plain    bool
	Code     bool
	Lined    bool
	CopyCode bool

	// Seed for the random source, 0 for a fresh one
	Seed uint64

	// Debug settings
	Debug     bool
	LogOutput io.Writer

	// ConfigPath replaces the layered config lookup when set
	ConfigPath string

	// Clipboard receives the plain array literal when CopyCode is set.
	Clipboard func(string) error

	// PaletteConfig is filled in by NewApplication.
	PaletteConfig *config.PaletteConfig
}
