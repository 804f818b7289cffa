package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"palette/internal/colour"
	"palette/internal/config"
	"palette/internal/generator"
	"palette/internal/render"
	"palette/pkg/logging"
)

// Application is one bootstrapped palette invocation: logging is set up,
// configuration is loaded and the output mode is resolved.
type Application struct {
	config *Config

	Limit  int
	Policy colour.Policy
	Mode   render.Mode
	Rand   *rand.Rand
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelWarn
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logOutput := cfg.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	logging.InitForCLI(appLogLevel, logOutput)

	var paletteCfg config.PaletteConfig
	var err error

	if cfg.ConfigPath != "" {
		paletteCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		paletteCfg, err = config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load palette configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.PaletteConfig = &paletteCfg

	limit := paletteCfg.Limit
	if cfg.LimitSet {
		if cfg.Limit < 0 {
			return nil, fmt.Errorf("--limit must not be negative, got %d", cfg.Limit)
		}
		limit = cfg.Limit
	}

	if cfg.CopyCode && cfg.Clipboard == nil {
		return nil, errors.New("clipboard copy requested but no clipboard is configured")
	}

	a := &Application{
		config: cfg,
		Limit:  limit,
		Policy: paletteCfg.Policy(),
		Mode: render.ResolveMode(render.Flags{
			Plain: cfg.Plain,
			Code:  cfg.Code,
			Lined: cfg.Lined,
		}),
		Rand: generator.NewRand(cfg.Seed),
	}
	logging.Debug("Bootstrap", "Render mode %s, limit %d, hex policy %s", a.Mode, a.Limit, a.Policy)
	return a, nil
}

// WalPath returns the configured wal colour file, or the default under $HOME.
func (a *Application) WalPath() (string, error) {
	if p := a.config.PaletteConfig.WalPath; p != "" {
		return p, nil
	}
	return generator.DefaultWalPath()
}

// Emit renders p to w and, when requested, copies the plain array literal
// to the clipboard.
func (a *Application) Emit(w io.Writer, p colour.Palette) error {
	r := render.New(a.Mode, render.Options{SwatchWidth: a.config.PaletteConfig.SwatchWidth})
	if err := r.Render(w, p); err != nil {
		return fmt.Errorf("writing palette: %w", err)
	}

	if !a.config.CopyCode {
		return nil
	}
	var buf bytes.Buffer
	if err := (render.Code{}).Render(&buf, p); err != nil {
		return err
	}
	if err := a.config.Clipboard(buf.String()); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	logging.Info("Clipboard", "Copied %d colours to the clipboard", len(p))
	return nil
}
