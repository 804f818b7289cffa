package cmd

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"palette/internal/app"
)

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// newApplication bootstraps palette from the persistent flags of cmd.
func (o *rootOptions) newApplication(cmd *cobra.Command) (*app.Application, error) {
	return app.NewApplication(&app.Config{
		Limit:      o.limit,
		LimitSet:   cmd.Flags().Changed("limit"),
		Plain:      o.plain,
		Code:       o.code,
		Lined:      o.lined,
		CopyCode:   o.cpcode,
		Seed:       o.seed,
		Debug:      o.debug,
		LogOutput:  cmd.ErrOrStderr(),
		ConfigPath: o.configPath,
		Clipboard:  writeClipboard,
	})
}
