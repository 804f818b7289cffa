package cmd

import (
	"github.com/spf13/cobra"

	"palette/internal/generator"
	"palette/pkg/logging"
)

func newWalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "wal",
		Short: "Load colours from ~/.cache/wal/colors.json",
		Long: `Loads the "colors" object written by pywal and shows its entries in file
order, up to --limit colours.

The file location can be changed with walPath in the palette configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}

			path, err := a.WalPath()
			if err != nil {
				return err
			}
			logging.Debug("Wal", "Loading colours from %s", path)

			p, err := generator.Wal(path, a.Policy)
			if err != nil {
				return err
			}
			return a.Emit(cmd.OutOrStdout(), p.Take(a.Limit))
		},
	}
}
