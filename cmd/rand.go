package cmd

import (
	"github.com/spf13/cobra"

	"palette/internal/generator"
)

func newRandCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rand",
		Short: "Generate a random palette",
		Long: `Generates --limit colours whose red, green and blue channels are drawn
independently at random. Use --seed to repeat a palette.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			return a.Emit(cmd.OutOrStdout(), generator.Random(a.Rand, a.Limit))
		},
	}
}
