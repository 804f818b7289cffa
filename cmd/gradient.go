package cmd

import (
	"github.com/spf13/cobra"

	"palette/internal/generator"
)

func newGradientCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gradient <start> <end>",
		Short: "Step from one colour toward another",
		Long: `Prints --limit colours starting at <start>. Each following colour adds a
fixed per-channel step of (end - start) / limit, truncated toward zero,
so the last colour approaches <end> without always reaching it.

Colours are six hex digits with an optional leading '#', for example:
  palette gradient '#1e1e2e' '#f5c2e7' -n 6`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			p, err := generator.Gradient(args[0], args[1], a.Limit, a.Policy)
			if err != nil {
				return err
			}
			return a.Emit(cmd.OutOrStdout(), p)
		},
	}
}

func newGradientRandCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gradient-rand",
		Short: "Step between two random colours",
		Long:  `Picks two random colours and prints a --limit step gradient between them.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			p, err := generator.GradientRandom(a.Rand, a.Limit, a.Policy)
			if err != nil {
				return err
			}
			return a.Emit(cmd.OutOrStdout(), p)
		},
	}
}
