package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"palette/internal/generator"
	"palette/internal/style"
)

func newColourizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "colourize",
		Aliases: []string{"colorize"},
		Short:   "Show hex colours read from stdin",
		Long: `Reads one hex colour per line from standard input until end of input and
shows them in order. Blank lines are ignored; the first malformed line
stops the command without printing anything. Empty input prints a warning
on stderr and no colours.

  printf '#ff0000\n#00ff00\n' | palette colourize`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if style.IsTerminal(in) {
				stderr := cmd.ErrOrStderr()
				fmt.Fprintln(stderr, style.For(stderr).Muted.Render("Reading colours from the terminal, finish with Ctrl-D"))
			}

			p, err := generator.Colourize(in, a.Policy)
			if err != nil {
				return err
			}
			if len(p) == 0 {
				stderr := cmd.ErrOrStderr()
				fmt.Fprintln(stderr, style.For(stderr).Warning.Render("No colours read from standard input"))
			}
			return a.Emit(cmd.OutOrStdout(), p)
		},
	}
}
