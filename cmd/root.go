package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"palette/internal/config"
	"palette/internal/style"
	"palette/pkg/logging"
)

// version is reported by --version and the version command.
var version = "dev"

// errNoCommand is returned when palette runs without a subcommand.
// Run maps it to exit status 2 after the help text has been printed.
var errNoCommand = errors.New("no command given")

// rootOptions holds the persistent flags shared by every palette command.
type rootOptions struct {
	limit      int
	plain      bool
	code       bool
	cpcode     bool
	lined      bool
	seed       uint64
	debug      bool
	configPath string
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
}

// Execute runs palette with the process arguments and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes palette with args and returns the process exit status:
// 0 on success, 1 on error and 2 when no subcommand was given.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoCommand):
		return 2
	default:
		logging.Debug("CLI", "Command failed: %v", err)
		fmt.Fprintf(stderr, "%s %v\n", style.For(stderr).Error.Render("E:"), err)
		return 1
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate, load and display colour palettes in the terminal",
		Long: `palette prints sequences of RGB colours as terminal swatches, plain hex
values or code-ready array literals.

Colours can be generated at random, interpolated between two endpoints,
loaded from the pywal cache (~/.cache/wal/colors.json) or read from stdin.`,
		Version: version,
		// Errors are printed by Run with an "E:" prefix.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return err
			}
			return errNoCommand
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "palette version %s\n" .Version}}`)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&opts.limit, "limit", "n", config.DefaultLimit, "Number of colours to show (step count for gradients)")
	flags.BoolVarP(&opts.plain, "plain", "p", false, "Print bare hex values without colour")
	flags.BoolVar(&opts.code, "code", false, "Print colours as an array literal")
	flags.BoolVar(&opts.cpcode, "cpcode", false, "Also copy the colours as a plain array literal to the clipboard")
	flags.BoolVarP(&opts.lined, "lined", "f", false, "Print full lines of colour")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for random colours (0 picks a fresh seed)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	flags.StringVar(&opts.configPath, "config", "", "Config file to use instead of ~/.config/palette and ./.palette")

	rootCmd.AddCommand(newRandCmd(opts))
	rootCmd.AddCommand(newWalCmd(opts))
	rootCmd.AddCommand(newGradientCmd(opts))
	rootCmd.AddCommand(newGradientRandCmd(opts))
	rootCmd.AddCommand(newColourizeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
