// Package commands implements the seqstats CLI subcommands.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
)

type globalFlags struct {
	configPath string
	verbose    bool
	quiet      bool
}

// Execute runs the CLI with args and always flushes telemetry before
// returning.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rt := &runtime{stdin: stdin, stdout: stdout, stderr: stderr}

	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	return errors.Join(err, rt.close(context.WithoutCancel(ctx)))
}

func newRootCommand(rt *runtime) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "seqstats",
		Short: "Descriptive statistics for sequence length distributions",
		Long: `seqstats computes assembly-style length statistics (N50, N90, L50),
means, coefficients of variation and a few reproducible numeric helpers.

Commands:
  summary   Length distribution report
  cv        Coefficient of variation of numeric samples
  random    Reproducible pseudo-random sequence
  binomial  Binomial cumulative probability
  diff      Absolute difference and percent ratio`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd.Context(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, flagConfig, "", "config file (default: seqstats.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, flagVerbose, "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, flagQuiet, "q", false, "only log errors")

	rootCmd.AddCommand(newSummaryCommand(rt))
	rootCmd.AddCommand(newCVCommand(rt))
	rootCmd.AddCommand(newRandomCommand(rt))
	rootCmd.AddCommand(newBinomialCommand(rt))
	rootCmd.AddCommand(newDiffCommand(rt))
	rootCmd.AddCommand(newVersionCommand(rt))

	return rootCmd
}
