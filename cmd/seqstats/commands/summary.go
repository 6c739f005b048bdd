package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqstats/pkg/lengths"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
)

const (
	summaryCmdName   = "summary"
	flagPromTextfile = "prom-textfile"
)

// ErrNoLengths is returned when the inputs contain no lengths.
var ErrNoLengths = errors.New("no lengths in input")

func newSummaryCommand(rt *runtime) *cobra.Command {
	var (
		out          outputFlags
		promTextfile string
	)

	cmd := &cobra.Command{
		Use:   "summary [file...]",
		Short: "Report N50, N90, L50, means and CV of a length distribution",
		Long: `Reads positive integer lengths, one or more per line, from the given files
or standard input ("-"). Lines may carry '#' comments. Files ending in .gz,
.zst or .lz4 are decompressed. All inputs are pooled into one distribution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd.Context(), summaryCmdName, func(ctx context.Context) error {
				return runSummary(ctx, rt, cmd, &out, promTextfile, inputPaths(args))
			})
		},
	}

	out.register(cmd)
	cmd.Flags().StringVar(&promTextfile, flagPromTextfile, "",
		"also write the summary as Prometheus gauges to this textfile")

	return cmd
}

func runSummary(
	ctx context.Context, rt *runtime, cmd *cobra.Command, out *outputFlags, promTextfile string, paths []string,
) error {
	format, opts, err := out.resolve(cmd, rt.cfg)
	if err != nil {
		return err
	}

	values, err := readAll(ctx, rt, summaryCmdName, paths, lengths.ReadLengths)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return ErrNoLengths
	}

	summary := report.Summarize(values)

	rt.logger.DebugContext(ctx, "summary computed", "count", summary.Count, "n50", summary.N50)

	if promTextfile != "" {
		err = report.WritePromTextfile(promTextfile, summary.Rows())
		if err != nil {
			return err
		}
	}

	opts.Title = strings.Join(paths, ", ")

	return report.Render(rt.stdout, format, summary, opts)
}
