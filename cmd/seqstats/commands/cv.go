package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqstats/pkg/alg/stats"
	"github.com/Sumatoshi-tech/seqstats/pkg/lengths"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
)

const cvCmdName = "cv"

type cvResult struct {
	Count int      `json:"count" yaml:"count"`
	Mean  *float64 `json:"mean"  yaml:"mean"`
	CV    *float64 `json:"cv"    yaml:"cv"`
}

func newCVCommand(rt *runtime) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "cv [file...]",
		Short: "Coefficient of variation (%) of numeric samples, population convention",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd.Context(), cvCmdName, func(ctx context.Context) error {
				return runCV(ctx, rt, cmd, &out, inputPaths(args))
			})
		},
	}

	out.register(cmd)

	return cmd
}

func runCV(ctx context.Context, rt *runtime, cmd *cobra.Command, out *outputFlags, paths []string) error {
	format, opts, err := out.resolve(cmd, rt.cfg)
	if err != nil {
		return err
	}

	values, err := readAll(ctx, rt, cvCmdName, paths, lengths.ReadValues)
	if err != nil {
		return err
	}

	mean, _ := stats.MeanStdDev(values)
	cv := stats.CV(values)
	result := cvResult{Count: len(values), Mean: finite(mean), CV: finite(cv)}

	if result.CV == nil {
		rt.logger.WarnContext(ctx, "coefficient of variation is not finite", "mean", mean, "count", len(values))
	}

	if format != report.FormatText {
		return writeStructured(rt.stdout, format, result)
	}

	text := report.FormatFloat(cv, opts.Precision, opts.Humanize)
	if result.CV == nil && opts.Color {
		text = color.New(color.FgYellow).Sprint(text)
	}

	_, err = fmt.Fprintln(rt.stdout, text)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
