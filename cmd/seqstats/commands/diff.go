package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqstats/pkg/alg/stats"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
)

const (
	diffCmdName  = "diff"
	diffArgCount = 2
)

type diffResult struct {
	A            uint     `json:"a"             yaml:"a"`
	B            uint     `json:"b"             yaml:"b"`
	AbsDiff      uint     `json:"abs_diff"      yaml:"abs_diff"`
	PercentRatio *float64 `json:"percent_ratio" yaml:"percent_ratio"`
}

func newDiffCommand(rt *runtime) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Absolute difference |a-b| and percent ratio 100*a/b of two counts",
		Args:  cobra.ExactArgs(diffArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd.Context(), diffCmdName, func(ctx context.Context) error {
				return runDiff(ctx, rt, cmd, &out, args)
			})
		},
	}

	out.register(cmd)

	return cmd
}

func runDiff(ctx context.Context, rt *runtime, cmd *cobra.Command, out *outputFlags, args []string) error {
	format, opts, err := out.resolve(cmd, rt.cfg)
	if err != nil {
		return err
	}

	a, err := parseUint("a", args[0])
	if err != nil {
		return err
	}

	b, err := parseUint("b", args[1])
	if err != nil {
		return err
	}

	ratio := stats.PercentRatio(a, b)
	result := diffResult{A: a, B: b, AbsDiff: stats.AbsDiff(a, b), PercentRatio: finite(ratio)}

	if result.PercentRatio == nil {
		rt.logger.WarnContext(ctx, "percent ratio is not finite", "a", a, "b", b)
	}

	if format != report.FormatText {
		return writeStructured(rt.stdout, format, result)
	}

	rows := []report.Row{
		{DisplayName: "|a - b|", Value: float64(result.AbsDiff), Integer: true},
		{DisplayName: "a / b %", Value: ratio},
	}

	return report.RenderText(rt.stdout, rows, opts)
}
