package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqstats/pkg/alg/lcg"
	"github.com/Sumatoshi-tech/seqstats/pkg/config"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
)

const randomCmdName = "random"

func newRandomCommand(rt *runtime) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "random [n]",
		Short: "Print the first n values of the reproducible 64-bit LCG sequence",
		Long: `Prints 0 followed by n-1 successive values of
x' = x*6364136223846793005 + 1442695040888963407 (mod 2^64, signed).
n defaults to random.count from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd.Context(), randomCmdName, func(_ context.Context) error {
				return runRandom(rt, cmd, &out, args)
			})
		},
	}

	out.register(cmd)

	return cmd
}

func runRandom(rt *runtime, cmd *cobra.Command, out *outputFlags, args []string) error {
	format, _, err := out.resolve(cmd, rt.cfg)
	if err != nil {
		return err
	}

	n := rt.cfg.Random.Count

	if len(args) == 1 {
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 0 || n > config.MaxRandomCount {
			return fmt.Errorf("%w: count %q must be in [0, %d]", ErrInvalidArgument, args[0], config.MaxRandomCount)
		}
	}

	values := lcg.MakeRandomVec(nil, n)

	if format != report.FormatText {
		return writeStructured(rt.stdout, format, values)
	}

	var sb strings.Builder

	for _, v := range values {
		sb.WriteString(strconv.FormatInt(v, 10))
		sb.WriteByte('\n')
	}

	_, err = fmt.Fprint(rt.stdout, sb.String())
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
