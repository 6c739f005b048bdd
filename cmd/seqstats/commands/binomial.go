package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqstats/pkg/alg/stats"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
	"github.com/Sumatoshi-tech/seqstats/pkg/safeconv"
)

const (
	binomialCmdName  = "binomial"
	binomialArgCount = 3
)

// ErrInvalidArgument is returned for a malformed or out-of-range positional argument.
var ErrInvalidArgument = errors.New("invalid argument")

type binomialResult struct {
	N           uint    `json:"n"           yaml:"n"`
	K           uint    `json:"k"           yaml:"k"`
	P           float64 `json:"p"           yaml:"p"`
	Probability float64 `json:"probability" yaml:"probability"`
}

func newBinomialCommand(rt *runtime) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "binomial <n> <k> <p>",
		Short: "Probability of at most k successes in n trials with success probability p",
		Long: `Prints sum_{i=0..k} C(n,i) p^i (1-p)^(n-i) at full float64 precision.
Requires n >= 1, k <= n and 0 <= p < 1.`,
		Args: cobra.ExactArgs(binomialArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.run(cmd.Context(), binomialCmdName, func(_ context.Context) error {
				return runBinomial(rt, cmd, &out, args)
			})
		},
	}

	out.register(cmd)

	return cmd
}

func runBinomial(rt *runtime, cmd *cobra.Command, out *outputFlags, args []string) error {
	format, _, err := out.resolve(cmd, rt.cfg)
	if err != nil {
		return err
	}

	n, err := parseUint("n", args[0])
	if err != nil {
		return err
	}

	k, err := parseUint("k", args[1])
	if err != nil {
		return err
	}

	p, err := strconv.ParseFloat(args[2], 64)
	if err != nil || p < 0 || p >= 1 {
		return fmt.Errorf("%w: p %q must be in [0, 1)", ErrInvalidArgument, args[2])
	}

	if n < 1 {
		return fmt.Errorf("%w: n must be at least 1", ErrInvalidArgument)
	}

	if k > n {
		return fmt.Errorf("%w: k %d exceeds n %d", ErrInvalidArgument, k, n)
	}

	result := binomialResult{N: n, K: k, P: p, Probability: stats.BinomialSum(n, k, p)}

	if format != report.FormatText {
		return writeStructured(rt.stdout, format, result)
	}

	_, err = fmt.Fprintln(rt.stdout, strconv.FormatFloat(result.Probability, 'g', -1, 64))
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

func parseUint(name, raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidArgument, name, raw)
	}

	u, ok := safeconv.Uint64ToUint(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q out of range", ErrInvalidArgument, name, raw)
	}

	return u, nil
}
