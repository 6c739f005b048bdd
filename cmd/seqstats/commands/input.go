package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/seqstats/pkg/lengths"
)

// inputPaths defaults to standard input.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{lengths.Stdin}
	}

	return args
}

func (rt *runtime) open(path string) (io.ReadCloser, error) {
	if path == lengths.Stdin {
		return io.NopCloser(rt.stdin), nil
	}

	return lengths.Open(path)
}

// readAll parses every path with parse and concatenates the results.
func readAll[T any](
	ctx context.Context, rt *runtime, command string, paths []string, parse func(io.Reader) ([]T, error),
) ([]T, error) {
	var out []T

	for _, path := range paths {
		values, err := readOne(rt, path, parse)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		rt.logger.DebugContext(ctx, "input read",
			"source", path,
			"values", len(values),
			"size", inputSize(path),
		)
		rt.metrics.RecordValues(ctx, command, len(values))

		out = append(out, values...)
	}

	return out, nil
}

func readOne[T any](rt *runtime, path string, parse func(io.Reader) ([]T, error)) (values []T, err error) {
	rc, err := rt.open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		err = errors.Join(err, rc.Close())
	}()

	return parse(rc)
}

// inputSize returns the on-disk size of path for logging, or "-" for stdin
// and unreadable paths.
func inputSize(path string) string {
	if path == lengths.Stdin {
		return "-"
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() < 0 {
		return "-"
	}

	return humanize.Bytes(uint64(info.Size()))
}
