// Package lengths reads whitespace-separated numeric samples from text,
// optionally compressed.
package lengths

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/seqstats/pkg/safeconv"
)

// Sentinel parse errors.
var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidValue  = errors.New("invalid value")
)

const (
	commentPrefix = "#"
	maxLineBytes  = 1 << 20
)

// ReadLengths parses positive 32-bit lengths. Tokens are separated by
// whitespace; '#' starts a comment that runs to the end of the line.
func ReadLengths(r io.Reader) ([]int32, error) {
	var out []int32

	err := scanTokens(r, func(line int, tok string) error {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %q", ErrInvalidLength, line, tok)
		}

		length, ok := safeconv.Int64ToInt32(v)
		if !ok || length <= 0 {
			return fmt.Errorf("%w: line %d: %d is outside 1..2147483647", ErrInvalidLength, line, v)
		}

		out = append(out, length)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadValues parses finite float64 samples using the same tokenization as
// [ReadLengths].
func ReadValues(r io.Reader) ([]float64, error) {
	var out []float64

	err := scanTokens(r, func(line int, tok string) error {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: line %d: %q", ErrInvalidValue, line, tok)
		}

		out = append(out, v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func scanTokens(r io.Reader, fn func(line int, tok string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	line := 0

	for scanner.Scan() {
		line++

		text, _, _ := strings.Cut(scanner.Text(), commentPrefix)

		for _, tok := range strings.Fields(text) {
			err := fn(line, tok)
			if err != nil {
				return err
			}
		}
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}
