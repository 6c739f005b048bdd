package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/seqstats/pkg/config"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
	"github.com/Sumatoshi-tech/seqstats/pkg/version"
)

const oneToTen = "1 2 3 4 5\n6 7 8 9 10\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSummary_TextFromStdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, oneToTen, "summary", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "N50")
	assert.Contains(t, out, "N90")
	assert.Contains(t, out, "55")
}

func TestSummary_JSONPoolsFiles(t *testing.T) {
	t.Parallel()

	first := writeInput(t, "a.txt", "1 2 3 4 5\n")
	second := writeInput(t, "b.txt", "6 7 8 9 10\n")

	out, _, err := execute(t, "", "summary", "-f", "json", first, second)
	require.NoError(t, err)

	var decoded report.Summary

	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, int64(10), decoded.Count)
	assert.Equal(t, int64(7), decoded.N50)
	assert.Equal(t, int64(10), decoded.N90)
	assert.Equal(t, int64(4), decoded.L50)
}

func TestSummary_YAML(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, oneToTen, "summary", "--format", "yaml")
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 7, decoded["n50"])
}

func TestSummary_PromTextfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seqstats.prom")

	_, _, err := execute(t, oneToTen, "summary", "-f", "json", "--prom-textfile", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seqstats_length_n50 7\n")
}

func TestSummary_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "empty_input", stdin: "# nothing\n", args: []string{"summary"}, wantErr: ErrNoLengths},
		{name: "zero_length", stdin: "5 0\n", args: []string{"summary"}, wantMsg: "line 1"},
		{name: "unknown_format", stdin: oneToTen, args: []string{"summary", "-f", "xml"}, wantErr: report.ErrUnknownFormat},
		{
			name: "bad_precision", stdin: oneToTen, args: []string{"summary", "--precision", "99"},
			wantErr: config.ErrInvalidPrecision,
		},
		{name: "missing_file", args: []string{"summary", "/nonexistent/lengths.txt"}, wantMsg: "lengths.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCV(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "2 4 4 4 5 5 7 9\n", "cv", "--precision", "1", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "40.0\n", out)
}

func TestCV_NonFiniteIsNullInJSON(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "-1 1\n", "cv", "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 2.0, decoded["count"], 1e-9)
	assert.Nil(t, decoded["cv"])
	assert.Contains(t, stderr, "not finite")
}

func TestRandom(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "random", "3")
	require.NoError(t, err)
	assert.Equal(t, "0\n1442695040888963407\n1876011003808476466\n", out)
}

func TestRandom_DefaultCountAndJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "random", "-f", "json")
	require.NoError(t, err)

	var decoded []int64

	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, config.DefaultRandomCount)
	assert.Equal(t, int64(0), decoded[0])
}

func TestRandom_InvalidCount(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "random", "-4")
	require.Error(t, err)

	_, _, err = execute(t, "", "random", "many")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = execute(t, "", "random", "4611686018427387904")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = execute(t, "", "random", "16777217")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBinomial(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "binomial", "4", "2", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "0.94921875\n", out)
}

func TestBinomial_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "n_zero", args: []string{"binomial", "0", "0", "0.5"}},
		{name: "k_exceeds_n", args: []string{"binomial", "3", "4", "0.5"}},
		{name: "p_one", args: []string{"binomial", "3", "1", "1"}},
		{name: "p_negative", args: []string{"binomial", "--", "3", "1", "-0.1"}},
		{name: "n_not_a_number", args: []string{"binomial", "x", "1", "0.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "diff", "3", "12", "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 9.0, decoded["abs_diff"], 1e-9)
	assert.InDelta(t, 25.0, decoded["percent_ratio"], 1e-9)
}

func TestDiff_ZeroDenominator(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "", "diff", "5", "0", "-f", "json")
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Nil(t, decoded["percent_ratio"])
	assert.Contains(t, stderr, "not finite")
}

func TestDiff_Text(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "diff", "1000", "3000", "--no-color", "--precision", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2,000")
	assert.Contains(t, out, "33.33")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
}

func TestExecute_ConfigFile(t *testing.T) {
	t.Parallel()

	cfgPath := writeInput(t, "seqstats.yaml", "output:\n  format: json\nrandom:\n  count: 2\n")

	out, _, err := execute(t, "", "--config", cfgPath, "random")
	require.NoError(t, err)
	assert.JSONEq(t, "[0, 1442695040888963407]", out)
}

func TestExecute_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "frobnicate")
	require.Error(t, err)
}

func TestExecute_QuietOnlyLogsErrors(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "", "-q", "diff", "5", "0", "-f", "json")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Empty(t, stderr)

	root := newRootCommand(&runtime{})
	assert.Equal(t, "only log errors", root.PersistentFlags().Lookup(flagQuiet).Usage)
}
