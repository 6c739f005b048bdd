package commands

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/seqstats/pkg/config"
	"github.com/Sumatoshi-tech/seqstats/pkg/report"
)

const (
	flagFormat    = "format"
	flagPrecision = "precision"
	flagNoColor   = "no-color"
)

var knownFormats = []string{report.FormatText, report.FormatJSON, report.FormatYAML}

// outputFlags are the rendering flags shared by commands that print results.
// Unset flags fall back to the config.
type outputFlags struct {
	format    string
	precision int
	noColor   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, flagFormat, "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().IntVar(&o.precision, flagPrecision, config.DefaultOutputPrecision, "decimal places in text output")
	cmd.Flags().BoolVar(&o.noColor, flagNoColor, false, "disable colored output")
}

// resolve merges flags over cfg.
func (o *outputFlags) resolve(cmd *cobra.Command, cfg *config.Config) (string, report.TextOptions, error) {
	format := cfg.Output.Format
	if cmd.Flags().Changed(flagFormat) {
		format = o.format
	}

	if !slices.Contains(knownFormats, format) {
		return "", report.TextOptions{}, fmt.Errorf("%w: %q", report.ErrUnknownFormat, format)
	}

	opts := report.TextOptions{
		Precision: cfg.Output.Precision,
		Color:     cfg.Output.Color && !o.noColor,
		Humanize:  cfg.Output.Humanize,
	}

	if cmd.Flags().Changed(flagPrecision) {
		if o.precision < 0 || o.precision > config.MaxOutputPrecision {
			return "", report.TextOptions{}, fmt.Errorf("%w: %d", config.ErrInvalidPrecision, o.precision)
		}

		opts.Precision = o.precision
	}

	return format, opts, nil
}

// writeStructured renders v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	if format == report.FormatYAML {
		return report.RenderYAML(w, v)
	}

	return report.RenderJSON(w, v)
}

// finite returns a pointer to v, or nil when v is NaN or infinite, so
// structured outputs encode non-finite results as null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
