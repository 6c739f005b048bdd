package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	headerMetric = "Metric"
	headerValue  = "Value"
	valueColumn  = 2
	yamlIndent   = 2

	// humanizeFrom is the magnitude below which numbers need no separators.
	humanizeFrom = 1000
)

// TextOptions controls the text table.
type TextOptions struct {
	Title     string
	Precision int
	Color     bool
	Humanize  bool
}

// RenderText writes rows as a two-column table.
func RenderText(w io.Writer, rows []Row, opts TextOptions) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.SetColumnConfigs([]table.ColumnConfig{{Number: valueColumn, Align: text.AlignRight}})
	tbl.AppendHeader(table.Row{headerMetric, headerValue})

	for _, row := range rows {
		tbl.AppendRow(table.Row{row.DisplayName, FormatValue(row, opts.Precision, opts.Humanize)})
	}

	var sb strings.Builder

	if opts.Title != "" {
		title := opts.Title
		if opts.Color {
			title = color.New(color.Bold, color.FgCyan).Sprint(title)
		}

		sb.WriteString(title)
		sb.WriteByte('\n')
	}

	sb.WriteString(tbl.Render())
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}

// FormatValue formats a row value. Integers ignore precision; non-finite
// floats render as NaN, +Inf or -Inf.
func FormatValue(row Row, precision int, humanized bool) string {
	if row.Integer {
		v := int64(row.Value)
		if humanized {
			return humanize.Comma(v)
		}

		return strconv.FormatInt(v, 10)
	}

	return FormatFloat(row.Value, precision, humanized)
}

// FormatFloat formats v with a fixed number of decimals, optionally with
// thousands separators in the integer part.
func FormatFloat(v float64, precision int, humanized bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	formatted := strconv.FormatFloat(v, 'f', precision, 64)
	if !humanized || math.Abs(v) < humanizeFrom {
		return formatted
	}

	intPart, frac, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	out := humanize.Comma(n)
	if hasFrac {
		out += "." + frac
	}

	return out
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report to JSON: %w", err)
	}

	data = append(data, '\n')

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}

	return nil
}

// RenderYAML writes v as YAML.
func RenderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("marshal report to YAML: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("flush YAML report: %w", err)
	}

	return nil
}

// Render writes a summary in the given format.
func Render(w io.Writer, format string, summary Summary, opts TextOptions) error {
	switch format {
	case FormatText, "":
		return RenderText(w, summary.Rows(), opts)
	case FormatJSON:
		return RenderJSON(w, summary)
	case FormatYAML:
		return RenderYAML(w, summary)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
