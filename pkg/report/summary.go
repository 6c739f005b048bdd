package report

import (
	"github.com/Sumatoshi-tech/seqstats/pkg/metrics"
)

// Summary holds the descriptive statistics of a length distribution.
type Summary struct {
	Count           int64   `json:"count"             yaml:"count"`
	Total           int64   `json:"total"             yaml:"total"`
	Min             int64   `json:"min"               yaml:"min"`
	Max             int64   `json:"max"               yaml:"max"`
	Median          float64 `json:"median"            yaml:"median"`
	Mean            float64 `json:"mean"              yaml:"mean"`
	LenWeightedMean float64 `json:"len_weighted_mean" yaml:"len_weighted_mean"`
	N50             int64   `json:"n50"               yaml:"n50"`
	N90             int64   `json:"n90"               yaml:"n90"`
	L50             int64   `json:"l50"               yaml:"l50"`
	L50Percent      float64 `json:"l50_percent"       yaml:"l50_percent"`
	CV              float64 `json:"cv"                yaml:"cv"`

	rows []Row
}

// Row is one rendered statistic.
type Row struct {
	Name        string
	DisplayName string
	Description string
	Value       float64
	Integer     bool
}

type describer interface {
	DisplayName() string
	Description() string
}

// Summarize computes every registered metric over lengths. Lengths must be
// positive; Summarize panics otherwise, like [stats.N50].
func Summarize(lengths []int32) Summary {
	reg := NewRegistry()

	ints, _ := metrics.ComputeAll[[]int32, int64](reg, lengths)
	floats, _ := metrics.ComputeAll[[]int32, float64](reg, lengths)

	summary := Summary{
		Count:           ints[MetricCount],
		Total:           ints[MetricTotal],
		Min:             ints[MetricMin],
		Max:             ints[MetricMax],
		Median:          floats[MetricMedian],
		Mean:            floats[MetricMean],
		LenWeightedMean: floats[MetricLenWeightedMean],
		N50:             ints[MetricN50],
		N90:             ints[MetricN90],
		L50:             ints[MetricL50],
		L50Percent:      floats[MetricL50Percent],
		CV:              floats[MetricCV],
	}

	for _, name := range reg.Names() {
		m, _ := reg.Get(name)
		meta, _ := m.(describer)

		row := Row{Name: name}
		if meta != nil {
			row.DisplayName = meta.DisplayName()
			row.Description = meta.Description()
		}

		if v, ok := ints[name]; ok {
			row.Value = float64(v)
			row.Integer = true
		} else {
			row.Value = floats[name]
		}

		summary.rows = append(summary.rows, row)
	}

	return summary
}

// Rows returns the statistics in report order.
func (s Summary) Rows() []Row {
	return s.rows
}
