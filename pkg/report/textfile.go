package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	promNamespace = "seqstats"
	promSubsystem = "length"
)

// WritePromTextfile writes rows as gauges in the Prometheus text exposition
// format, for the node_exporter textfile collector. The file is replaced
// atomically.
func WritePromTextfile(path string, rows []Row) error {
	registry := prometheus.NewRegistry()

	for _, row := range rows {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: promNamespace,
			Subsystem: promSubsystem,
			Name:      row.Name,
			Help:      row.Description,
		})

		err := registry.Register(gauge)
		if err != nil {
			return fmt.Errorf("register gauge %s: %w", row.Name, err)
		}

		gauge.Set(row.Value)
	}

	err := prometheus.WriteToTextfile(path, registry)
	if err != nil {
		return fmt.Errorf("write prometheus textfile: %w", err)
	}

	return nil
}
