// Package metrics provides interfaces for defining self-contained, reusable metrics.
//
// Each metric is a computation unit that:
//   - Declares its input requirements
//   - Computes a typed output
//   - Provides metadata for documentation and serialization
//
// This design lets the same statistic back the text table, the structured
// outputs and the Prometheus textfile export.
package metrics

// Metric is the core interface that all metrics must implement.
// Each metric is a self-contained computation with metadata.
type Metric[In, Out any] interface {
	// Name returns the machine-readable identifier (snake_case, unique).
	Name() string

	// DisplayName returns a human-readable name for UI/reports.
	DisplayName() string

	// Description returns what the metric measures and its units.
	Description() string

	// Type returns the metric category (e.g., "count", "length", "ratio").
	Type() string

	// Compute calculates the metric value from input data.
	Compute(input In) Out
}

// MetricMeta holds the common metadata for a metric.
// Embed this in metric implementations to satisfy metadata methods.
type MetricMeta struct {
	MetricName        string
	MetricDisplayName string
	MetricDescription string
	MetricType        string
}

// Name returns the machine-readable identifier.
func (m MetricMeta) Name() string { return m.MetricName }

// DisplayName returns a human-readable name for UI/reports.
func (m MetricMeta) DisplayName() string { return m.MetricDisplayName }

// Description returns detailed documentation.
func (m MetricMeta) Description() string { return m.MetricDescription }

// Type returns the metric category.
func (m MetricMeta) Type() string { return m.MetricType }

// Func adapts a plain function to the Metric interface.
type Func[In, Out any] struct {
	MetricMeta

	Fn func(In) Out
}

// Compute calls the wrapped function.
func (f Func[In, Out]) Compute(input In) Out { return f.Fn(input) }

// Registry holds a collection of metrics that can be computed together.
// Names preserves registration order.
type Registry struct {
	metrics map[string]any // name -> Metric[In, Out].
	order   []string
}

// NewRegistry creates an empty metric registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]any)}
}

// Register adds a metric to the registry. Registering a name twice replaces
// the earlier metric and keeps its position.
func Register[In, Out any](r *Registry, m Metric[In, Out]) {
	if _, exists := r.metrics[m.Name()]; !exists {
		r.order = append(r.order, m.Name())
	}

	r.metrics[m.Name()] = m
}

// Get retrieves a metric by name.
func (r *Registry) Get(name string) (any, bool) {
	m, ok := r.metrics[name]

	return m, ok
}

// Lookup retrieves a metric by name with its concrete input and output types.
// It reports false when the name is unknown or the types differ.
func Lookup[In, Out any](r *Registry, name string) (Metric[In, Out], bool) {
	m, ok := r.metrics[name]
	if !ok {
		return nil, false
	}

	typed, ok := m.(Metric[In, Out])

	return typed, ok
}

// Names returns all registered metric names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// ComputeAll evaluates every metric with the given input and output types
// and returns the results keyed by name, plus the names in registration
// order. Metrics of other types are skipped.
func ComputeAll[In, Out any](r *Registry, input In) (map[string]Out, []string) {
	results := make(map[string]Out, len(r.order))
	names := make([]string, 0, len(r.order))

	for _, name := range r.order {
		m, ok := r.metrics[name].(Metric[In, Out])
		if !ok {
			continue
		}

		results[name] = m.Compute(input)
		names = append(names, name)
	}

	return results, names
}
