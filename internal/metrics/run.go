package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/delatech/waveform/internal/compare"
	apperrors "github.com/delatech/waveform/internal/errors"
)

const namespace = "wavecmp"

// RunMetrics holds the gauges describing one comparison run.
type RunMetrics struct {
	registry *prometheus.Registry

	values     prometheus.Gauge
	mismatches prometheus.Gauge
	maxAbsDiff prometheus.Gauge
	threshold  prometheus.Gauge
	duration   prometheus.Gauge
	heapAlloc  prometheus.Gauge
	sys        prometheus.Gauge
	gcCycles   prometheus.Gauge
}

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// NewRunMetrics creates the gauges in a registry of their own, so nothing
// from the default Go collectors ends up in the textfile.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry:   prometheus.NewRegistry(),
		values:     newGauge("values_total", "Number of reference values compared."),
		mismatches: newGauge("mismatches_total", "Number of values whose difference exceeded the threshold."),
		maxAbsDiff: newGauge("max_abs_diff", "Largest absolute difference observed."),
		threshold:  newGauge("threshold", "Threshold used for the comparison."),
		duration:   newGauge("duration_seconds", "Wall time of the run, loading included."),
		heapAlloc:  newGauge("heap_alloc_bytes", "Heap in use when the run finished."),
		sys:        newGauge("sys_bytes", "Memory obtained from the OS when the run finished."),
		gcCycles:   newGauge("gc_cycles", "Completed GC cycles when the run finished."),
	}
	m.registry.MustRegister(m.values, m.mismatches, m.maxAbsDiff, m.threshold, m.duration,
		m.heapAlloc, m.sys, m.gcCycles)
	return m
}

// Registry exposes the underlying registry.
func (m *RunMetrics) Registry() *prometheus.Registry { return m.registry }

// Observe records the result of a completed comparison.
func (m *RunMetrics) Observe(s compare.Summary, threshold float64, elapsed time.Duration) {
	m.values.Set(float64(s.Total))
	m.mismatches.Set(float64(s.Wrong))
	m.maxAbsDiff.Set(s.MaxAbsDiff)
	m.threshold.Set(threshold)
	m.duration.Set(elapsed.Seconds())
	mem := ReadMemory()
	m.heapAlloc.Set(float64(mem.HeapAlloc))
	m.sys.Set(float64(mem.Sys))
	m.gcCycles.Set(float64(mem.NumGC))
}

// WriteTextfile writes the gauges to path in the Prometheus text format.
// The file is replaced atomically.
func (m *RunMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return apperrors.WrapError(err, "write metrics to %s", path)
	}
	return nil
}
