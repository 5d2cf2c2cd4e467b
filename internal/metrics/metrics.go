// Package metrics exposes import and export counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Imports         *prometheus.CounterVec // by result: ok, error
	ImportedOrders  prometheus.Counter
	DiscardedRows   prometheus.Counter
	Exports         *prometheus.CounterVec // by format and result
	ExportedRows    *prometheus.CounterVec // by format
	SkippedRows     *prometheus.CounterVec // by format
	ImportDuration  prometheus.Histogram
	ImportsInFlight prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	imports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderflow_imports_total",
		Help: "Order file imports by result.",
	}, []string{"result"})
	importedOrders := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orderflow_imported_orders_total",
		Help: "Orders kept after normalization.",
	})
	discarded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orderflow_discarded_rows_total",
		Help: "Blank rows dropped during import.",
	})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderflow_exports_total",
		Help: "Courier exports by format and result.",
	}, []string{"format", "result"})
	exportedRows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderflow_exported_rows_total",
		Help: "Rows written to courier files.",
	}, []string{"format"})
	skippedRows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderflow_skipped_rows_total",
		Help: "Selected orders left out of an export by validation.",
	}, []string{"format"})
	importDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderflow_import_duration_seconds",
		Help:    "Time spent decoding and normalizing an import.",
		Buckets: prometheus.DefBuckets,
	})
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orderflow_imports_in_flight",
		Help: "Imports currently holding a limiter slot.",
	})

	r.MustRegister(imports, importedOrders, discarded, exports, exportedRows, skippedRows, importDuration, inFlight)
	return &Registry{
		reg:             r,
		Imports:         imports,
		ImportedOrders:  importedOrders,
		DiscardedRows:   discarded,
		Exports:         exports,
		ExportedRows:    exportedRows,
		SkippedRows:     skippedRows,
		ImportDuration:  importDuration,
		ImportsInFlight: inFlight,
	}
}

// ObserveImport records a finished import. A nil Registry is a no-op.
func (r *Registry) ObserveImport(imported, discarded int, took time.Duration, err error) {
	if r == nil {
		return
	}
	r.ImportDuration.Observe(took.Seconds())
	if err != nil {
		r.Imports.WithLabelValues("error").Inc()
		return
	}
	r.Imports.WithLabelValues("ok").Inc()
	r.ImportedOrders.Add(float64(imported))
	r.DiscardedRows.Add(float64(discarded))
}

// ObserveExport records an export attempt. A nil Registry is a no-op.
func (r *Registry) ObserveExport(format string, written, skipped int, err error) {
	if r == nil {
		return
	}
	if format == "" {
		format = "none"
	}
	if err != nil {
		r.Exports.WithLabelValues(format, "error").Inc()
		return
	}
	r.Exports.WithLabelValues(format, "ok").Inc()
	r.ExportedRows.WithLabelValues(format).Add(float64(written))
	r.SkippedRows.WithLabelValues(format).Add(float64(skipped))
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
