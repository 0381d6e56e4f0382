package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	reportsTotal   *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	broadcastSize  prometheus.Histogram
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		reportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketping_reports_generated_total",
				Help: "Total number of reports generated, by mode",
			},
			[]string{"mode"},
		),
		deliveries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketping_deliveries_total",
				Help: "Total number of message delivery attempts",
			},
			[]string{"status"},
		),
		broadcastSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "marketping_broadcast_recipients",
				Help:    "Number of recipients per broadcast",
				Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketping_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketping_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"operation"},
		),
	}
}

// RecordReport records a successfully generated report.
func (r *Recorder) RecordReport(mode string) {
	r.reportsTotal.WithLabelValues(mode).Inc()
}

// RecordDelivery records a delivery attempt outcome.
func (r *Recorder) RecordDelivery(status string) {
	r.deliveries.WithLabelValues(status).Inc()
}

// RecordBroadcastSize records the recipient count of one broadcast.
func (r *Recorder) RecordBroadcastSize(n int) {
	r.broadcastSize.Observe(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
