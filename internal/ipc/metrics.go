package ipc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/wlcinput/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts daemon traffic. A nil *Metrics records nothing.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	connections prometheus.Gauge
}

// NewMetrics registers the daemon metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wlcinput_ipc_requests_total",
			Help: "IPC requests answered, by response type",
		}, []string{"type"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wlcinput_ipc_request_duration_seconds",
			Help:    "Time spent answering an IPC request",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}, []string{"type"}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wlcinput_ipc_connections",
			Help: "Open IPC connections",
		}),
	}
}

func (m *Metrics) observe(t MessageType, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(t.String()).Inc()
	m.duration.WithLabelValues(t.String()).Observe(d.Seconds())
}

func (m *Metrics) connectionOpened() {
	if m != nil {
		m.connections.Inc()
	}
}

func (m *Metrics) connectionClosed() {
	if m != nil {
		m.connections.Dec()
	}
}

// ServeMetrics exposes gatherer on addr at /metrics until ctx is done.
func ServeMetrics(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("Metrics server shutdown: %v", err)
		}
	}()

	logger.Infof("Serving metrics on http://%s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
