// Package telemetry exposes Prometheus counters for the monitoring
// engine and an optional /metrics endpoint for scraping them.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProbesTotal counts individual probes by kind and outcome.
	ProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nodewatch_probes_total",
		Help: "Probes run against nodes, by kind and outcome.",
	}, []string{"kind", "outcome"})

	// ChecksTotal counts completed health checks by resulting status.
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nodewatch_health_checks_total",
		Help: "Health checks completed, by resulting status.",
	}, []string{"status"})

	// SamplesTotal counts resource sampling attempts by outcome.
	SamplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nodewatch_metric_samples_total",
		Help: "Resource sampling attempts, by outcome.",
	}, []string{"outcome"})

	// AlertsTotal counts raised alerts by severity.
	AlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nodewatch_alerts_raised_total",
		Help: "Alerts raised, by severity.",
	}, []string{"severity"})

	// DeliveriesTotal counts alert delivery attempts by channel and outcome.
	DeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nodewatch_alert_deliveries_total",
		Help: "Alert delivery attempts, by channel and outcome.",
	}, []string{"channel", "outcome"})

	// CyclesTotal counts completed monitoring cycles.
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nodewatch_cycles_total",
		Help: "Monitoring cycles completed.",
	})
)

// Handler returns the scrape endpoint for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve exposes /metrics on addr until ctx is canceled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
