package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Metrics holds the bot's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	Updates *prometheus.CounterVec
	Lookups *prometheus.CounterVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "innbot",
			Name:      "updates_total",
			Help:      "Inbound Telegram messages by content kind.",
		}, []string{"kind"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "innbot",
			Name:      "lookups_total",
			Help:      "Registry lookups by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.Updates, m.Lookups)
	return m
}

// ObserveUpdate counts one inbound message. Safe on a nil receiver.
func (m *Metrics) ObserveUpdate(kind string) {
	if m == nil {
		return
	}
	m.Updates.WithLabelValues(kind).Inc()
}

// ObserveLookup counts one registry lookup. Safe on a nil receiver.
func (m *Metrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs the /metrics endpoint on addr until ctx is cancelled
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}()

	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
