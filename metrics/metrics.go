package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the storefront collectors.
	Registry = prometheus.NewRegistry()

	cartAdds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "cart",
			Name:      "adds_total",
			Help:      "Items added to carts, by item id.",
		},
		[]string{"item"},
	)

	checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "confirmed_total",
			Help:      "Confirmed checkouts, by payment method.",
		},
		[]string{"payment"},
	)

	checkoutValue = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "checkout",
			Name:      "value_total",
			Help:      "Sum of confirmed order totals, by payment method.",
		},
		[]string{"payment"},
	)

	reviews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "reviews",
			Name:      "submitted_total",
			Help:      "Reviews accepted on details views.",
		},
	)

	navigations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "nav",
			Name:      "transitions_total",
			Help:      "Screen transitions, by source and target screen.",
		},
		[]string{"from", "to"},
	)

	sessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Name:      "sessions_active",
			Help:      "Sessions currently held in memory.",
		},
	)
)

func init() {
	Registry.MustRegister(
		cartAdds,
		checkouts,
		checkoutValue,
		reviews,
		navigations,
		sessions,
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordCartAdd(itemID string) {
	cartAdds.WithLabelValues(itemID).Inc()
}

func RecordCheckout(payment string, total int64) {
	checkouts.WithLabelValues(payment).Inc()
	checkoutValue.WithLabelValues(payment).Add(float64(total))
}

func RecordReview() {
	reviews.Inc()
}

func RecordNavigation(from, to string) {
	navigations.WithLabelValues(from, to).Inc()
}

func SetActiveSessions(n int) {
	sessions.Set(float64(n))
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
