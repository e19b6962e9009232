// Package metrics exposes Prometheus counters for arcade sessions and games.
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
	// Sessions is the number of SSH sessions currently connected.
	Sessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "arcade_sessions_active",
			Help: "Number of connected SSH sessions",
		},
	)
	// SessionsTotal counts every SSH session accepted.
	SessionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arcade_sessions_total",
			Help: "Total SSH sessions accepted",
		},
	)
	// GamesStarted counts games started, labelled by game ID.
	GamesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_games_started_total",
			Help: "Total games started, by game",
		},
		[]string{"game"},
	)
	// GamesFinished counts games that ended, labelled by game ID and outcome.
	GamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_games_finished_total",
			Help: "Total games finished, by game and outcome",
		},
		[]string{"game", "outcome"},
	)
	// Scores records final scores, labelled by game ID.
	Scores = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arcade_final_score",
			Help:    "Final scores of finished games",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
		[]string{"game"},
	)
)

func init() {
	prometheus.MustRegister(Sessions)
	prometheus.MustRegister(SessionsTotal)
	prometheus.MustRegister(GamesStarted)
	prometheus.MustRegister(GamesFinished)
	prometheus.MustRegister(Scores)
}

// GameStarted records the start of a round.
func GameStarted(gameID string) {
	GamesStarted.WithLabelValues(gameID).Inc()
}

// GameFinished records the outcome and final score of a round.
func GameFinished(gameID string, score int, won bool) {
	outcome := "lost"
	if won {
		outcome = "won"
	}
	GamesFinished.WithLabelValues(gameID, outcome).Inc()
	Scores.WithLabelValues(gameID).Observe(float64(score))
}

// SessionOpened and SessionClosed track live SSH sessions.
func SessionOpened() {
	Sessions.Inc()
	SessionsTotal.Inc()
}

func SessionClosed() {
	Sessions.Dec()
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
