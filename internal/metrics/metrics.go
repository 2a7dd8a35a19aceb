package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "recipes_http_requests_total", Help: "HTTP requests by route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipes_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "route"},
	)
	RecipesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "recipes_created_total", Help: "Recipes created"},
	)
	RecipesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "recipes_deleted_total", Help: "Recipes deleted"},
	)
	StoredUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "recipes_stored_users", Help: "Registered users, refreshed periodically"},
	)
	StoredRecipes = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "recipes_stored_recipes", Help: "Stored recipes, refreshed periodically"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default Prometheus registry. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequests, HTTPDuration, RecipesCreated, RecipesDeleted, StoredUsers, StoredRecipes)
	})
}
