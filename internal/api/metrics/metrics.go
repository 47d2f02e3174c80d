// Package metrics defines all custom Prometheus metrics for the movie
// catalog API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry
// at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moviecatalog"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered user accounts.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// MoviesCreatedTotal counts movies added to the catalog.
var MoviesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of movies created.",
	},
)

// MovieCacheTotal counts catalog listing cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to Postgres)
var MovieCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movie_cache_total",
		Help:      "Total number of movie listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
