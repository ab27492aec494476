package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RebuildsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinematch_catalog_rebuilds_total",
			Help: "Count of full feature-space rebuilds triggered by catalog changes.",
		},
	)

	SnapshotMovies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_snapshot_movies",
			Help: "Number of movies in the active catalog snapshot.",
		},
	)

	SnapshotTags = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinematch_snapshot_tags",
			Help: "Feature space dimensionality of the active catalog snapshot.",
		},
	)
)

func init() {
	prometheus.MustRegister(RebuildsTotal, SnapshotMovies, SnapshotTags)
}
