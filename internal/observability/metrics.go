package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TripsStarted   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fleetshare", Name: "trips_started_total", Help: "Total number of trips started"})
	TripsCompleted = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fleetshare", Name: "trips_completed_total", Help: "Total number of trips completed"})
	TripsCanceled  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fleetshare", Name: "trips_canceled_total", Help: "Total number of trips canceled"})
	VehiclesInUse  = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "fleetshare", Name: "vehicles_in_use", Help: "Number of vehicles currently in use"})

	TripRevenue = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fleetshare", Name: "trip_revenue_total", Help: "Revenue from completed trips by currency"},
		[]string{"currency"},
	)
)
