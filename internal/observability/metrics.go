// Package observability exposes Prometheus metrics for the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsLoggedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coach",
		Subsystem: "tracking",
		Name:      "workouts_logged_total",
		Help:      "Number of workouts persisted.",
	})
	ratingsUpsertedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coach",
		Subsystem: "tracking",
		Name:      "ratings_upserted_total",
		Help:      "Number of wellness rating writes, inserts and overwrites combined.",
	})
	coachRequestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coach",
		Subsystem: "ai",
		Name:      "requests_total",
		Help:      "AI coach requests by operation and outcome.",
	}, []string{"operation", "outcome"})
)

func init() {
	prometheus.MustRegister(workoutsLoggedCounter, ratingsUpsertedCounter, coachRequestsCounter)
}

// RecordWorkoutLogged increments the workout write counter.
func RecordWorkoutLogged() {
	workoutsLoggedCounter.Inc()
}

// RecordRatingUpserted increments the rating write counter.
func RecordRatingUpserted() {
	ratingsUpsertedCounter.Inc()
}

// RecordCoachRequest counts one AI coach call. Outcome is "ok" or "error".
func RecordCoachRequest(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	coachRequestsCounter.WithLabelValues(operation, outcome).Inc()
}
