package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curriculum_http_requests_total",
			Help: "Number of HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "curriculum_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	EligibilityModulesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "curriculum_eligibility_modules_total",
			Help: "Modules submitted for eligibility resolution.",
		},
	)
	EligibilityIneligibleTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "curriculum_eligibility_ineligible_total",
			Help: "Modules rejected because no prerequisite group was satisfied.",
		},
	)

	EnrollmentChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curriculum_enrollment_changes_total",
			Help: "TAKES relations added or removed by enrollment reconciliation.",
		},
		[]string{"op"},
	)

	RecommendationsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "curriculum_recommendations_returned",
			Help:    "Number of modules returned per recommendation family.",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		},
		[]string{"family"},
	)
)

// Register adds every collector to reg. Call it once at startup.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		EligibilityModulesTotal,
		EligibilityIneligibleTotal,
		EnrollmentChangesTotal,
		RecommendationsReturned,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
