package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	RecalcPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecalcPasses,
			Help: HelpTextRecalcPasses,
		},
	)

	RecalcPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecalcPassDuration,
			Help:    HelpTextRecalcPassDuration,
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	IngredientsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIngredientsUpdated,
			Help: HelpTextIngredientsUpdated,
		},
	)

	IngredientsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIngredientsFailed,
			Help: HelpTextIngredientsFailed,
		},
	)

	AlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAlertsRaised,
			Help: HelpTextAlertsRaised,
		},
		[]string{LabelType},
	)

	SaleLinesIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaleLinesIngested,
			Help: HelpTextSaleLinesIngested,
		},
	)
)
