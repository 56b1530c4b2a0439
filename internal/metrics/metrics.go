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
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	HTTPGuardEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPGuardEvents,
			Help: HelpTextHTTPGuardEvents,
		},
		[]string{LabelEvent},
	)
)

// Item Database Metrics
var (
	ItemDBLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemDBLines,
			Help: HelpTextItemDBLines,
		},
		[]string{LabelResult},
	)

	ItemDBLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameItemDBLoadDuration,
			Help:    HelpTextItemDBLoadDuration,
			Buckets: LoadDurationBuckets,
		},
	)

	ItemDBRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameItemDBRecords,
			Help: HelpTextItemDBRecords,
		},
	)

	ItemDBLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemDBLookups,
			Help: HelpTextItemDBLookups,
		},
		[]string{LabelOp, LabelResult},
	)

	ItemDBScriptsReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemDBScripts,
			Help: HelpTextItemDBScripts,
		},
	)
)
