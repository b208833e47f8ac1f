package main

import (
	"strconv"
	"sync"
	"time"

	"github.com/Symantec/tricorder/go/tricorder"
	"github.com/Symantec/tricorder/go/tricorder/units"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsMutex         = &sync.Mutex{}
	authOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pamauthd_auth_operation_counter",
			Help: "Password checks by result.",
		},
		[]string{"backend", "result"},
	)
	authDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pamauthd_auth_duration",
			Help:    "Time spent in password checks in ms",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		},
		[]string{"backend"},
	)
	tricorderAuthDuration = tricorder.NewGeometricBucketer(1, 5000.0).NewCumulativeDistribution()
)

func init() {
	prometheus.MustRegister(authOperationCounter)
	prometheus.MustRegister(authDuration)
	tricorder.RegisterMetric(
		"pamauthd/auth-duration",
		tricorderAuthDuration,
		units.Millisecond,
		"Time for the backend to decide on a password(ms)")
}

func metricLogAuthOperation(backend string, valid bool, err error) {
	result := strconv.FormatBool(valid)
	if err != nil {
		result = "error"
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	authOperationCounter.WithLabelValues(backend, result).Inc()
}

func metricLogAuthDuration(backend string, duration time.Duration) {
	metricsMutex.Lock()
	defer metricsMutex.Unlock()
	authDuration.WithLabelValues(backend).Observe(duration.Seconds() * 1000)
	tricorderAuthDuration.Add(duration)
}
