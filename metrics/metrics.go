package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	signalsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_webhook_signals_accepted_total",
			Help: "Total number of webhook signals stored",
		},
		[]string{"event"},
	)
	rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_webhook_rejections_total",
			Help: "Total number of webhook calls answered with an error",
		},
		[]string{"kind"},
	)
	signalsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signal_webhook_clear_all_total",
			Help: "Total number of delete-all operations",
		},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signal_webhook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"route", "method", "status"},
	)
)

// RecordAccepted counts a stored signal.
func RecordAccepted(event string) {
	signalsAccepted.WithLabelValues(event).Inc()
}

// RecordRejected counts a failed webhook call by failure kind.
func RecordRejected(kind string) {
	rejections.WithLabelValues(kind).Inc()
}

// RecordCleared counts a delete-all.
func RecordCleared() {
	signalsCleared.Inc()
}

// Middleware observes request latency labelled by the matched route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
