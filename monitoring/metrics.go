package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

var (
	StoreRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_store_refreshes_total",
			Help: "Full refreshes of the client list store",
		},
		[]string{"result"},
	)

	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_notifications_total",
			Help: "Status-updated notifications on the realtime channel",
		},
		[]string{"direction"},
	)

	ExportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spreadsheet_exports_total",
			Help: "Spreadsheet downloads served",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(StoreRefreshes)
	prometheus.MustRegister(Notifications)
	prometheus.MustRegister(ExportsTotal)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
