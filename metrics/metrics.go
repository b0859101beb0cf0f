package metrics

import (
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "styledecor",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "styledecor",
			Name:      "booking_transitions_total",
			Help:      "Booking delivery-status transitions by target status.",
		},
		[]string{"to"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingTransitions)
	})
}

// IncTransition counts a completed delivery-status transition.
func IncTransition(to string) {
	bookingTransitions.WithLabelValues(to).Inc()
}

// Middleware counts every handled request. Routes are labeled by the route
// pattern, not the raw path, to keep cardinality bounded.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Route().Path
		httpRequests.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}
