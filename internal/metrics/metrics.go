package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Chat outcomes.
const (
	OutcomeGreeting = "greeting"
	OutcomeEmpty    = "empty"
	OutcomeOffTopic = "off_topic"
	OutcomeAnswered = "answered"
	OutcomeFailed   = "failed"
)

var (
	chatMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medassist",
		Subsystem: "chat",
		Name:      "messages_total",
		Help:      "Chat messages received, by how they were handled.",
	}, []string{"outcome"})

	modelRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medassist",
		Subsystem: "model",
		Name:      "requests_total",
		Help:      "Calls to the generative model, by outcome (ok or failure kind).",
	}, []string{"outcome"})

	modelLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medassist",
		Subsystem: "model",
		Name:      "latency_seconds",
		Help:      "Latency of calls to the generative model.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	}, []string{"outcome"})
)

func RecordChat(outcome string) {
	chatMessages.WithLabelValues(outcome).Inc()
}

func RecordModelCall(outcome string, latency time.Duration) {
	modelRequests.WithLabelValues(outcome).Inc()
	modelLatency.WithLabelValues(outcome).Observe(latency.Seconds())
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
