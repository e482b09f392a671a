package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	SessionsCreated   *prometheus.CounterVec
	SessionReads      *prometheus.CounterVec
	AnswerSubmissions *prometheus.CounterVec
	StorageErrors     *prometheus.CounterVec
	VisitsTracked     prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SessionsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Sessions created by session type.",
		}, []string{"type"}),
		SessionReads: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_reads_total",
			Help:      "Session reads by outcome.",
		}, []string{"outcome"}),
		AnswerSubmissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answer_submissions_total",
			Help:      "Answer batch submissions by answerer role.",
		}, []string{"role"}),
		StorageErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_errors_total",
			Help:      "Storage failures by operation.",
		}, []string{"op"}),
		VisitsTracked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visits_tracked_total",
			Help:      "Visits recorded through the analytics endpoint.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
