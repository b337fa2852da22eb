package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ClassesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_classes_created_total",
			Help: "Total number of group classes committed",
		},
	)

	SessionsBookedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_pt_sessions_booked_total",
			Help: "Total number of personal training sessions committed",
		},
	)

	ConflictsDetectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_scheduling_conflicts_total",
			Help: "Scheduling requests rejected because of an interval conflict",
		},
		[]string{"resource"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_registrations_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	CancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_registration_cancellations_total",
			Help: "Total number of registration cancellations",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	LedgerDrift = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_ledger_drift",
			Help: "Classes whose in-memory active count disagrees with the database",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordClassCreated() {
	ClassesCreatedTotal.Inc()
}

func RecordSessionBooked() {
	SessionsBookedTotal.Inc()
}

// RecordConflict counts a rejected scheduling request; resource is "room" or
// "trainer".
func RecordConflict(resource string) {
	ConflictsDetectedTotal.WithLabelValues(resource).Inc()
}

func RecordRegistration(outcome string) {
	RegistrationsTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation() {
	CancellationsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
