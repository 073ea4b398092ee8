// Package observability registers the service's Prometheus metrics.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	registrationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "silverkaki",
		Subsystem: "lifecycle",
		Name:      "registrations_total",
		Help:      "Activity registrations created.",
	})
	attendanceCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "silverkaki",
		Subsystem: "lifecycle",
		Name:      "attendance_confirmations_total",
		Help:      "Attendance confirmations recorded.",
	})
	pointsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "silverkaki",
		Subsystem: "rewards",
		Name:      "points_awarded_total",
		Help:      "Points awarded across all users.",
	})
	vouchersCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "silverkaki",
		Subsystem: "rewards",
		Name:      "vouchers_redeemed_total",
		Help:      "Voucher redemptions completed.",
	})
	notificationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "silverkaki",
		Subsystem: "notifications",
		Name:      "emitted_total",
		Help:      "Notifications emitted, labelled by type.",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(
		registrationsCounter,
		attendanceCounter,
		pointsCounter,
		vouchersCounter,
		notificationsCounter,
	)
}

func RecordRegistrationCreated() {
	registrationsCounter.Inc()
}

func RecordAttendanceConfirmed() {
	attendanceCounter.Inc()
}

func RecordPointsAwarded(amount int) {
	if amount <= 0 {
		return
	}
	pointsCounter.Add(float64(amount))
}

func RecordVoucherRedeemed() {
	vouchersCounter.Inc()
}

func RecordNotificationEmitted(notificationType string) {
	notificationsCounter.WithLabelValues(notificationType).Inc()
}
