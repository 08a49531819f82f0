package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inquiriesPersistedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiries_persisted_total",
			Help: "Total number of quote inquiries written to the store",
		},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "owner_notifications_total",
			Help: "Total number of owner notification attempts",
		},
		[]string{"status"}, // sent, failed
	)

	assetRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_requests_total",
			Help: "Total number of asset downloads",
		},
		[]string{"status"}, // served, not_found
	)
)

// RecordInquiryPersisted increments the persisted inquiry counter
func RecordInquiryPersisted() {
	inquiriesPersistedTotal.Inc()
}

// RecordNotification increments the notification counter with the given status
func RecordNotification(status string) {
	notificationsTotal.WithLabelValues(status).Inc()
}

// RecordAssetRequest increments the asset request counter with the given status
func RecordAssetRequest(status string) {
	assetRequestsTotal.WithLabelValues(status).Inc()
}
