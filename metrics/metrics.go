package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPC metrics
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_rpc_requests_total",
			Help: "Total RPCs issued",
		},
		[]string{"method", "code"},
	)

	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gchat_rpc_duration_seconds",
			Help:    "RPC round trip duration",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)

	// Event metrics
	EventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_events_applied_total",
			Help: "Total events applied",
		},
		[]string{"type"},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_events_dropped_total",
			Help: "Total events dropped",
		},
		[]string{"reason"}, // "stale", "malformed" or "echo"
	)

	PendingEchoes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gchat_pending_echoes",
			Help: "Sent messages not yet seen on the event stream",
		},
	)

	CatchUpPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_catch_up_pages_total",
			Help: "Total catch-up pages fetched",
		},
		[]string{"scope"}, // "user" or "group"
	)

	// Outbound metrics
	UploadsInflight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gchat_uploads_inflight",
			Help: "Attachment uploads in progress",
		},
	)

	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_actions_total",
			Help: "Total outbound actions",
		},
		[]string{"action", "result"},
	)

	// Session metrics
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_notifications_total",
			Help: "Total notifications emitted",
		},
		[]string{"kind"},
	)

	PresencePolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchat_presence_polls_total",
			Help: "Total presence polls",
		},
		[]string{"result"}, // "ok", "error" or "skipped"
	)

	Reconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gchat_reconnects_total",
			Help: "Total stream reconnects",
		},
	)

	Connected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gchat_connected",
			Help: "1 when the event stream is connected",
		},
	)
)
