package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_created_total",
		Help: "Intake sessions created",
	})
	sessionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_sessions_deleted_total",
		Help: "Intake sessions explicitly deleted",
	})
	messagesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "intake_messages_processed_total",
		Help: "User messages answered by the assistant",
	})
)
