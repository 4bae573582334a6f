// Package metrics expone los colectores prometheus de purrlog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "purrlog"

// Resultados de escritura de snapshots.
const (
	WriteSaved        = "saved"
	WriteSkippedEmpty = "skipped_empty"
	WriteError        = "error"
)

// Resultados de un turno del asistente.
const (
	AssistantSuccess  = "success"
	AssistantFailure  = "failure"
	AssistantRejected = "rejected_busy"
)

var (
	// Labels: activity
	EntriesAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "log_entries",
			Name:      "appended_total",
			Help:      "Log entries created, by activity type",
		},
		[]string{"activity"},
	)

	EntriesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "log_entries",
			Name:      "deleted_total",
			Help:      "Log entries removed after confirmation",
		},
	)

	// Labels: collection (pets, entries, active_pet), result (saved, skipped_empty, error)
	PersistenceWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "persistence",
			Name:      "writes_total",
			Help:      "Snapshot writes attempted against the blob store",
		},
		[]string{"collection", "result"},
	)

	// Labels: result (success, failure, rejected_busy)
	AssistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "requests_total",
			Help:      "Assistant turns by outcome",
		},
		[]string{"result"},
	)

	AssistantDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assistant",
			Name:      "request_duration_seconds",
			Help:      "Duration of generative-AI calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
