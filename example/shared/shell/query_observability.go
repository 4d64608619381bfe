package shell

import (
	"time"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// Shared logging helpers for the feature query handlers. All of them are
// nil-safe so handlers can run without any logger configured.

// StatusSuccess and StatusError are the status labels used in handler logs.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// LogQuerySuccess logs a successfully handled query with its duration.
func LogQuerySuccess(logger querydb.Logger, queryType string, duration time.Duration) {
	if logger == nil {
		return
	}

	logger.Info("query handled",
		"query_type", queryType,
		"status", StatusSuccess,
		"duration_ms", duration.Milliseconds())
}

// LogQueryFailure logs a failed query with its cause and duration.
func LogQueryFailure(logger querydb.Logger, queryType string, cause error, duration time.Duration) {
	if logger == nil {
		return
	}

	logger.Warn("query failed",
		"query_type", queryType,
		"status", StatusError,
		"cause", cause.Error(),
		"duration_ms", duration.Milliseconds())
}
