package querydb

// Sink receives debug-probe observations. It is a function rather than an
// interface because its signature is generic in the query's error and value
// types. A Sink must only observe; it cannot alter the result a probed query
// returns.
type Sink[E, A any] func(tag string, result Result[E, A])

// Logger interface for debug-probe logging.
// It is dependency-free so callers can plug in any logging backend
// (log/slog, OpenTelemetry, structured loggers, ...) by implementing it;
// the logadapters package provides ready-made implementations.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Debug threads an observation hook through a query: when the returned query
// is performed, the inner result is computed, handed to sink together with
// tag, and then returned exactly unchanged. The sink runs once per Perform of
// the probed query.
//
// A nil sink turns the probe into a no-op.
func Debug[DB, E, A any](sink Sink[E, A], tag string, query Query[DB, E, A]) Query[DB, E, A] {
	return New(func(db DB) Result[E, A] {
		result := query.run(db)
		if sink != nil {
			sink(tag, result)
		}

		return result
	})
}

// LoggingSink builds a Sink that reports every observation through logger at
// debug level: the tag, the outcome, and the success or failure value.
func LoggingSink[E, A any](logger Logger) Sink[E, A] {
	return func(tag string, result Result[E, A]) {
		if logger == nil {
			return
		}

		if value, ok := result.Value(); ok {
			logger.Debug("query succeeded", "tag", tag, "value", value)
			return
		}

		cause, _ := result.Cause()
		logger.Debug("query failed", "tag", tag, "cause", cause)
	}
}
