package logadapters

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/relational-query-go/querydb"
)

// JSONSink builds a debug-probe sink that renders the observed value or
// failure as JSON before logging it through logger at debug level. Values
// that cannot be marshaled are logged with the marshal error instead; the
// probed query's result is unaffected either way.
func JSONSink[E, A any](logger querydb.Logger) querydb.Sink[E, A] {
	return func(tag string, result querydb.Result[E, A]) {
		if logger == nil {
			return
		}

		if value, ok := result.Value(); ok {
			logger.Debug("query succeeded", "tag", tag, "value", renderJSON(value))
			return
		}

		cause, _ := result.Cause()
		logger.Debug("query failed", "tag", tag, "cause", renderJSON(cause))
	}
}

func renderJSON(v any) string {
	data, err := jsoniter.ConfigFastest.MarshalToString(v)
	if err != nil {
		return "unmarshalable: " + err.Error()
	}

	return data
}
