// Package logadapters provides ready-made logging backends for the querydb
// debug probe. These adapters enable plug-and-play observation of query
// results without implementing the querydb.Logger interface by hand.
//
// Two backends are provided:
//   - SlogLogger: backed by log/slog, optionally through the OpenTelemetry
//     slog bridge for automatic trace correlation.
//   - OTelLogger: backed by the OpenTelemetry logging API directly.
//
// JSONSink builds a probe sink that renders the observed result as JSON
// before logging it, which keeps log lines stable for structured values.
package logadapters
