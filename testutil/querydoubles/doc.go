// Package querydoubles provides test doubles for exercising querydb
// observability and evaluation-order contracts:
//
//   - SinkSpy captures debug-probe observations.
//   - LoggerSpy captures querydb.Logger calls.
//   - CountPerforms wraps a query and counts how often its underlying
//     function actually runs, which makes short-circuit behavior observable.
package querydoubles
