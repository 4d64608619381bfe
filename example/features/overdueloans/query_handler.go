package overdueloans

import (
	"time"

	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/example/shared/shell"
	"github.com/AntonStoeckl/relational-query-go/querydb"
)

const queryType = "OverdueLoans"

// QueryHandler performs the overdue-loans query against a catalog.
type QueryHandler struct {
	sink   querydb.Sink[core.NotFound, OverdueLoans]
	logger querydb.Logger
}

// NewQueryHandler creates a QueryHandler configured by the given options.
func NewQueryHandler(opts ...Option) QueryHandler {
	h := QueryHandler{}

	for _, opt := range opts {
		opt(&h)
	}

	return h
}

// Handle performs the query against the catalog, listing all loans overdue
// at asOf.
func (h QueryHandler) Handle(catalog core.Catalog, asOf time.Time) (OverdueLoans, error) {
	start := time.Now()

	query := BuildQuery(asOf)
	if h.sink != nil {
		query = querydb.Debug(h.sink, queryType, query)
	}

	result := querydb.Perform(query, catalog)

	if value, ok := result.Value(); ok {
		shell.LogQuerySuccess(h.logger, queryType, time.Since(start))
		return value, nil
	}

	cause, _ := result.Cause()
	shell.LogQueryFailure(h.logger, queryType, cause, time.Since(start))

	return OverdueLoans{}, cause
}

/*** Query Handler Options ***/

// Option defines a functional option for configuring QueryHandler.
type Option func(*QueryHandler)

// WithDebugSink attaches a debug probe observing every performed query.
func WithDebugSink(sink querydb.Sink[core.NotFound, OverdueLoans]) Option {
	return func(h *QueryHandler) {
		h.sink = sink
	}
}

// WithLogging sets the logger for the QueryHandler.
func WithLogging(logger querydb.Logger) Option {
	return func(h *QueryHandler) {
		h.logger = logger
	}
}
