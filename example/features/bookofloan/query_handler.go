package bookofloan

import (
	"time"

	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/example/shared/shell"
	"github.com/AntonStoeckl/relational-query-go/querydb"
)

const queryType = "BookOfLoan"

// QueryHandler performs the book-of-loan query against a catalog and adds
// the infrastructure concerns the pure query stays free of: debug probing
// and logging.
type QueryHandler struct {
	sink   querydb.Sink[core.NotFound, BookOfLoan]
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

// Handle performs the query against the catalog. A missing loan, book, or
// reader is returned as the lookup's cause.
func (h QueryHandler) Handle(catalog core.Catalog, loanIndex int) (BookOfLoan, error) {
	start := time.Now()

	query := BuildQuery(loanIndex)
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

	return BookOfLoan{}, cause
}

/*** Query Handler Options ***/

// Option defines a functional option for configuring QueryHandler.
type Option func(*QueryHandler)

// WithDebugSink attaches a debug probe observing every performed query.
func WithDebugSink(sink querydb.Sink[core.NotFound, BookOfLoan]) Option {
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
