package readerreport

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/example/shared/shell"
	"github.com/AntonStoeckl/relational-query-go/querydb"
	"github.com/AntonStoeckl/relational-query-go/querydb/simple"
)

const queryType = "ReaderReport"

// ErrNoReport indicates the report could not be built, typically because the
// reader ID is unknown. The erased surface carries no cause beyond that.
var ErrNoReport = errors.New("no report for this reader")

// QueryHandler performs the reader-report query against a catalog.
type QueryHandler struct {
	sink   simple.Sink[ReaderReport]
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

// Handle performs the query against the catalog.
func (h QueryHandler) Handle(catalog core.Catalog, readerID string) (ReaderReport, error) {
	start := time.Now()

	query := BuildQuery(readerID)
	if h.sink != nil {
		query = simple.Debug(h.sink, queryType, query)
	}

	if report, ok := simple.Perform(query, catalog).Get(); ok {
		shell.LogQuerySuccess(h.logger, queryType, time.Since(start))
		return report, nil
	}

	shell.LogQueryFailure(h.logger, queryType, ErrNoReport, time.Since(start))

	return ReaderReport{}, ErrNoReport
}

/*** Query Handler Options ***/

// Option defines a functional option for configuring QueryHandler.
type Option func(*QueryHandler)

// WithDebugSink attaches a debug probe observing every performed query.
func WithDebugSink(sink simple.Sink[ReaderReport]) Option {
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
