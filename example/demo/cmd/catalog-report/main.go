// The catalog-report command loads a catalog fixture and prints a small
// report built from the example's query features: the details of one loan,
// all loans overdue at a reference time, and the full report for one reader.
//
// Usage:
//
//	catalog-report --fixture testdata/catalog.json --reader reader-1 --loan-index 0 --verbose
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/AntonStoeckl/relational-query-go/example/features/bookofloan"
	"github.com/AntonStoeckl/relational-query-go/example/features/overdueloans"
	"github.com/AntonStoeckl/relational-query-go/example/features/readerreport"
	"github.com/AntonStoeckl/relational-query-go/example/shared/core"
	"github.com/AntonStoeckl/relational-query-go/example/shared/shell"
	"github.com/AntonStoeckl/relational-query-go/querydb"
	"github.com/AntonStoeckl/relational-query-go/querydb/logadapters"
	"github.com/AntonStoeckl/relational-query-go/querydb/simple"
)

func main() {
	var (
		fixturePath string
		readerID    string
		loanIndex   int
		asOfArg     string
		verbose     bool
	)

	pflag.StringVar(&fixturePath, "fixture", "", "path to the catalog fixture file (required)")
	pflag.StringVar(&readerID, "reader", "", "reader ID to report on")
	pflag.IntVar(&loanIndex, "loan-index", 0, "loan position (lending order) to resolve")
	pflag.StringVar(&asOfArg, "as-of", "", "reference time for overdue loans (RFC 3339, default now)")
	pflag.BoolVar(&verbose, "verbose", false, "log every performed query at debug level")
	pflag.Parse()

	if fixturePath == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: --fixture")
		pflag.Usage()
		os.Exit(2)
	}

	asOf := time.Now()
	if asOfArg != "" {
		parsed, err := time.Parse(time.RFC3339, asOfArg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --as-of value: %v\n", err)
			os.Exit(2)
		}
		asOf = parsed
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logadapters.NewSlogLoggerWithHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := shell.LoadCatalog(fixturePath)
	if err != nil {
		logger.Error("loading catalog failed", "path", fixturePath, "error", err.Error())
		os.Exit(1)
	}

	loanHandler := bookofloan.NewQueryHandler(
		bookofloan.WithLogging(logger),
		bookofloan.WithDebugSink(logadapters.JSONSink[core.NotFound, bookofloan.BookOfLoan](logger)),
	)
	overdueHandler := overdueloans.NewQueryHandler(
		overdueloans.WithLogging(logger),
		overdueloans.WithDebugSink(logadapters.JSONSink[core.NotFound, overdueloans.OverdueLoans](logger)),
	)
	reportHandler := readerreport.NewQueryHandler(
		readerreport.WithLogging(logger),
		readerreport.WithDebugSink(reportSink(logger)),
	)

	if details, err := loanHandler.Handle(catalog, loanIndex); err != nil {
		fmt.Printf("loan %d: %v\n", loanIndex, err)
	} else {
		fmt.Printf("loan %d: %q lent to %s, due %s\n",
			loanIndex, details.Book.Title, details.Reader.Name,
			details.Loan.DueAt.Format(time.DateOnly))
	}

	overdue, err := overdueHandler.Handle(catalog, asOf)
	if err != nil {
		fmt.Printf("overdue loans: %v\n", err)
	} else {
		fmt.Printf("overdue loans as of %s: %d\n", asOf.Format(time.DateOnly), overdue.Count)
		for _, entry := range overdue.Entries.All() {
			fmt.Printf("  %q held by reader %s, %d day(s) overdue\n",
				entry.Book.Title, entry.Loan.ReaderID, entry.DaysOverdue)
		}
	}

	if readerID != "" {
		report, err := reportHandler.Handle(catalog, readerID)
		if err != nil {
			fmt.Printf("reader %s: %v\n", readerID, err)
		} else {
			fmt.Printf("reader %s (%s): %d loan(s)\n",
				report.Reader.ID, report.Reader.Name, report.Loans.Length())
			for i, title := range report.Titles.All() {
				loan, _ := report.Loans.At(i)
				fmt.Printf("  %q since %s\n", title, loan.LentAt.Format(time.DateOnly))
			}
			if report.RecentlyReturned.Length() > 0 {
				fmt.Printf("  recently returned: %d book(s)\n", report.RecentlyReturned.Length())
			}
		}
	}
}

// reportSink bridges the error-erased probe of the reader report feature to
// the logger.
func reportSink(logger querydb.Logger) simple.Sink[readerreport.ReaderReport] {
	return func(tag string, result querydb.Maybe[readerreport.ReaderReport]) {
		if report, ok := result.Get(); ok {
			logger.Debug("query succeeded", "tag", tag, "reader", report.Reader.ID)
			return
		}

		logger.Debug("query failed", "tag", tag)
	}
}
