// Package readerreport implements the Reader Report query use case.
//
// It assembles everything the library knows about one reader: their
// registration, their loans in lending order, the titles those loans
// concern, and which of their books show up among the recent returns.
//
// Unlike the other features this one is written against the error-erased
// query surface. The report either exists or it does not; callers that need
// to know why a lookup failed should use the explicit surface instead.
package readerreport
