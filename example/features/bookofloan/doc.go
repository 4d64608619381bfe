// Package bookofloan implements the Book Of Loan query use case.
//
// Given a loan's position in lending order, it resolves the loan together
// with the book that was lent and the reader who borrowed it. The lookup is
// a pure query built from the catalog accessors; the handler only adds
// observability around performing it.
package bookofloan
