// Package overdueloans implements the Overdue Loans query use case.
//
// It selects every loan whose due date has passed at a given point in time
// and joins each one with the book it concerns. The reference time is an
// argument of the query builder, keeping the query itself pure and the
// result reproducible.
package overdueloans
