// Package core contains the book lending domain model for the example
// application: books, readers, loans, and the normalized Catalog that holds
// them.
//
// The Catalog is the database value the example queries run against. It is
// built once by the shell from a fixture file and never mutated afterwards;
// every feature reads it through pure queries. The projection functions in
// this package are the only way features address the Catalog's collections,
// so the Catalog's internal shape can change without touching feature code.
package core
