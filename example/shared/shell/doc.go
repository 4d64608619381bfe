// Package shell contains the impure edge of the example application: it
// loads a catalog fixture from disk and builds the immutable core.Catalog
// the pure queries run against.
//
// Everything behind this boundary is side-effect free. The shell reads and
// validates once; after LoadCatalog returns, the catalog value can be shared
// freely across goroutines and queries.
package shell
