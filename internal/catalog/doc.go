// Package catalog models the film catalog and the normalized alias index
// built from it.
//
// A catalog is a sequence of records, each carrying a primary title and any
// number of alternate names (explicit aliases, an original-language title,
// locale-specific titles). BuildIndex folds the records into an immutable
// Index mapping every normalized alias to its owning film and to the alias's
// original display form. Resolver performs fuzzy single-query lookups
// against a built index.
//
// Catalogs load either from a JSON file (LoadFile) or from a SQLite store
// (Store), which also backs the import workflow.
package catalog
