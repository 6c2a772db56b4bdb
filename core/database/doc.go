// Package database manages the optional relational database connection.
//
// The only consumer is the registry, which can load symbolic name mappings
// from the registry_entries table. Production runs against MySQL; tests use
// the sqlite driver with an in-memory database.
//
// Connect never panics on failure; the start command logs a warning and runs
// without database-backed registry entries.
package database
