//go:build !cgo || !duckdb

// Placeholder so the package imports cleanly in builds without the duckdb
// tag; no hook is registered and the driver stays unavailable.
package duckdb
