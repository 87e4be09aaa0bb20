//go:build cgo && duckdb

// Package duckdb compiles the DuckDB driver into the binary behind build
// tags so default builds stay CGO-free. Enable with:
//
//	CGO_ENABLED=1 go build -tags duckdb
//
// Without the tag this package contributes nothing and the engine reports
// duckdb as unavailable with the rebuild suggestion.
package duckdb

import (
	// Registers the "duckdb" driver with database/sql at import time.
	_ "github.com/marcboeker/go-duckdb"

	"github.com/driverset/driverset/adapters/drivers"
)

func init() {
	drivers.Register("duckdb", func() error { return nil })
}
