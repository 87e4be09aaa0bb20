// Package sqlite compiles the modernc SQLite driver into the binary.
// Pure Go, so it is safe to import from tests and CGO-free builds.
package sqlite

import (
	// Registers the "sqlite" driver with database/sql at import time.
	_ "modernc.org/sqlite"

	"github.com/driverset/driverset/adapters/drivers"
)

func init() {
	drivers.Register("sqlite", func() error { return nil })
}
