// Package chai exposes the "chai" driver name over the modernc SQLite
// backend. Chai stores data in SQLite-compatible files, so sharing the
// implementation keeps the build simple and CGO-free.
package chai

import (
	"database/sql"
	"database/sql/driver"

	sqlite "modernc.org/sqlite"

	"github.com/driverset/driverset/adapters/drivers"
)

func init() {
	// Unlike the other drivers the alias is registered at activation time,
	// not import time, so the capability probe stays side-effect-free and
	// the engine's idempotence guard is what prevents a double
	// sql.Register panic.
	drivers.Register("chai", func() error {
		sql.Register("chai", newChaiDriver())
		return nil
	})
}

func newChaiDriver() driver.Driver {
	return &sqlite.Driver{}
}
