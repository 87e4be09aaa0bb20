// Package postgres compiles the pgx stdlib driver into the binary.
// Importing this package is what "postgres is on the classpath" means here.
package postgres

import (
	// Registers the "pgx" driver with database/sql at import time.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/driverset/driverset/adapters/drivers"
)

func init() {
	// pgx registers itself during import; the hook has nothing left to do.
	drivers.Register("pgx", func() error { return nil })
}
