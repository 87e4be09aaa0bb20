// Package genji compiles the Genji document-store driver into the binary.
package genji

import (
	// Registers the "genji" driver with database/sql at import time.
	_ "github.com/genjidb/genji/driver"

	"github.com/driverset/driverset/adapters/drivers"
)

func init() {
	drivers.Register("genji", func() error { return nil })
}
