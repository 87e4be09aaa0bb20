// Package drivers is the runtime port between the resolution engine and
// database/sql driver registration. Each supported driver has an activation
// subpackage under adapters/drivers/<name>; importing it compiles the driver
// into the binary and registers an activation hook here. A binary that never
// imports a subpackage simply does not have that driver, which the engine
// reports as unavailable together with the package coordinate to add.
package drivers

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/driverset/driverset/domain/model"
)

// ActivateFunc performs any registration a driver defers beyond its package
// init (e.g., aliasing a driver name via sql.Register). Most drivers
// register fully at import time and use a no-op hook.
type ActivateFunc func() error

type registration struct {
	activate ActivateFunc
	once     sync.Once
	err      error
}

var (
	mu       sync.RWMutex
	registry = map[string]*registration{}
)

// Register makes a driver's activation hook available under its
// database/sql driver name. Activation subpackages call this from init().
func Register(driverID string, activate ActivateFunc) {
	mu.Lock()
	defer mu.Unlock()
	registry[driverID] = &registration{activate: activate}
}

// Resolvable is the capability probe: it reports whether Activate would
// succeed in locating the driver, without running any activation side
// effect. A driver counts as resolvable when an activation hook is
// registered or the name is already known to database/sql (e.g., the
// application imported the driver package directly).
func Resolvable(driverID string) bool {
	mu.RLock()
	_, hooked := registry[driverID]
	mu.RUnlock()
	return hooked || sqlRegistered(driverID)
}

// Activate loads the driver and registers it with database/sql so that
// downstream sql.Open calls find it. Activating the same driver twice is a
// no-op returning the first result; concurrent callers are safe.
// Returns model.ErrDriverUnavailable (wrapped) when the driver was not
// compiled into this binary.
func Activate(driverID string) error {
	mu.RLock()
	reg, hooked := registry[driverID]
	mu.RUnlock()
	if !hooked {
		if sqlRegistered(driverID) {
			// Registered outside this package; nothing left to do.
			return nil
		}
		return fmt.Errorf("driver %q: %w", driverID, model.ErrDriverUnavailable)
	}
	reg.once.Do(func() {
		reg.err = reg.activate()
	})
	if reg.err != nil {
		return fmt.Errorf("driver %q: %w", driverID, reg.err)
	}
	return nil
}

func sqlRegistered(driverID string) bool {
	for _, name := range sql.Drivers() {
		if name == driverID {
			return true
		}
	}
	return false
}
