// Package driverload implements the driver resolution and loading engine:
// it inspects an environment's configuration, maps active configuration
// keys to required database/sql drivers, and loads or probes exactly that
// set with structured success/failure accounting.
package driverload

import "github.com/driverset/driverset/domain/model"

// Runtime abstracts the platform's driver registration facility. The
// production implementation wraps adapters/drivers; tests substitute fakes
// so engine behavior is independent of what the test binary compiled in.
type Runtime interface {
	// Resolvable is the side-effect-free capability probe.
	Resolvable(driverID string) bool
	// Activate loads the driver and registers it with database/sql.
	// Idempotent: activating the same driver twice must not error.
	Activate(driverID string) error
}

// LookupFunc resolves a configuration key against the driver registry.
type LookupFunc func(configKey string) (model.RegistryEntry, bool)

// Ports holds the collaborators the engine needs.
type Ports struct {
	Lookup  LookupFunc
	Runtime Runtime
}

// UseCase wires ports needed for driver load use cases.
type UseCase struct {
	Ports *Ports
}

// New returns a UseCase over the given ports.
func New(ports *Ports) *UseCase {
	return &UseCase{Ports: ports}
}
