package driverload

import (
	"context"

	"github.com/driverset/driverset/config/driverscfg"
	"github.com/driverset/driverset/domain/model"
)

// ListRequiredDrivers reports which drivers the environment requires and
// which active keys have no registry entry, without probing or loading
// anything.
func (u *UseCase) ListRequiredDrivers(ctx context.Context, cfg *driverscfg.Root, environment string) (required []model.RegistryEntry, unknown []string) {
	return u.Resolve(u.ActiveKeys(ctx, cfg, environment))
}
