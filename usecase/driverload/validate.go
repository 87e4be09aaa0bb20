package driverload

import (
	"context"

	"github.com/driverset/driverset/config/driverscfg"
	"github.com/driverset/driverset/domain/model"
)

// Validate performs the same analysis and partition as Load but uses the
// capability probe instead of live activation, so it mutates no process
// state and is safe to run repeatedly (pre-merge checks, CI gates).
// Against an unchanged binary its partition matches what Load would
// subsequently produce.
func (u *UseCase) Validate(ctx context.Context, cfg *driverscfg.Root, environment string) *model.Outcome {
	return u.run(ctx, cfg, environment, model.OutcomeModeValidate)
}
