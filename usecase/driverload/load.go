package driverload

import (
	"context"
	"errors"
	"time"

	"github.com/driverset/driverset/config/driverscfg"
	"github.com/driverset/driverset/domain/model"
	"github.com/driverset/driverset/internal/logging"
)

// Load resolves the environment's active keys and activates every required
// driver. One missing driver does not abort the rest: the outcome carries
// the complete loaded/failed/unknown partition in a single call, and the
// caller decides what is fatal. Unknown keys are never attempted.
func (u *UseCase) Load(ctx context.Context, cfg *driverscfg.Root, environment string) *model.Outcome {
	return u.run(ctx, cfg, environment, model.OutcomeModeLoad)
}

// LoadForEnvironment is the startup convenience: it reads the config from
// the default path (or DRIVERSET_CONFIG) and loads the environment's
// drivers. Errors here are config-access errors; resolution and load
// failures are reported inside the outcome, not as a Go error.
func (u *UseCase) LoadForEnvironment(ctx context.Context, environment string) (*model.Outcome, error) {
	cfg, err := driverscfg.Load(driverscfg.ConfigPath(""))
	if err != nil {
		return nil, err
	}
	return u.Load(ctx, cfg, environment), nil
}

func (u *UseCase) run(ctx context.Context, cfg *driverscfg.Root, environment string, mode model.OutcomeMode) *model.Outcome {
	log := logging.FromContext(ctx)
	keys := u.ActiveKeys(ctx, cfg, environment)
	required, unknown := u.Resolve(keys)

	if unknown == nil {
		unknown = []string{}
	}
	// All three slices start non-nil so encoded outcomes never mix [] and null.
	out := &model.Outcome{
		Environment: environment,
		Mode:        mode,
		Loaded:      []string{},
		Failed:      []model.FailureDetail{},
		Unknown:     unknown,
	}
	for _, key := range unknown {
		log.Error(ctx, "active config key has no supported driver", "environment", environment, "key", key)
	}

	for _, entry := range required {
		switch mode {
		case model.OutcomeModeValidate:
			if u.Ports.Runtime.Resolvable(entry.DriverID) {
				out.Loaded = append(out.Loaded, entry.DriverID)
				log.Debug(ctx, "driver resolvable", "driver", entry.DriverID)
			} else {
				out.Failed = append(out.Failed, unavailable(entry))
				log.Error(ctx, "driver not compiled into this binary",
					"driver", entry.DriverID, "coordinate", entry.Coordinate)
			}
		default:
			err := u.Ports.Runtime.Activate(entry.DriverID)
			switch {
			case err == nil:
				out.Loaded = append(out.Loaded, entry.DriverID)
				log.Info(ctx, "driver loaded", "driver", entry.DriverID)
			case errors.Is(err, model.ErrDriverUnavailable):
				out.Failed = append(out.Failed, unavailable(entry))
				log.Error(ctx, "driver not compiled into this binary",
					"driver", entry.DriverID, "coordinate", entry.Coordinate)
			default:
				// Identifier was found but activation itself broke; report
				// the cause verbatim with no suggestion substitution.
				out.Failed = append(out.Failed, model.FailureDetail{
					DriverID: entry.DriverID,
					Cause:    model.ErrorKindDriverLoadError,
					Detail:   err.Error(),
				})
				log.Error(ctx, "driver activation failed", "driver", entry.DriverID, "error", err)
			}
		}
	}

	out.Success = len(out.Failed) == 0
	out.CompletedAt = time.Now().UTC()
	return out
}

func unavailable(entry model.RegistryEntry) model.FailureDetail {
	return model.FailureDetail{
		DriverID:   entry.DriverID,
		Cause:      model.ErrorKindDriverUnavailable,
		Coordinate: entry.Coordinate,
		Suggestion: entry.Suggestion,
	}
}
