package driverload

import (
	"context"
	"sort"

	"github.com/driverset/driverset/config/driverscfg"
	"github.com/driverset/driverset/internal/logging"
)

// ActiveKeys returns the configuration keys marked active for the given
// environment, sorted. A missing environment or a missing active group is
// an environment with zero active databases, which is valid (e.g., a build
// that needs no persistence) — not an error.
//
// A key present in both the active and inactive groups is treated as
// active: the explicit active marker is the stronger signal. The ambiguity
// is logged so config authors can clean it up.
func (u *UseCase) ActiveKeys(ctx context.Context, cfg *driverscfg.Root, environment string) []string {
	log := logging.FromContext(ctx)
	env, ok := cfg.Environment(environment)
	if !ok {
		log.Warn(ctx, "environment not declared in config, treating as empty", "environment", environment)
		return nil
	}
	keys := make([]string, 0, len(env.Active))
	for key := range env.Active {
		if _, both := env.Inactive[key]; both {
			log.Warn(ctx, "config key present in both active and inactive groups, active wins",
				"environment", environment, "key", key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
