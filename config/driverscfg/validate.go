package driverscfg

import (
	"fmt"

	"github.com/driverset/driverset/domain/model"
)

// Validate performs semantic validation on the configuration tree.
// A key present in both active and inactive groups is deliberately not an
// error here: the analyzer treats it as active and logs a diagnostic.
func (r *Root) Validate() error {
	for name, env := range r.Environments {
		if name == "" {
			return fmt.Errorf("%w: empty environment name", model.ErrEnvironmentInvalid)
		}
		if err := env.validate(); err != nil {
			return fmt.Errorf("environment %q: %w", name, err)
		}
	}
	return nil
}

func (e *Environment) validate() error {
	for key := range e.Active {
		if key == "" {
			return fmt.Errorf("%w: empty config key in active group", model.ErrConfigInvalid)
		}
	}
	for key := range e.Inactive {
		if key == "" {
			return fmt.Errorf("%w: empty config key in inactive group", model.ErrConfigInvalid)
		}
	}
	return nil
}
