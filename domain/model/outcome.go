package model

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the complete result of resolving and loading (or probing) the
// drivers one environment needs. Both operations report through the same
// shape so pre-flight checks see exactly what startup would.
type Outcome struct {
	Environment string          `json:"environment"`
	Mode        OutcomeMode     `json:"mode"`
	Success     bool            `json:"success"` // true iff Failed is empty
	Loaded      []string        `json:"loaded"`  // driver IDs, sorted
	Failed      []FailureDetail `json:"failed"`  // sorted by driver ID
	Unknown     []string        `json:"unknown"` // config keys without a registry entry, sorted
	CompletedAt time.Time       `json:"completedAt"`
}

// Clean reports whether the outcome carries neither failed drivers nor
// unknown keys. Success alone ignores Unknown (an unknown key is a config
// authoring error, not a load failure); callers gating startup or CI
// usually want Clean.
func (o *Outcome) Clean() bool {
	return o.Success && len(o.Unknown) == 0
}

// Report renders the aggregated operator-facing summary: every missing
// driver with its package coordinate and suggestion, unknown keys as a
// separate section, and the standing alternative of deactivating the key.
func (o *Outcome) Report() string {
	var b strings.Builder
	verb := "loaded"
	if o.Mode == OutcomeModeValidate {
		verb = "resolvable"
	}
	fmt.Fprintf(&b, "environment %q: %d driver(s) %s, %d failed, %d unknown key(s)\n",
		o.Environment, len(o.Loaded), verb, len(o.Failed), len(o.Unknown))
	for _, id := range o.Loaded {
		fmt.Fprintf(&b, "  ok      %s\n", id)
	}
	for _, f := range o.Failed {
		switch f.Cause {
		case ErrorKindDriverLoadError:
			fmt.Fprintf(&b, "  failed  %s: activation error: %s\n", f.DriverID, f.Detail)
		default:
			fmt.Fprintf(&b, "  missing %s (%s)\n", f.DriverID, f.Coordinate)
			if f.Suggestion != "" {
				fmt.Fprintf(&b, "          %s\n", f.Suggestion)
			}
		}
	}
	for _, k := range o.Unknown {
		fmt.Fprintf(&b, "  unknown config key %q has no supported driver\n", k)
	}
	if len(o.Failed) > 0 || len(o.Unknown) > 0 {
		b.WriteString("moving a key to the inactive group is a valid alternative to adding its driver\n")
	}
	return b.String()
}
