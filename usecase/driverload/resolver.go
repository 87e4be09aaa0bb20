package driverload

import (
	"sort"

	"github.com/driverset/driverset/domain/model"
)

// Resolve maps active configuration keys to the set of registry entries
// whose drivers the environment requires. Keys with no registry entry are
// returned as unknown, never silently dropped: an unknown key is a config
// authoring error distinct from a driver being unavailable, and callers
// report the two differently.
//
// Two keys mapping to the same driver ID collapse into one required entry,
// so the driver is loaded once. Required entries come back sorted by
// driver ID, unknown keys sorted by key, purely for stable logs and tests.
func (u *UseCase) Resolve(activeKeys []string) (required []model.RegistryEntry, unknown []string) {
	seen := make(map[string]struct{}, len(activeKeys))
	for _, key := range activeKeys {
		entry, ok := u.Ports.Lookup(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if _, dup := seen[entry.DriverID]; dup {
			continue
		}
		seen[entry.DriverID] = struct{}{}
		required = append(required, entry)
	}
	sort.Slice(required, func(i, j int) bool { return required[i].DriverID < required[j].DriverID })
	sort.Strings(unknown)
	return required, unknown
}
