// Package registry holds the closed table mapping configuration keys to the
// database/sql drivers that serve them. The supported set changes only with
// new releases, so the table is compiled in and immutable; it is safe to
// read from concurrent goroutines without locking.
package registry

import (
	"sort"

	"github.com/driverset/driverset/domain/model"
)

var entries = map[string]model.RegistryEntry{
	"postgres": {
		ConfigKey:  "postgres",
		DriverID:   "pgx",
		Coordinate: "github.com/jackc/pgx/v5/stdlib",
		Suggestion: `import _ "github.com/driverset/driverset/adapters/drivers/postgres" in your main package`,
	},
	"sqlite": {
		ConfigKey:  "sqlite",
		DriverID:   "sqlite",
		Coordinate: "modernc.org/sqlite",
		Suggestion: `import _ "github.com/driverset/driverset/adapters/drivers/sqlite" in your main package`,
	},
	"duckdb": {
		ConfigKey:  "duckdb",
		DriverID:   "duckdb",
		Coordinate: "github.com/marcboeker/go-duckdb",
		Suggestion: `import _ "github.com/driverset/driverset/adapters/drivers/duckdb" and rebuild with CGO_ENABLED=1 -tags duckdb`,
	},
	"genji": {
		ConfigKey:  "genji",
		DriverID:   "genji",
		Coordinate: "github.com/genjidb/genji/driver",
		Suggestion: `import _ "github.com/driverset/driverset/adapters/drivers/genji" in your main package`,
	},
	"chai": {
		ConfigKey:  "chai",
		DriverID:   "chai",
		Coordinate: "modernc.org/sqlite",
		Suggestion: `import _ "github.com/driverset/driverset/adapters/drivers/chai" in your main package`,
	},
}

// Lookup returns the entry for a configuration key. A miss is a legitimate
// unknown-driver state, not an error; callers surface it rather than swallow it.
func Lookup(configKey string) (model.RegistryEntry, bool) {
	e, ok := entries[configKey]
	return e, ok
}

// Entries returns a copy of the table sorted by configuration key.
func Entries() []model.RegistryEntry {
	out := make([]model.RegistryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConfigKey < out[j].ConfigKey })
	return out
}
