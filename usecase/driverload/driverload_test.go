package driverload

import (
	"fmt"

	"github.com/driverset/driverset/config/driverscfg"
	"github.com/driverset/driverset/domain/model"
)

// fakeRuntime stands in for adapters/drivers so tests are independent of
// which drivers the test binary compiled in.
type fakeRuntime struct {
	available   map[string]bool
	activateErr map[string]error
	activations map[string]int
}

func newFakeRuntime(available ...string) *fakeRuntime {
	f := &fakeRuntime{
		available:   map[string]bool{},
		activateErr: map[string]error{},
		activations: map[string]int{},
	}
	for _, id := range available {
		f.available[id] = true
	}
	return f
}

func (f *fakeRuntime) Resolvable(driverID string) bool { return f.available[driverID] }

func (f *fakeRuntime) Activate(driverID string) error {
	f.activations[driverID]++
	if err, ok := f.activateErr[driverID]; ok {
		return err
	}
	if !f.available[driverID] {
		return fmt.Errorf("driver %q: %w", driverID, model.ErrDriverUnavailable)
	}
	return nil
}

// testTable mirrors the production registry shape with a small closed set.
var testTable = map[string]model.RegistryEntry{
	"postgres": {ConfigKey: "postgres", DriverID: "pgx", Coordinate: "github.com/jackc/pgx/v5/stdlib", Suggestion: "import the postgres activation package"},
	"sqlite":   {ConfigKey: "sqlite", DriverID: "sqlite", Coordinate: "modernc.org/sqlite", Suggestion: "import the sqlite activation package"},
	"duckdb":   {ConfigKey: "duckdb", DriverID: "duckdb", Coordinate: "github.com/marcboeker/go-duckdb", Suggestion: "rebuild with -tags duckdb"},
	// Two keys deliberately mapping to one driver ID.
	"sqlite-replica": {ConfigKey: "sqlite-replica", DriverID: "sqlite", Coordinate: "modernc.org/sqlite", Suggestion: "import the sqlite activation package"},
}

func testLookup(key string) (model.RegistryEntry, bool) {
	e, ok := testTable[key]
	return e, ok
}

func newTestUseCase(rt Runtime) *UseCase {
	return New(&Ports{Lookup: testLookup, Runtime: rt})
}

func cfgWith(env string, active, inactive []string) *driverscfg.Root {
	e := driverscfg.Environment{}
	if active != nil {
		e.Active = map[string]driverscfg.Settings{}
		for _, k := range active {
			e.Active[k] = driverscfg.Settings{}
		}
	}
	if inactive != nil {
		e.Inactive = map[string]driverscfg.Settings{}
		for _, k := range inactive {
			e.Inactive[k] = driverscfg.Settings{}
		}
	}
	return &driverscfg.Root{Version: "v1", Environments: map[string]driverscfg.Environment{env: e}}
}
