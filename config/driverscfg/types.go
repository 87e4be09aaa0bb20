// Package driverscfg defines the configuration schema (structs) for
// driverset.yml. This package is intended for YAML -> struct
// deserialization; the resolution engine consumes the result.
package driverscfg

// Root is the root structure of driverset.yml.
type Root struct {
	Version      string                 `yaml:"version"`
	Environments map[string]Environment `yaml:"environments"`
}

// Environment declares which databases an environment uses. Keys of the
// Active and Inactive maps are configuration keys (e.g., "postgres");
// their settings are opaque to the resolution engine and flow through to
// whatever opens connections later.
type Environment struct {
	Active   map[string]Settings `yaml:"active"`
	Inactive map[string]Settings `yaml:"inactive"`
}

// Settings holds per-database connection settings. Opaque here.
type Settings map[string]string

// Environment returns the named environment and whether it exists. A
// missing environment behaves like one with no active databases.
func (r *Root) Environment(name string) (Environment, bool) {
	env, ok := r.Environments[name]
	return env, ok
}
