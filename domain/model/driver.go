package model

// RegistryEntry maps a configuration key to the database/sql driver that
// serves it. Entries are built once at process start and never mutated.
type RegistryEntry struct {
	ConfigKey  string // key used in driverset.yml (e.g., "postgres")
	DriverID   string // database/sql driver name (e.g., "pgx")
	Coordinate string // Go package whose import registers the driver
	Suggestion string // operator hint for making the driver available
}

// ErrorKind classifies why a required driver could not be produced.
type ErrorKind string

const (
	// ErrorKindUnknownConfigKey marks an active configuration key with no
	// registry entry. A config authoring error, not a runtime one.
	ErrorKindUnknownConfigKey ErrorKind = "unknown_config_key"
	// ErrorKindDriverUnavailable marks a known driver that is not compiled
	// into this binary.
	ErrorKindDriverUnavailable ErrorKind = "driver_unavailable"
	// ErrorKindDriverLoadError marks a driver whose activation hook was
	// found but failed while running.
	ErrorKindDriverLoadError ErrorKind = "driver_load_error"
)

// FailureDetail describes one driver that could not be loaded.
type FailureDetail struct {
	DriverID   string    `json:"driverId"`
	Cause      ErrorKind `json:"cause"`
	Coordinate string    `json:"coordinate,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Detail     string    `json:"detail,omitempty"` // underlying error text for load errors
}

// OutcomeMode records which operation produced an Outcome.
type OutcomeMode string

const (
	OutcomeModeLoad     OutcomeMode = "load"
	OutcomeModeValidate OutcomeMode = "validate"
)
