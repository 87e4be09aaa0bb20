package driverscfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks when the caller supplies no path.
const DefaultConfigPath = "driverset.yml"

// ConfigPathEnv overrides DefaultConfigPath when set.
const ConfigPathEnv = "DRIVERSET_CONFIG"

// ConfigPath resolves the effective config path: explicit argument, then
// the DRIVERSET_CONFIG environment variable, then DefaultConfigPath.
func ConfigPath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(ConfigPathEnv); env != "" {
		return env
	}
	return DefaultConfigPath
}

// Load reads a YAML file from the given path and returns a deserialized Root.
// It performs no validation beyond YAML decoding; validation is handled elsewhere.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return &cfg, nil
}
