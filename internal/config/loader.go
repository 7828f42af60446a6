package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sysforge/pkg/logging"

	sigsyaml "sigs.k8s.io/yaml"
)

// Load reads a configuration tree from disk. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON. The returned tree has
// defaults applied and is treated as immutable by all downstream stages.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration from %s: %w", path, err)
	}

	cfg := &Configuration{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := sigsyaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing configuration from %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing configuration from %s: %w", path, err)
		}
	}

	ApplyDefaults(cfg)
	logging.Info("ConfigLoader", "Loaded configuration from %s", path)
	return cfg, nil
}

// MarshalJSON serializes the full configuration tree for tooling and
// introspection. The output is stable: encoding/json emits struct fields in
// declaration order, so identical trees yield identical bytes.
func MarshalJSON(cfg *Configuration) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing configuration: %w", err)
	}
	return append(data, '\n'), nil
}
