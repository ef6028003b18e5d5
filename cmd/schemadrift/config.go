// Config loading for the schemadrift CLI.
// See docs/ARCHITECTURE.md § Configuration.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/schemadrift/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeySchemasDir = "schemas_dir"
	cfgKeySideAFile  = "side_a.file"
	cfgKeySideALabel = "side_a.label"
	cfgKeySideARegen = "side_a.regen"
	cfgKeySideBFile  = "side_b.file"
	cfgKeySideBLabel = "side_b.label"
	cfgKeySideBRegen = "side_b.regen"

	// Conventional snapshot file names inside the schemas directory.
	defaultSideAFile = "schema_a.json"
	defaultSideBFile = "schema_b.json"

	// Default regeneration commands suggested when a snapshot is missing:
	// the conventional exporter invocations of the two reference
	// implementations, writing to the conventional locations.
	defaultSideARegen = "python scripts/extract_python_schema.py > schemas/" + defaultSideAFile
	defaultSideBRegen = "cargo run --bin generate_schema --features json-schema > schemas/" + defaultSideBFile
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# schemadrift configuration

# Directory holding both snapshot documents (optional; overridable by
# --schemas-dir flag).
# schemas_dir:

# The two sides under comparison. "regen" is the command suggested to the
# user when a snapshot file is missing; the defaults assume the conventional
# exporter invocations. Example for a renamed Python/Rust pair:
#
# side_a:
#   file: python_schema.json
#   label: Python
#   regen: python scripts/extract_python_schema.py > schemas/python_schema.json
# side_b:
#   file: rust_schema.json
#   label: Rust
#   regen: cargo run --bin generate_schema --features json-schema > schemas/rust_schema.json
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeySideAFile, defaultSideAFile)
	v.SetDefault(cfgKeySideALabel, types.DefaultLabelA)
	v.SetDefault(cfgKeySideARegen, defaultSideARegen)
	v.SetDefault(cfgKeySideBFile, defaultSideBFile)
	v.SetDefault(cfgKeySideBLabel, types.DefaultLabelB)
	v.SetDefault(cfgKeySideBRegen, defaultSideBRegen)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
