// Package paths resolves the configuration and schemas directory locations.
// See docs/ARCHITECTURE.md § Configuration.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName  = ".schemadrift"
	DefaultSchemasDirName = "schemas"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir  = "SCHEMADRIFT_CONFIG_DIR"
	EnvSchemasDir = "SCHEMADRIFT_SCHEMAS_DIR"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SCHEMADRIFT_CONFIG_DIR env > $(CWD)/.schemadrift.
//
// The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveSchemasDir returns the schemas directory following the precedence
// chain: flag > config.yaml schemas_dir > SCHEMADRIFT_SCHEMAS_DIR env >
// $(CWD)/schemas.
//
// The CWD-relative default keeps the conventional repo layout where both
// exporters write into ./schemas.
func ResolveSchemasDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvSchemasDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultSchemasDirName), nil
}
