package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/schemadrift/pkg/types"
)

const snapshotA = `{
	"bo": {
		"Zaehler": {
			"properties": {
				"zaehlernummer": {"type": "string"},
				"sparte": {"type": "string"},
				"_typ": {"type": "string"}
			}
		}
	},
	"com": {
		"Adresse": {"properties": {"plz": {"type": "string"}}}
	},
	"enum": {
		"Sparte": ["STROM", "GAS"]
	}
}`

const snapshotBDrifted = `{
	"bo": {
		"Zaehler": {
			"properties": {
				"zaehlernummer": {"type": "integer"},
				"sparte": {"type": "string"}
			}
		}
	},
	"enum": {
		"Sparte": ["STROM"]
	}
}`

// snapshotBIgnoredOnly differs from snapshotA only in ignore-listed metadata
// fields.
const snapshotBIgnoredOnly = `{
	"bo": {
		"Zaehler": {
			"properties": {
				"zaehlernummer": {"type": "string"},
				"sparte": {"type": "string"},
				"_version": {"type": "string"},
				"zusatzAttribute": {"type": "array"}
			}
		}
	},
	"com": {
		"Adresse": {"properties": {"plz": {"type": "string"}}}
	},
	"enum": {
		"Sparte": ["STROM", "GAS"]
	}
}`

// writeSides writes both snapshot documents into a temp dir and returns the
// two sides.
func writeSides(t *testing.T, contentA, contentB string) (side, side) {
	t.Helper()
	dir := t.TempDir()
	pathA := filepath.Join(dir, "schema_a.json")
	pathB := filepath.Join(dir, "schema_b.json")
	require.NoError(t, os.WriteFile(pathA, []byte(contentA), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte(contentB), 0o644))
	return side{path: pathA, label: "A"}, side{path: pathB, label: "B"}
}

func TestCompareSidesNoDrift(t *testing.T) {
	sideA, sideB := writeSides(t, snapshotA, snapshotA)
	var out bytes.Buffer

	err := compareSides(sideA, sideB, false, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No drift detected - schemas are in sync!")
}

func TestCompareSidesDriftStillSucceeds(t *testing.T) {
	sideA, sideB := writeSides(t, snapshotA, snapshotBDrifted)
	var out bytes.Buffer

	// Drift must not fail the run.
	err := compareSides(sideA, sideB, false, &out)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "Drift detected between A and B schemas")
	assert.Contains(t, report, "- **com/Adresse**: entire type")
	assert.Contains(t, report, "- **enum/Sparte**: variants: [GAS]")
	assert.Contains(t, report, "- bo/Zaehler.zaehlernummer: A=string, B=integer")
	assert.Contains(t, report, "## Summary")
}

func TestCompareSidesIgnoredFieldsOnly(t *testing.T) {
	sideA, sideB := writeSides(t, snapshotA, snapshotBIgnoredOnly)
	var out bytes.Buffer

	err := compareSides(sideA, sideB, false, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No drift detected - schemas are in sync!")
}

func TestCompareSidesMissingSnapshot(t *testing.T) {
	_, sideB := writeSides(t, snapshotA, snapshotA)
	missing := side{
		path:  filepath.Join(t.TempDir(), "python_schema.json"),
		label: "Python",
		regen: "python scripts/extract_schema.py > schemas/python_schema.json",
	}
	var out bytes.Buffer

	err := compareSides(missing, sideB, false, &out)

	require.Error(t, err)
	var coded *exitCodeError
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, exitSysError, coded.code)
	assert.Contains(t, err.Error(), missing.path)
	assert.Contains(t, err.Error(), "regenerate with: python scripts/extract_schema.py")
	assert.Empty(t, out.String(), "no report on failed run")
}

func TestCompareSidesUnparseableSnapshot(t *testing.T) {
	sideA, sideB := writeSides(t, snapshotA, `{not json`)
	var out bytes.Buffer

	err := compareSides(sideA, sideB, false, &out)

	require.Error(t, err)
	var coded *exitCodeError
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, exitSysError, coded.code)
	assert.Contains(t, err.Error(), sideB.path)
}

func TestCompareSidesJSONOutput(t *testing.T) {
	sideA, sideB := writeSides(t, snapshotA, snapshotBDrifted)
	var out bytes.Buffer

	err := compareSides(sideA, sideB, true, &out)
	require.NoError(t, err)

	var report types.DriftReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.True(t, report.HasDrift())
	assert.Equal(t, "entire type", report.MissingInB["com/Adresse"])
	assert.Len(t, report.TypeMismatches, 1)
}

func TestCompareSidesJSONDeterminism(t *testing.T) {
	sideA, sideB := writeSides(t, snapshotA, snapshotBDrifted)

	var first, second bytes.Buffer
	require.NoError(t, compareSides(sideA, sideB, true, &first))
	require.NoError(t, compareSides(sideA, sideB, true, &second))

	assert.Equal(t, first.String(), second.String())
}

func TestLoadConfigFirstRun(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), ".schemadrift")

	cfg, err := loadConfig(configDir)
	require.NoError(t, err)

	// Default config.yaml was written.
	_, statErr := os.Stat(filepath.Join(configDir, "config.yaml"))
	assert.NoError(t, statErr)

	assert.Equal(t, defaultSideAFile, cfg.GetString(cfgKeySideAFile))
	assert.Equal(t, defaultSideBFile, cfg.GetString(cfgKeySideBFile))
	assert.Equal(t, types.DefaultLabelA, cfg.GetString(cfgKeySideALabel))
	assert.Equal(t, types.DefaultLabelB, cfg.GetString(cfgKeySideBLabel))

	// A default-configuration run must still carry regeneration hints for
	// the missing-snapshot diagnostic.
	assert.Equal(t, defaultSideARegen, cfg.GetString(cfgKeySideARegen))
	assert.Equal(t, defaultSideBRegen, cfg.GetString(cfgKeySideBRegen))
}

func TestMissingSnapshotDiagnosticWithDefaultConfig(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), ".schemadrift")
	cfg, err := loadConfig(configDir)
	require.NoError(t, err)

	schemasDir := t.TempDir() // empty: neither snapshot exists
	sideA := resolveSide(cfg, schemasDir, cfgKeySideAFile, cfgKeySideALabel, cfgKeySideARegen)
	sideB := resolveSide(cfg, schemasDir, cfgKeySideBFile, cfgKeySideBLabel, cfgKeySideBRegen)
	var out bytes.Buffer

	err = compareSides(sideA, sideB, false, &out)

	require.Error(t, err)
	var coded *exitCodeError
	require.True(t, errors.As(err, &coded))
	assert.Equal(t, exitSysError, coded.code)
	assert.Contains(t, err.Error(), sideA.path)
	assert.Contains(t, err.Error(), "regenerate with: "+defaultSideARegen)
}

func TestLoadConfigReadsExisting(t *testing.T) {
	configDir := t.TempDir()
	content := `schemas_dir: /srv/schemas
side_a:
  file: python_schema.json
  label: Python
  regen: make python-schema
side_b:
  file: rust_schema.json
  label: Rust
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := loadConfig(configDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/schemas", cfg.GetString(cfgKeySchemasDir))
	assert.Equal(t, "python_schema.json", cfg.GetString(cfgKeySideAFile))
	assert.Equal(t, "Python", cfg.GetString(cfgKeySideALabel))
	assert.Equal(t, "make python-schema", cfg.GetString(cfgKeySideARegen))
	assert.Equal(t, "Rust", cfg.GetString(cfgKeySideBLabel))
}

func TestResolveSide(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), ".schemadrift")
	cfg, err := loadConfig(configDir)
	require.NoError(t, err)

	t.Run("relative file joins schemas dir", func(t *testing.T) {
		s := resolveSide(cfg, "/srv/schemas", cfgKeySideAFile, cfgKeySideALabel, cfgKeySideARegen)
		assert.Equal(t, filepath.Join("/srv/schemas", defaultSideAFile), s.path)
		assert.Equal(t, types.DefaultLabelA, s.label)
	})

	t.Run("absolute file kept as-is", func(t *testing.T) {
		cfg.Set(cfgKeySideBFile, "/abs/rust_schema.json")
		s := resolveSide(cfg, "/srv/schemas", cfgKeySideBFile, cfgKeySideBLabel, cfgKeySideBRegen)
		assert.Equal(t, "/abs/rust_schema.json", s.path)
	})
}
