// Compare command: load both snapshots, run the comparator, print the report.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/schemadrift/internal/drift"
	"github.com/mesh-intelligence/schemadrift/internal/paths"
	"github.com/mesh-intelligence/schemadrift/internal/snapshot"
	"github.com/mesh-intelligence/schemadrift/pkg/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the two schema snapshots and print a drift report",
	Long: `Compare loads the two snapshot documents from the schemas directory,
computes every structural difference between them, and prints the report to
stdout.

The exit status is 0 whenever the comparison ran, with or without drift;
a missing or unparseable snapshot exits 2.

Example:
  schemadrift compare
  schemadrift compare --schemas-dir build/schemas
  schemadrift compare --json`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

// side describes one snapshot input resolved from configuration.
type side struct {
	path  string
	label string
	regen string
}

func runCompare(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfgFile, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	schemasDir, err := paths.ResolveSchemasDir(flagSchemasDir, cfgFile.GetString(cfgKeySchemasDir))
	if err != nil {
		return fmt.Errorf("resolve schemas dir: %w", err)
	}

	sideA := resolveSide(cfgFile, schemasDir, cfgKeySideAFile, cfgKeySideALabel, cfgKeySideARegen)
	sideB := resolveSide(cfgFile, schemasDir, cfgKeySideBFile, cfgKeySideBLabel, cfgKeySideBRegen)

	return compareSides(sideA, sideB, flagJSON, cmd.OutOrStdout())
}

// resolveSide builds one side's input description from config. Relative file
// names are joined onto the schemas directory; absolute ones are kept.
func resolveSide(cfg *viper.Viper, schemasDir, fileKey, labelKey, regenKey string) side {
	file := cfg.GetString(fileKey)
	if !filepath.IsAbs(file) {
		file = filepath.Join(schemasDir, file)
	}
	return side{
		path:  file,
		label: cfg.GetString(labelKey),
		regen: cfg.GetString(regenKey),
	}
}

// compareSides is the I/O-bearing driver around the pure comparator: load
// both snapshots, compare, render. It is the whole of the compare command
// after flag and config resolution, separated out for tests.
func compareSides(a, b side, jsonOut bool, out io.Writer) error {
	snapA, err := loadSide(a)
	if err != nil {
		return err
	}
	snapB, err := loadSide(b)
	if err != nil {
		return err
	}

	cfg := types.DefaultConfig()
	cfg.LabelA = a.label
	cfg.LabelB = b.label

	comparator, err := drift.NewComparator(cfg)
	if err != nil {
		return &exitCodeError{code: exitUserError, msg: err.Error()}
	}

	report := comparator.Compare(snapA, snapB)

	if jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, drift.NewRenderer(cfg).Render(report))

	// Drift is information, not failure: exit zero either way so pipeline
	// invocations observe rather than gate.
	return nil
}

// loadSide loads one snapshot, turning a missing file into a diagnostic that
// names the path and the command that regenerates it.
func loadSide(s side) (types.SchemaSnapshot, error) {
	snap, err := snapshot.Load(s.path)
	if err == nil {
		return snap, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		msg := fmt.Sprintf("snapshot for %s not found: %s", s.label, s.path)
		if s.regen != "" {
			msg += "\nregenerate with: " + s.regen
		}
		return types.SchemaSnapshot{}, &exitCodeError{code: exitSysError, msg: msg}
	}

	return types.SchemaSnapshot{}, &exitCodeError{code: exitSysError, msg: err.Error()}
}
