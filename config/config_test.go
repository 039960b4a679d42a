/*
github.com/hbickel/psweep - Benchmark automation harness for HPC proxy applications.
Copyright (C) 2026 The project authors - hbickel

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbickel/psweep/sweep"
)

const sampleYAML = `
name: snap
description: SNAP quick sweep
executable: ~/SNAP_build/src/gsnap
runcmds:
  low: 4
  high: 6
  template: "mpiexec -n %n"
  index_expr: "nidx"
extra_args: ["./experiments/input", "./experiments/output"]
anchor: "Timing Summary"
row_offset: 3
row_width: 14
csv_header: ["label", "seconds"]
timeout_seconds: 600
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exp.yaml")
	require.Nil(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	e, err := Load(writeConfig(t, sampleYAML))
	require.Nil(t, err)

	assert.Equal(t, "snap", e.Name)
	assert.Equal(t, 4, e.RunCmds.Low)
	assert.Equal(t, 6, e.RunCmds.High)
	assert.Equal(t, "mpiexec -n %n", e.RunCmds.Template)
	assert.Equal(t, []string{"./experiments/input", "./experiments/output"}, e.ExtraArgs)
	assert.Equal(t, 14, e.Table().RowWidth)
	assert.Equal(t, 600, e.TimeoutSeconds)
	// Defaults fill what the file omitted.
	assert.Equal(t, DefaultOutputDir, e.OutputDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, sweep.ErrConfiguration)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "name: [unclosed"))
	assert.ErrorIs(t, err, sweep.ErrConfiguration)
}

func TestValidateRejections(t *testing.T) {
	base := func() Experiment {
		e, err := Load(writeConfig(t, sampleYAML))
		require.Nil(t, err)
		return e
	}

	e := base()
	e.Name = ""
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)

	e = base()
	e.Executable = ""
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)

	e = base()
	e.RunCmds.Low, e.RunCmds.High = 6, 4
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)

	e = base()
	e.RunCmds.IndexExpr = "nidx +"
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)

	e = base()
	e.Anchor = ""
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)

	e = base()
	e.RowWidth = 0
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)

	e = base()
	e.ManualFactors = [][3]int{{1, 1, 4}, {1, 1, 5}, {1, 2, 3}}
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration) // use_factors is false

	e.UseFactors = true
	assert.Nil(t, e.Validate())

	e.ManualFactors = e.ManualFactors[:2] // wrong length for a 3-point sweep
	assert.ErrorIs(t, e.Validate(), sweep.ErrConfiguration)
}

func TestBuiltinAppsAreValid(t *testing.T) {
	names := AppNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		e, err := App(name)
		require.Nil(t, err, name)
		assert.Nil(t, e.Validate(), name)
	}
}

func TestAppUnknown(t *testing.T) {
	_, err := App("hpl")
	assert.ErrorIs(t, err, sweep.ErrConfiguration)
}

func TestAppProfilesRenderFirstPoint(t *testing.T) {
	// Every profile's template must render against its own sweep, the same
	// dry-run the harness performs before launching anything.
	for _, name := range AppNames() {
		e, err := App(name)
		require.Nil(t, err)
		spec := e.Sweep()
		pts, err := sweep.Expand(spec.Low, spec.High, spec.IndexExpr)
		require.Nil(t, err, name)
		require.NotEmpty(t, pts, name)

		var factors *[3]int
		if e.UseFactors {
			f, err := sweep.Factor(pts[0].RankCount, nil)
			require.Nil(t, err, name)
			factors = &f
		}
		cmd, err := sweep.BuildCommand(spec.Template, e.Executable, pts[0].RankCount, factors, e.ExtraArgs)
		require.Nil(t, err, name)
		assert.NotEmpty(t, cmd, name)
	}
}
