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

package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hbickel/psweep/config"
	"github.com/hbickel/psweep/parse"
)

func threeRunReport() *Report {
	rep := New("snap", "timing sweep", []string{"label", "value"})
	rep.Add(Record{
		Command:    "mpiexec -n 4 gsnap",
		RankCount:  4,
		Rows:       []parse.Row{{"Solve", "1.25"}, {"Setup", "0.50"}},
		ExitStatus: 0,
	})
	rep.Add(Record{
		Command:    "mpiexec -n 5 gsnap",
		RankCount:  5,
		ExitStatus: -1,
		Error:      "timeout",
	})
	rep.Add(Record{
		Command:    "mpiexec -n 6 gsnap",
		RankCount:  6,
		Rows:       []parse.Row{{"Solve", "0.75"}},
		ExitStatus: 0,
	})
	return rep
}

func TestFlushCSVOmitsFailedRuns(t *testing.T) {
	rep := threeRunReport()
	dir := t.TempDir()
	require.Nil(t, rep.Flush(dir))

	f, err := os.Open(filepath.Join(dir, rep.Dirname(), config.CSVFileName))
	require.Nil(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.Nil(t, err)

	want := [][]string{
		{"command", "label", "value"},
		{"mpiexec -n 4 gsnap", "Solve", "1.25"},
		{"mpiexec -n 4 gsnap", "Setup", "0.50"},
		{"mpiexec -n 6 gsnap", "Solve", "0.75"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestFlushSnapshotKeepsFailedRuns(t *testing.T) {
	rep := threeRunReport()
	dir := t.TempDir()
	require.Nil(t, rep.Flush(dir))

	raw, err := os.ReadFile(filepath.Join(dir, rep.Dirname(), config.MetadataFileName))
	require.Nil(t, err)

	var snap struct {
		Name string   `yaml:"name"`
		Runs []Record `yaml:"runs"`
	}
	require.Nil(t, yaml.Unmarshal(raw, &snap))
	assert.Equal(t, "snap", snap.Name)
	require.Len(t, snap.Runs, 3)
	assert.Equal(t, "timeout", snap.Runs[1].Error)
	assert.Empty(t, snap.Runs[0].Error)
	assert.Equal(t, "mpiexec -n 5 gsnap", snap.Runs[1].Command)
}

func TestFlushNeverOverwrites(t *testing.T) {
	rep := threeRunReport()
	dir := t.TempDir()
	require.Nil(t, rep.Flush(dir))

	err := rep.Flush(dir)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestFlushUnwritableDestination(t *testing.T) {
	rep := threeRunReport()
	err := rep.Flush(filepath.Join(string(os.PathSeparator), "proc", "no-such-place"))
	assert.ErrorIs(t, err, ErrWrite)
}

func TestAddAssignsRunIDs(t *testing.T) {
	rep := New("x", "", nil)
	rep.Add(Record{Command: "a"})
	rep.Add(Record{Command: "b"})
	recs := rep.Records()
	require.Len(t, recs, 2)
	assert.NotEmpty(t, recs[0].RunID)
	assert.NotEqual(t, recs[0].RunID, recs[1].RunID)
}

func TestEmit(t *testing.T) {
	rep := threeRunReport()
	var b strings.Builder
	rep.Emit(&b)
	out := b.String()
	assert.Contains(t, out, "Solve")
	assert.Contains(t, out, "mpiexec -n 4 gsnap")
	// The failed run contributes no table rows.
	assert.NotContains(t, out, "mpiexec -n 5 gsnap")
}

func TestDirnameIsTimestamped(t *testing.T) {
	rep := New("amg", "", nil)
	assert.True(t, strings.HasPrefix(rep.Dirname(), "amg-"))
	assert.Equal(t, len("amg-")+len(config.TimestampLayout), len(rep.Dirname()))
}
