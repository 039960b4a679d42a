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
/*
Package report accumulates per-run records of a sweep and persists them: a
flattened CSV for downstream analysis plus a full-fidelity YAML snapshot that
keeps what the CSV flattens away (factors, exit statuses, failure kinds, the
exact command of every run).
*/
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hbickel/psweep/config"
	"github.com/hbickel/psweep/parse"
)

var ErrWrite = fmt.Errorf("report destination not writable")

// Record is the full per-run structure kept in the snapshot. Error holds the
// failure kind for runs that produced no usable timing rows; it is empty for
// successful runs.
type Record struct {
	RunID      string      `yaml:"run_id"`
	Command    string      `yaml:"command"`
	RankCount  int         `yaml:"rank_count"`
	Factors    *[3]int     `yaml:"factors,omitempty"`
	Rows       []parse.Row `yaml:"timing_rows,omitempty"`
	ExitStatus int         `yaml:"exit_status"`
	Duration   string      `yaml:"duration,omitempty"`
	Error      string      `yaml:"error,omitempty"`
}

// Failed reports whether the run was recorded with a failure kind.
func (r Record) Failed() bool {
	return r.Error != ""
}

// Report is the append-only result set of one sweep. It has a single
// sequential writer by construction, so no locking.
type Report struct {
	Name        string
	Description string
	Started     time.Time
	Header      []string
	CSVName     string
	records     []Record
}

// New starts an empty report. header names the CSV columns for the timing
// fields; the names are application-defined.
func New(name, description string, header []string) *Report {
	return &Report{
		Name:        name,
		Description: description,
		Started:     time.Now(),
		Header:      header,
		CSVName:     config.CSVFileName,
	}
}

// Add appends one run record, assigning it an ID if the caller did not.
func (r *Report) Add(rec Record) {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}
	r.records = append(r.records, rec)
}

// Records returns the accumulated records in run order.
func (r *Report) Records() []Record {
	return r.records
}

// Dirname is the destination directory name for this report,
// <name>-<start timestamp>, so repeated sweeps never collide.
func (r *Report) Dirname() string {
	return fmt.Sprintf("%s-%s", r.Name, r.Started.Format(config.TimestampLayout))
}

// Flush persists the report under baseDir. It refuses to reuse an existing
// directory: a prior experiment's results are never overwritten.
func (r *Report) Flush(baseDir string) error {
	dir := filepath.Join(baseDir, r.Dirname())
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrWrite, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := r.writeCSV(filepath.Join(dir, r.CSVName)); err != nil {
		return err
	}
	return r.writeSnapshot(filepath.Join(dir, config.MetadataFileName))
}

// Emit renders the successful runs' timing rows as a terminal table.
func (r *Report) Emit(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s report", r.Name)

	hdr := make(table.Row, 0, len(r.Header)+1)
	hdr = append(hdr, "command")
	for _, h := range r.Header {
		hdr = append(hdr, h)
	}
	t.AppendHeader(hdr)

	for _, rec := range r.records {
		if rec.Failed() {
			continue
		}
		for _, row := range rec.Rows {
			tr := make(table.Row, 0, len(row)+1)
			tr = append(tr, rec.Command)
			for _, f := range row {
				tr = append(tr, f)
			}
			t.AppendRow(tr)
		}
	}
	t.Render()
}
