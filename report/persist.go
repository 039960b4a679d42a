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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// writeCSV flattens the successful runs into one CSV row per timing row, with
// the originating command as the leading column so measurements can be
// correlated back to their configuration. Failed runs are omitted, not
// fabricated.
func (r *Report) writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"command"}, r.Header...)); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	for _, rec := range r.records {
		if rec.Failed() {
			continue
		}
		for _, row := range rec.Rows {
			if err := w.Write(append([]string{rec.Command}, row...)); err != nil {
				return fmt.Errorf("%w: %v", ErrWrite, err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

type snapshot struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Started     string   `yaml:"started"`
	Runs        []Record `yaml:"runs"`
}

// writeSnapshot records the complete per-run structure, including failed runs
// and their error kinds, for traceability beyond what the CSV preserves.
func (r *Report) writeSnapshot(path string) error {
	snap := snapshot{
		Name:        r.Name,
		Description: r.Description,
		Started:     r.Started.Format(time.RFC3339),
		Runs:        r.records,
	}
	out, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
