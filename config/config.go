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
Experiment configuration: the validated struct handed to the harness, its YAML
on-disk form, and the general harness settings.
*/
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hbickel/psweep/parse"
	"github.com/hbickel/psweep/sweep"
)

const (
	// On-disk report layout.
	CSVFileName      = "data.csv"
	MetadataFileName = "metadata.yaml"
	TimestampLayout  = "20060102-150405"

	// DefaultTimeout bounds one run of the target program. Zero disables the
	// bound entirely, which is almost never what a sweep wants.
	DefaultTimeout = 30 * time.Minute

	// DefaultOutputDir is where report directories are created unless the
	// configuration says otherwise.
	DefaultOutputDir = "."
)

// RunCmds is the compact range specification for a sweep, in the order it is
// conventionally written: low, high, command template, index expression.
type RunCmds struct {
	Low       int    `yaml:"low"`
	High      int    `yaml:"high"`
	Template  string `yaml:"template"`
	IndexExpr string `yaml:"index_expr"`
}

// Experiment is one complete experiment description. The harness treats it as
// read-only; nothing here is reached through ambient state.
type Experiment struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Executable  string `yaml:"executable"`

	RunCmds       RunCmds  `yaml:"runcmds"`
	ExtraArgs     []string `yaml:"extra_args,omitempty"`
	UseFactors    bool     `yaml:"use_factors,omitempty"`
	ManualFactors [][3]int `yaml:"manual_factors,omitempty"`

	// Where and how the program's timing table is found; owned by the
	// application, opaque to the parser.
	Anchor    string `yaml:"anchor"`
	RowOffset int    `yaml:"row_offset"`
	RowWidth  int    `yaml:"row_width"`

	CSVHeader []string `yaml:"csv_header,omitempty"`

	OutputDir      string `yaml:"output_dir,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Load reads an experiment description from a YAML file and validates it.
func Load(path string) (Experiment, error) {
	var e Experiment
	raw, err := os.ReadFile(path)
	if err != nil {
		return e, fmt.Errorf("%w: reading %s: %v", sweep.ErrConfiguration, path, err)
	}
	if err := yaml.Unmarshal(raw, &e); err != nil {
		return e, fmt.Errorf("%w: parsing %s: %v", sweep.ErrConfiguration, path, err)
	}
	e.ApplyDefaults()
	if err := e.Validate(); err != nil {
		return e, err
	}
	return e, nil
}

// ApplyDefaults fills the optional settings a file may omit.
func (e *Experiment) ApplyDefaults() {
	if e.OutputDir == "" {
		e.OutputDir = DefaultOutputDir
	}
	if e.TimeoutSeconds == 0 {
		e.TimeoutSeconds = int(DefaultTimeout / time.Second)
	}
}

// Validate checks everything that must hold before any run starts. Violations
// are configuration errors: the sweep cannot produce meaningful data at all,
// so they are fatal up front rather than per run.
func (e Experiment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: experiment name is empty", sweep.ErrConfiguration)
	}
	if e.Executable == "" {
		return fmt.Errorf("%w: no executable for %s", sweep.ErrConfiguration, e.Name)
	}
	if e.RunCmds.Template == "" {
		return fmt.Errorf("%w: no command template for %s", sweep.ErrConfiguration, e.Name)
	}
	if e.RunCmds.IndexExpr == "" {
		return fmt.Errorf("%w: no index expression for %s", sweep.ErrConfiguration, e.Name)
	}
	if e.Anchor == "" {
		return fmt.Errorf("%w: no anchor keyword for %s", sweep.ErrConfiguration, e.Name)
	}
	if e.RowOffset < 0 {
		return fmt.Errorf("%w: negative row offset %d", sweep.ErrConfiguration, e.RowOffset)
	}
	if e.RowWidth <= 0 {
		return fmt.Errorf("%w: row width %d, want > 0", sweep.ErrConfiguration, e.RowWidth)
	}
	if len(e.ManualFactors) > 0 && !e.UseFactors {
		return fmt.Errorf("%w: manual factors given but use_factors is false", sweep.ErrConfiguration)
	}
	return e.Sweep().Check()
}

// Sweep is the core's view of this configuration.
func (e Experiment) Sweep() sweep.Spec {
	return sweep.Spec{
		Low:           e.RunCmds.Low,
		High:          e.RunCmds.High,
		Template:      e.RunCmds.Template,
		IndexExpr:     e.RunCmds.IndexExpr,
		ManualFactors: e.ManualFactors,
	}
}

// Table is the parser's view of this configuration.
func (e Experiment) Table() parse.TableSpec {
	return parse.TableSpec{
		Anchor:    e.Anchor,
		RowOffset: e.RowOffset,
		RowWidth:  e.RowWidth,
	}
}

// Timeout is the per-run bound as a duration.
func (e Experiment) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}
