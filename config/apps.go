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
	"fmt"
	"sort"

	"github.com/hbickel/psweep/sweep"
)

// Built-in profiles for the proxy applications the harness is commonly run
// against. A profile is a complete Experiment with the conventional install
// paths and table shapes; a config file normally starts from one of these and
// overrides the paths. Values here are defaults, not contracts: every field
// can be overridden per experiment.
var apps = map[string]Experiment{
	"amg": {
		Name:        "AMG",
		Description: "parallel algebraic multigrid solver",
		Executable:  "/AMG/test/amg",
		RunCmds:     RunCmds{Low: 0, High: 2, Template: "srun -n %n", IndexExpr: "nidx + 1"},
		ExtraArgs:   []string{"-problem", "2", "-n", "96", "96", "96"},
		Anchor:      "Figure of Merit",
		RowOffset:   0,
		RowWidth:    1,
	},
	"branson": {
		Name:        "branson",
		Description: "Monte Carlo transport mini-app",
		Executable:  "~/branson/BRANSON",
		RunCmds:     RunCmds{Low: 4, High: 6, Template: "mpiexec -n %n", IndexExpr: "nidx"},
		ExtraArgs:   []string{"./experiments/cube_decomp_test.xml"},
		Anchor:      "Total cells requested",
		RowOffset:   0,
		RowWidth:    5,
	},
	"ember": {
		Name:        "ember",
		Description: "Ember communication pattern library (halo3d)",
		Executable:  "~/ember/mpi/halo3d/halo3d",
		RunCmds: RunCmds{
			Low:       4,
			High:      6,
			Template:  "mpirun -n %n %e -pex %px -pey %py -pez %pz",
			IndexExpr: "nidx",
		},
		ExtraArgs:  []string{"-nx", "100", "-ny", "100", "-nz", "100"},
		UseFactors: true,
		Anchor:     "# Time KBytesXchng/Rank-Max MB/S/Rank",
		RowOffset:  1,
		RowWidth:   1,
		CSVHeader:  []string{"time", "kbytes_xchng_rank_max", "mb_s_rank"},
	},
	"imb": {
		Name:        "IMB",
		Description: "Intel MPI Benchmarks suite (PingPong)",
		Executable:  "~/mpi-benchmarks/IMB-MPI1",
		RunCmds:     RunCmds{Low: 2, High: 2, Template: "mpiexec -n %n", IndexExpr: "nidx"},
		ExtraArgs:   []string{"PingPong"},
		Anchor:      "#bytes #repetitions",
		RowOffset:   1,
		RowWidth:    24,
		CSVHeader:   []string{"bytes", "repetitions", "t_usec", "mbytes_sec"},
	},
	"laghos": {
		Name:        "laghos",
		Description: "high-order Lagrangian hydrodynamics mini-app",
		Executable:  "/laghos/laghos",
		RunCmds:     RunCmds{Low: 0, High: 2, Template: "srun -n %n", IndexExpr: "nidx + 1"},
		Anchor:      "CG (H1) total time",
		RowOffset:   0,
		RowWidth:    2,
	},
	"miniamr": {
		Name:        "miniAMR",
		Description: "adaptive mesh refinement mini-app",
		Executable:  "/miniAMR/ref/miniAMR.x",
		RunCmds:     RunCmds{Low: 0, High: 2, Template: "srun -n %n", IndexExpr: "nidx + 1"},
		Anchor:      "CG (H1) total time",
		RowOffset:   0,
		RowWidth:    2,
	},
	"pennant": {
		Name:        "pennant",
		Description: "unstructured mesh staggered-grid hydrodynamics",
		Executable:  "/PENNANT/pennant",
		RunCmds:     RunCmds{Low: 0, High: 2, Template: "mpirun -n %n", IndexExpr: "nidx + 1"},
		ExtraArgs:   []string{"./experiments/input.txt"},
		Anchor:      "hydro cycle run time",
		RowOffset:   0,
		RowWidth:    1,
	},
	"snap": {
		Name:        "snap",
		Description: "SN Application Proxy",
		Executable:  "~/SNAP_build/src/gsnap",
		RunCmds:     RunCmds{Low: 4, High: 6, Template: "mpiexec -n %n", IndexExpr: "nidx"},
		ExtraArgs:   []string{"./experiments/input", "./experiments/output"},
		Anchor:      "Timing Summary",
		RowOffset:   3,
		RowWidth:    14,
	},
	"xsbench": {
		Name:        "XSBench",
		Description: "Monte Carlo macroscopic cross section lookup kernel",
		Executable:  "/XSBench/src/XSBench",
		RunCmds:     RunCmds{Low: 0, High: 2, Template: "srun -n %n", IndexExpr: "nidx + 1"},
		Anchor:      "RESULTS",
		RowOffset:   1,
		RowWidth:    5,
	},
}

// AppNames lists the built-in profiles in sorted order.
func AppNames() []string {
	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// App returns the built-in profile for name with defaults applied.
func App(name string) (Experiment, error) {
	e, ok := apps[name]
	if !ok {
		return Experiment{}, fmt.Errorf("%w: unknown application %q (have %v)",
			sweep.ErrConfiguration, name, AppNames())
	}
	e.ApplyDefaults()
	return e, nil
}
