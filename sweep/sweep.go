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
Package sweep turns a compact range specification into the ordered sequence of
run parameters for an experiment: rank counts, optional 3-D decomposition
factors, and the rendered command line for each run.
*/
package sweep

import "fmt"

// Spec describes one experiment sweep. Low and High are inclusive bounds on
// the iteration index; IndexExpr maps each index to a rank count.
// ManualFactors, when present, is positionally aligned to the expanded range
// and used in place of the automatic factor search.
type Spec struct {
	Low           int
	High          int
	Template      string
	IndexExpr     string
	ManualFactors [][3]int
}

// Point is one element of the expanded sweep: the iteration index and the
// rank count the index expression produced for it.
type Point struct {
	Index     int
	RankCount int
}

// RunParameters is one fully resolved sweep point, ready to hand to the
// process-execution boundary. Factors is nil for applications that do not
// decompose a structured grid.
type RunParameters struct {
	RankCount int
	Factors   *[3]int
	Command   string
}

// Check validates the parts of the spec that must hold before any run starts:
// the bounds, the index expression over the full range, and the shape of the
// manual factor table. Per-point factor products are checked later, when the
// point is reached, so one bad triple does not forfeit the whole sweep.
func (s Spec) Check() error {
	pts, err := Expand(s.Low, s.High, s.IndexExpr)
	if err != nil {
		return err
	}
	if len(s.ManualFactors) > 0 && len(s.ManualFactors) != len(pts) {
		return fmt.Errorf("%w: manual factor table has %d entries, sweep has %d points",
			ErrConfiguration, len(s.ManualFactors), len(pts))
	}
	return nil
}
