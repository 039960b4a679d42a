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

package sweep

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expand evaluates indexExpr for every index in [low, high] and returns the
// points in ascending index order. The expression sees the iteration index as
// both "nidx" and "index"; it must yield a non-negative integer for every
// index in range.
func Expand(low, high int, indexExpr string) ([]Point, error) {
	if low > high {
		return nil, fmt.Errorf("%w: low %d > high %d", ErrConfiguration, low, high)
	}
	prog, err := expr.Compile(indexExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad index expression %q: %v", ErrConfiguration, indexExpr, err)
	}
	pts := make([]Point, 0, high-low+1)
	for i := low; i <= high; i++ {
		n, err := evalIndex(prog, i)
		if err != nil {
			return nil, fmt.Errorf("%w: expression %q at index %d: %v", ErrConfiguration, indexExpr, i, err)
		}
		pts = append(pts, Point{Index: i, RankCount: n})
	}
	return pts, nil
}

func evalIndex(prog *vm.Program, idx int) (int, error) {
	out, err := expr.Run(prog, map[string]interface{}{
		"nidx":  idx,
		"index": idx,
	})
	if err != nil {
		return 0, err
	}
	var n int
	switch v := out.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("result %v is not an integer", v)
		}
		n = int(v)
	default:
		return 0, fmt.Errorf("result %v (%T) is not an integer", out, out)
	}
	if n < 0 {
		return 0, fmt.Errorf("result %d is negative", n)
	}
	return n, nil
}
