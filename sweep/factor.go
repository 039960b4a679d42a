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

import "fmt"

// Factor decomposes a rank count into (px, py, pz) with px*py*pz == n for
// structured-grid applications that split a 3-D domain along three axes.
//
// When manual is given it is validated and returned verbatim. Otherwise the
// search is exhaustive over divisor triples and picks the most cube-like one:
// minimal max-min spread, ties broken by the lexicographically smallest triple
// when sorted ascending. The result is assigned ascending, px <= py <= pz.
// Rank counts are tens at most in practice, so the search cost is irrelevant
// next to the runs it parameterizes.
func Factor(n int, manual *[3]int) ([3]int, error) {
	if manual != nil {
		m := *manual
		if m[0] <= 0 || m[1] <= 0 || m[2] <= 0 {
			return [3]int{}, fmt.Errorf("%w: %v contains a non-positive factor", ErrInvalidFactors, m)
		}
		if m[0]*m[1]*m[2] != n {
			return [3]int{}, fmt.Errorf("%w: %v has product %d, want %d",
				ErrInvalidFactors, m, m[0]*m[1]*m[2], n)
		}
		return m, nil
	}
	if n <= 0 {
		return [3]int{}, fmt.Errorf("%w: rank count %d", ErrNoFactorization, n)
	}

	// Enumerate sorted triples px <= py <= pz only; every factorization has
	// exactly one sorted form, and (1, 1, n) guarantees the search is
	// non-empty.
	var best [3]int
	found := false
	for px := 1; px*px*px <= n; px++ {
		if n%px != 0 {
			continue
		}
		rest := n / px
		for py := px; py*py <= rest; py++ {
			if rest%py != 0 {
				continue
			}
			cand := [3]int{px, py, rest / py}
			if !found || better(cand, best) {
				best = cand
				found = true
			}
		}
	}
	return best, nil
}

func better(a, b [3]int) bool {
	sa, sb := a[2]-a[0], b[2]-b[0]
	if sa != sb {
		return sa < sb
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
