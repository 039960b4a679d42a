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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandIdentity(t *testing.T) {
	pts, err := Expand(4, 10, "index")
	require.Nil(t, err)
	require.Len(t, pts, 7)
	for i, pt := range pts {
		assert.Equal(t, 4+i, pt.Index)
		assert.Equal(t, 4+i, pt.RankCount)
	}
}

func TestExpandShifted(t *testing.T) {
	pts, err := Expand(0, 5, "index + 1")
	require.Nil(t, err)
	require.Len(t, pts, 6)
	for i, pt := range pts {
		assert.Equal(t, i+1, pt.RankCount)
	}
}

func TestExpandNidxSpelling(t *testing.T) {
	// Both spellings of the iteration index are bound.
	pts, err := Expand(0, 2, "nidx + 1")
	require.Nil(t, err)
	assert.Equal(t, []Point{{0, 1}, {1, 2}, {2, 3}}, pts)
}

func TestExpandArithmetic(t *testing.T) {
	pts, err := Expand(1, 3, "2 * nidx")
	require.Nil(t, err)
	assert.Equal(t, []Point{{1, 2}, {2, 4}, {3, 6}}, pts)
}

func TestExpandBadBounds(t *testing.T) {
	_, err := Expand(10, 4, "index")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestExpandBadExpression(t *testing.T) {
	_, err := Expand(0, 2, "nidx +")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestExpandNegativeResult(t *testing.T) {
	_, err := Expand(0, 2, "nidx - 5")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestExpandNonIntegerResult(t *testing.T) {
	_, err := Expand(0, 2, "nidx / 2.0 + 0.25")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSpecCheckManualFactorShape(t *testing.T) {
	s := Spec{Low: 0, High: 2, IndexExpr: "nidx + 1",
		ManualFactors: [][3]int{{1, 1, 1}, {1, 1, 2}}}
	assert.ErrorIs(t, s.Check(), ErrConfiguration)

	s.ManualFactors = append(s.ManualFactors, [3]int{1, 1, 3})
	assert.Nil(t, s.Check())
}
