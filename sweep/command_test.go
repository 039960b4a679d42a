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

func TestBuildCommandRankOnly(t *testing.T) {
	c, err := BuildCommand("srun -n %n", "/AMG/test/amg", 4, nil, nil)
	require.Nil(t, err)
	assert.Equal(t, "srun -n 4 /AMG/test/amg", c)
}

func TestBuildCommandExtraArgs(t *testing.T) {
	c, err := BuildCommand("srun -n %n", "/AMG/test/amg", 2, nil,
		[]string{"-problem", "2"})
	require.Nil(t, err)
	assert.Equal(t, "srun -n 2 /AMG/test/amg -problem 2", c)
}

func TestBuildCommandFactors(t *testing.T) {
	f := [3]int{1, 2, 3}
	c, err := BuildCommand("mpirun -n %n %e -pex %px -pey %py -pez %pz",
		"halo3d", 6, &f, []string{"-nx", "100"})
	require.Nil(t, err)
	assert.Equal(t, "mpirun -n 6 halo3d -pex 1 -pey 2 -pez 3 -nx 100", c)
}

func TestBuildCommandIdempotent(t *testing.T) {
	f := [3]int{2, 2, 2}
	a, err := BuildCommand("mpirun -n %n %e -pex %px -pey %py -pez %pz", "x", 8, &f, nil)
	require.Nil(t, err)
	b, err := BuildCommand("mpirun -n %n %e -pex %px -pey %py -pez %pz", "x", 8, &f, nil)
	require.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestBuildCommandMissingRankToken(t *testing.T) {
	_, err := BuildCommand("srun -n 4", "amg", 4, nil, nil)
	assert.ErrorIs(t, err, ErrTemplateMismatch)
}

func TestBuildCommandFactorTokensWithoutFactors(t *testing.T) {
	_, err := BuildCommand("mpirun -n %n -pex %px", "halo3d", 4, nil, nil)
	assert.ErrorIs(t, err, ErrTemplateMismatch)
}

func TestBuildCommandFactorsWithoutAllTokens(t *testing.T) {
	f := [3]int{1, 2, 2}
	_, err := BuildCommand("mpirun -n %n -pex %px -pey %py", "halo3d", 4, &f, nil)
	assert.ErrorIs(t, err, ErrTemplateMismatch)
}

func TestBuildCommandNoExecutable(t *testing.T) {
	// Some templates carry the full command line themselves.
	c, err := BuildCommand("srun -n %n ./wrapper.sh", "", 3, nil, nil)
	require.Nil(t, err)
	assert.Equal(t, "srun -n 3 ./wrapper.sh", c)
}
