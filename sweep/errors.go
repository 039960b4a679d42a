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

var ErrConfiguration = fmt.Errorf("invalid sweep configuration")
var ErrInvalidFactors = fmt.Errorf("manual factors do not match rank count")
var ErrNoFactorization = fmt.Errorf("rank count has no factorization")
var ErrTemplateMismatch = fmt.Errorf("command template arity mismatch")
