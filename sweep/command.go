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
	"strconv"
	"strings"
)

// Substitution tokens recognized in command templates. %n is mandatory; the
// factor tokens must all be present when factors are supplied and absent when
// they are not. %e places the executable inside the template; without it the
// executable is appended after the rendered launch prefix.
const (
	TokenRank = "%n"
	TokenExec = "%e"
	TokenPx   = "%px"
	TokenPy   = "%py"
	TokenPz   = "%pz"
)

// BuildCommand renders the final shell command for one run: the template with
// its tokens substituted, the executable, and the static trailing arguments
// carried unmodified from configuration. Pure function of its inputs.
func BuildCommand(template, executable string, rank int, factors *[3]int, extraArgs []string) (string, error) {
	if !strings.Contains(template, TokenRank) {
		return "", fmt.Errorf("%w: template %q has no %s token", ErrTemplateMismatch, template, TokenRank)
	}
	hasFactorTok := strings.Contains(template, TokenPx) ||
		strings.Contains(template, TokenPy) ||
		strings.Contains(template, TokenPz)
	if factors == nil && hasFactorTok {
		return "", fmt.Errorf("%w: template %q wants factors but none were supplied",
			ErrTemplateMismatch, template)
	}
	if factors != nil {
		for _, tok := range []string{TokenPx, TokenPy, TokenPz} {
			if !strings.Contains(template, tok) {
				return "", fmt.Errorf("%w: factor-aware template %q is missing %s",
					ErrTemplateMismatch, template, tok)
			}
		}
	}

	cmd := template
	if factors != nil {
		cmd = strings.ReplaceAll(cmd, TokenPx, strconv.Itoa(factors[0]))
		cmd = strings.ReplaceAll(cmd, TokenPy, strconv.Itoa(factors[1]))
		cmd = strings.ReplaceAll(cmd, TokenPz, strconv.Itoa(factors[2]))
	}
	cmd = strings.ReplaceAll(cmd, TokenRank, strconv.Itoa(rank))

	if executable != "" {
		if strings.Contains(cmd, TokenExec) {
			cmd = strings.ReplaceAll(cmd, TokenExec, executable)
		} else {
			cmd = cmd + " " + executable
		}
	}
	if len(extraArgs) > 0 {
		cmd = cmd + " " + strings.Join(extraArgs, " ")
	}
	return strings.TrimSpace(cmd), nil
}
