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
Package runner is the process-execution boundary of the harness. The core only
needs the Runner interface; Local satisfies it by running the command through a
shell, but launchers that wrap containers or MPI front-ends can be substituted
without the core noticing.
*/
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// TimeoutExitStatus is the sentinel exit status recorded for a run that was
// killed when its timeout elapsed.
const TimeoutExitStatus = -1

var ErrTimeout = fmt.Errorf("run timed out")

// Result is the captured outcome of one run of the target program.
type Result struct {
	Stdout     string
	ExitStatus int
	Duration   time.Duration
}

// Runner executes one rendered command and blocks until it terminates or its
// timeout elapses.
type Runner interface {
	Run(ctx context.Context, command string) (Result, error)
}

// Local runs commands on the local machine through "sh -c". A zero Timeout
// means the run may block indefinitely.
type Local struct {
	Timeout time.Duration
}

// Run executes command, capturing stdout and stderr interleaved. A non-zero
// exit from the target is not an error here: the result carries the status and
// whatever output was produced, since that output may still hold a usable
// timing table. Timeouts return ErrTimeout with the sentinel status.
func (l Local) Run(ctx context.Context, command string) (Result, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   out.String(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		res.ExitStatus = TimeoutExitStatus
		return res, fmt.Errorf("%w after %v: %s", ErrTimeout, l.Timeout, command)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitStatus = exitErr.ExitCode()
			return res, nil
		}
		res.ExitStatus = TimeoutExitStatus
		return res, fmt.Errorf("running %q: %w", command, err)
	}
	return res, nil
}
