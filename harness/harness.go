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
Package harness drives one experiment sweep end to end: expand the range,
factor each rank count when the application decomposes a grid, render the
command, run it, scrape the timing table, record the result. Runs are strictly
sequential; a failed run is recorded with its failure kind and the sweep
continues, since partial results remain valuable.
*/
package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbickel/psweep/config"
	"github.com/hbickel/psweep/logging"
	"github.com/hbickel/psweep/parse"
	"github.com/hbickel/psweep/report"
	"github.com/hbickel/psweep/runner"
	"github.com/hbickel/psweep/sweep"
)

// Harness runs one experiment. Runner is the process-execution boundary;
// tests substitute a stub, deployments may substitute container or MPI
// launchers.
type Harness struct {
	Exp    config.Experiment
	Runner runner.Runner
}

// New builds a harness for exp. A nil r gets the local shell runner with the
// experiment's timeout.
func New(exp config.Experiment, r runner.Runner) *Harness {
	if r == nil {
		r = runner.Local{Timeout: exp.Timeout()}
	}
	return &Harness{Exp: exp, Runner: r}
}

// Run executes the sweep and returns the accumulated report together with
// every per-run error that was isolated along the way. Configuration-level
// problems (bad bounds or expression, misshapen manual factor table, template
// arity) abort before any run with a single error. Cancelling ctx stops
// launching new points; everything recorded so far stays in the report for the
// caller to flush.
func (h *Harness) Run(ctx context.Context) (*report.Report, []error) {
	rep := report.New(h.Exp.Name, h.Exp.Description, h.Exp.CSVHeader)
	spec := h.Exp.Sweep()

	if err := spec.Check(); err != nil {
		return rep, []error{err}
	}
	pts, err := sweep.Expand(spec.Low, spec.High, spec.IndexExpr)
	if err != nil {
		return rep, []error{err}
	}
	// Dry-run render of the first point so an arity mismatch surfaces before
	// anything is launched.
	if len(pts) > 0 {
		var probe *[3]int
		if h.Exp.UseFactors {
			probe = &[3]int{1, 1, pts[0].RankCount}
		}
		if _, err := sweep.BuildCommand(spec.Template, h.Exp.Executable,
			pts[0].RankCount, probe, h.Exp.ExtraArgs); err != nil {
			return rep, []error{err}
		}
	}

	logging.Infof("starting %d runs for %s", len(pts), h.Exp.Name)
	var errs []error
	for i, pt := range pts {
		if ctx.Err() != nil {
			logging.Warning("sweep interrupted, keeping runs recorded so far")
			break
		}
		rec, err := h.runPoint(ctx, i, pt)
		if err != nil {
			logging.Error(err)
			errs = append(errs, err)
		}
		rep.Add(rec)
	}
	return rep, errs
}

// runPoint resolves and executes one sweep point. Whatever happens, the
// returned record describes the attempt; a non-nil error means the record
// carries a failure kind and no timing rows.
func (h *Harness) runPoint(ctx context.Context, i int, pt sweep.Point) (report.Record, error) {
	rec := report.Record{RankCount: pt.RankCount}

	var factors *[3]int
	if h.Exp.UseFactors {
		var manual *[3]int
		if len(h.Exp.ManualFactors) > 0 {
			manual = &h.Exp.ManualFactors[i]
		}
		f, err := sweep.Factor(pt.RankCount, manual)
		if err != nil {
			rec.Error = errorKind(err)
			return rec, fmt.Errorf("point %d (n=%d): %w", i, pt.RankCount, err)
		}
		factors = &f
		rec.Factors = factors
	}

	cmd, err := sweep.BuildCommand(h.Exp.RunCmds.Template, h.Exp.Executable,
		pt.RankCount, factors, h.Exp.ExtraArgs)
	if err != nil {
		rec.Error = errorKind(err)
		return rec, fmt.Errorf("point %d (n=%d): %w", i, pt.RankCount, err)
	}
	rec.Command = cmd

	logging.Info("running: ", cmd)
	res, err := h.Runner.Run(ctx, cmd)
	rec.ExitStatus = res.ExitStatus
	rec.Duration = res.Duration.String()
	if err != nil {
		rec.Error = errorKind(err)
		return rec, fmt.Errorf("point %d: %w", i, err)
	}

	rows, err := parse.ExtractTable(res.Stdout, h.Exp.Table())
	if err != nil {
		rec.Error = errorKind(err)
		return rec, fmt.Errorf("point %d (%s): %w", i, cmd, err)
	}
	rec.Rows = rows
	return rec, nil
}

// errorKind names the failure category recorded in the metadata snapshot.
func errorKind(err error) string {
	switch {
	case errors.Is(err, sweep.ErrConfiguration):
		return "configuration"
	case errors.Is(err, sweep.ErrInvalidFactors):
		return "invalid-factors"
	case errors.Is(err, sweep.ErrNoFactorization):
		return "no-factorization"
	case errors.Is(err, sweep.ErrTemplateMismatch):
		return "template-mismatch"
	case errors.Is(err, runner.ErrTimeout):
		return "timeout"
	case errors.Is(err, parse.ErrAnchorNotFound):
		return "anchor-not-found"
	case errors.Is(err, parse.ErrTruncatedOutput):
		return "truncated-output"
	case errors.Is(err, report.ErrWrite):
		return "write"
	default:
		return "exec"
	}
}
