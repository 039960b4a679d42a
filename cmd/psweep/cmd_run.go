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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hbickel/psweep/config"
	"github.com/hbickel/psweep/harness"
	"github.com/hbickel/psweep/logging"
	"github.com/hbickel/psweep/report"
)

var (
	cfgPath    string
	appName    string
	outputDir  string
	timeoutSec int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute an experiment sweep and write its report",
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := loadExperiment()
		if err != nil {
			return err
		}
		if outputDir != "" {
			exp.OutputDir = outputDir
		}
		if timeoutSec > 0 {
			exp.TimeoutSeconds = timeoutSec
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rep, errs := harness.New(exp, nil).Run(ctx)
		// Flush whatever was recorded on every exit path, interrupt included;
		// partial results are still results.
		if ferr := flush(rep, exp.OutputDir); ferr != nil {
			errs = append(errs, ferr)
		}

		if len(errs) > 0 {
			for _, e := range errs {
				logging.Error(e)
			}
			return fmt.Errorf("sweep finished with %d failure(s)", len(errs))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to an experiment YAML file")
	runCmd.Flags().StringVar(&appName, "app", "", "use a built-in application profile (see 'psweep apps')")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the report (overrides config)")
	runCmd.Flags().IntVar(&timeoutSec, "timeout", 0, "per-run timeout in seconds (overrides config)")
}

func loadExperiment() (config.Experiment, error) {
	switch {
	case cfgPath != "" && appName != "":
		return config.Experiment{}, fmt.Errorf("--config and --app are mutually exclusive")
	case cfgPath != "":
		return config.Load(cfgPath)
	case appName != "":
		return config.App(appName)
	default:
		return config.Experiment{}, fmt.Errorf("either --config or --app is required")
	}
}

func flush(rep *report.Report, dir string) error {
	if len(rep.Records()) == 0 {
		logging.Warning("nothing recorded, no report written")
		return nil
	}
	rep.Emit(os.Stdout)
	if err := rep.Flush(dir); err != nil {
		return err
	}
	logging.Infof("report written to %s", rep.Dirname())
	return nil
}
