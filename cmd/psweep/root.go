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
psweep runs parameterized benchmark sweeps of HPC proxy applications and
aggregates the scraped timing data into CSV reports.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/hbickel/psweep/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var debug bool

var rootCmd = &cobra.Command{
	Use:   "psweep",
	Short: "Benchmark sweeps for HPC proxy applications",
	Long: "psweep expands a compact range specification into a series of runs of a\n" +
		"target program, scrapes the timing table from each run's output, and\n" +
		"aggregates the results into a durable CSV report.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logging.Init(zapcore.DebugLevel)
		}
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(appsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
