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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbickel/psweep/sweep"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the expanded run commands without executing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		exp, err := loadExperiment()
		if err != nil {
			return err
		}
		spec := exp.Sweep()
		if err := spec.Check(); err != nil {
			return err
		}
		pts, err := sweep.Expand(spec.Low, spec.High, spec.IndexExpr)
		if err != nil {
			return err
		}
		for i, pt := range pts {
			var factors *[3]int
			if exp.UseFactors {
				var manual *[3]int
				if len(exp.ManualFactors) > 0 {
					manual = &exp.ManualFactors[i]
				}
				f, err := sweep.Factor(pt.RankCount, manual)
				if err != nil {
					return err
				}
				factors = &f
			}
			c, err := sweep.BuildCommand(spec.Template, exp.Executable, pt.RankCount, factors, exp.ExtraArgs)
			if err != nil {
				return err
			}
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to an experiment YAML file")
	renderCmd.Flags().StringVar(&appName, "app", "", "use a built-in application profile")
}
