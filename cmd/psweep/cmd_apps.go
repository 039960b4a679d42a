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
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hbickel/psweep/config"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List the built-in application profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"profile", "executable", "description"})
		for _, name := range config.AppNames() {
			e, err := config.App(name)
			if err != nil {
				return err
			}
			t.AppendRow(table.Row{name, e.Executable, e.Description})
		}
		t.Render()
		return nil
	},
}
