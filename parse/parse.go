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
Package parse extracts fixed-shape timing tables from unstructured program
output. The parser is positional and textual: it knows nothing about any
application's table shape, only the anchor/offset/width contract each
application's configuration supplies.
*/
package parse

import (
	"fmt"
	"strings"
)

var ErrAnchorNotFound = fmt.Errorf("anchor keyword not found in output")
var ErrTruncatedOutput = fmt.Errorf("output ended before the timing table")

// Row is one line of a timing table, tokenized by whitespace. Field semantics
// are application-specific and opaque here; only positional extraction is
// guaranteed.
type Row []string

// TableSpec locates a timing table inside raw output: the first line
// containing Anchor (case-sensitive substring match) plus RowOffset is the
// first table row, and the table is RowWidth contiguous lines.
type TableSpec struct {
	Anchor    string
	RowOffset int
	RowWidth  int
}

// ExtractTable scans raw output for the table described by ts and returns one
// Row per table line. A missing anchor is ErrAnchorNotFound; a table slice
// that runs past the end of the output, or a blank line inside it, is
// ErrTruncatedOutput (the program stopped producing rows early, which is
// reported rather than silently truncated).
func ExtractTable(raw string, ts TableSpec) ([]Row, error) {
	lines := strings.Split(raw, "\n")
	anchor := -1
	for i, line := range lines {
		if strings.Contains(line, ts.Anchor) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAnchorNotFound, ts.Anchor)
	}

	start := anchor + ts.RowOffset
	end := start + ts.RowWidth
	if start < 0 || end > len(lines) {
		return nil, fmt.Errorf("%w: want lines [%d, %d), have %d",
			ErrTruncatedOutput, start, end, len(lines))
	}

	rows := make([]Row, 0, ts.RowWidth)
	for i, line := range lines[start:end] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: blank row at line %d", ErrTruncatedOutput, start+i)
		}
		rows = append(rows, fields)
	}
	return rows, nil
}
