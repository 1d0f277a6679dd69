// This file is part of tasconvert.
//
// tasconvert is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tasconvert is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tasconvert.  If not, see <https://www.gnu.org/licenses/>.

package converter

import (
	"strings"
)

const fieldSep = "|"

// the number of field separators in a frame line. BizHawk lines must have
// exactly this many, FCEUX lines may have more
const numSeps = 3

// the field holding the button state of a frame line
const fieldButtons = 2

// isFrameLine returns true if the line is in the shape of a frame record for
// the format.
func isFrameLine(line string, format Format) bool {
	if !strings.HasPrefix(strings.TrimSpace(line), fieldSep) {
		return false
	}

	n := strings.Count(line, fieldSep)
	if format == FCEUX {
		return n >= numSeps
	}
	return n == numSeps
}

// Extract returns the button payload of every frame line in the source text,
// in the order they appear. Lines that are not frame lines (headers,
// comments, subtitles, blank lines) are dropped.
func Extract(text string, format Format) []string {
	var records []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !isFrameLine(line, format) {
			continue
		}

		toks := strings.Split(line, fieldSep)
		if len(toks) <= fieldButtons {
			continue
		}

		records = append(records, strings.TrimSpace(toks[fieldButtons]))
	}

	return records
}
