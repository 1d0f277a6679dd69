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
	"path/filepath"
	"strings"

	"github.com/jetsetilly/tasconvert/curated"
)

// Format identifies the program that produced a source recording.
type Format int

// List of supported formats.
const (
	// BizHawk input logs use fixed-width button columns. A '.' in a column
	// means the button is not pressed, any other character means that it is.
	BizHawk Format = iota

	// FCEUX movies list the pressed buttons by character. Characters that
	// don't name a button are ignored.
	FCEUX
)

// AutoFormat is the format name that requests selection by file extension.
const AutoFormat = "AUTO"

// UnknownFormat is the error pattern returned by ParseFormat.
const UnknownFormat = "converter: unknown format (%s)"

func (f Format) String() string {
	switch f {
	case BizHawk:
		return "BizHawk"
	case FCEUX:
		return "FCEUX"
	}
	return "unknown"
}

// ParseFormat returns the Format with the specified name. Names are not case
// sensitive. RecorderA and RecorderB are accepted as alternative names for
// BizHawk and FCEUX.
func ParseFormat(name string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BIZHAWK", "RECORDERA":
		return BizHawk, nil
	case "FCEUX", "RECORDERB":
		return FCEUX, nil
	}
	return BizHawk, curated.Errorf(UnknownFormat, name)
}

// FormatFromFilename returns the requested format unless it is AutoFormat or
// the empty string, in which case the filename extension decides. Files with
// the FCEUX movie extension (.fm2) are FCEUX recordings; everything else is
// assumed to be a BizHawk input log.
func FormatFromFilename(filename string, requested string) (Format, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" && !strings.EqualFold(requested, AutoFormat) {
		return ParseFormat(requested)
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".FM2":
		return FCEUX, nil
	}

	return BizHawk, nil
}
