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

package converter_test

import (
	"testing"

	"github.com/jetsetilly/tasconvert/converter"
	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/test"
)

func TestParseFormat(t *testing.T) {
	for name, expected := range map[string]converter.Format{
		"BizHawk":   converter.BizHawk,
		"bizhawk":   converter.BizHawk,
		"RecorderA": converter.BizHawk,
		"FCEUX":     converter.FCEUX,
		" fceux ":   converter.FCEUX,
		"recorderb": converter.FCEUX,
	} {
		f, err := converter.ParseFormat(name)
		test.ExpectSuccess(t, err, name)
		test.ExpectEquality(t, f, expected, name)
	}

	_, err := converter.ParseFormat("snes9x")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, converter.UnknownFormat))
}

func TestFormatFromFilename(t *testing.T) {
	f, err := converter.FormatFromFilename("smb.fm2", "AUTO")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, converter.FCEUX)

	f, err = converter.FormatFromFilename("SMB.FM2", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, converter.FCEUX)

	f, err = converter.FormatFromFilename("Input Log.txt", "auto")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, converter.BizHawk)

	f, err = converter.FormatFromFilename("smb.bk2", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, converter.BizHawk)

	// requested format wins over the extension
	f, err = converter.FormatFromFilename("smb.fm2", "bizhawk")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, converter.BizHawk)

	_, err = converter.FormatFromFilename("smb.fm2", "mame")
	test.ExpectFailure(t, err)
}

func TestFormatString(t *testing.T) {
	test.ExpectEquality(t, converter.BizHawk.String(), "BizHawk")
	test.ExpectEquality(t, converter.FCEUX.String(), "FCEUX")
}
