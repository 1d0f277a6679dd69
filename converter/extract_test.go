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
	"fmt"
	"testing"

	"github.com/jetsetilly/tasconvert/converter"
	"github.com/jetsetilly/tasconvert/test"
)

func TestExtractBizHawk(t *testing.T) {
	src := "[Input]\r\n" +
		"LogKey:#Up|Down|Left|Right|Start|Select|B|A|\r\n" +
		"|..|U.......|\r\n" +
		"   |..|.D......|   \r\n" +
		"|..|..L.....|extra|\r\n" +
		"..|...R....|\r\n" +
		"\r\n" +
		"|..|    ....S...   |\r\n" +
		"[/Input]\r\n"

	records := converter.Extract(src, converter.BizHawk)
	test.ExpectEquality(t, fmt.Sprintf("%q", records), `["U......." ".D......" "....S..."]`)
}

func TestExtractFCEUX(t *testing.T) {
	src := "version 3\n" +
		"comment author me\n" +
		"|0|R.......|||\n" +
		"|1|........|||\n" +
		"|0|  .L..  |\n" +
		"|0|\n" +
		"subtitle 100 |not|a|frame\n"

	records := converter.Extract(src, converter.FCEUX)
	test.ExpectEquality(t, fmt.Sprintf("%q", records), `["R......." "........" ".L.."]`)

	// the same text read as a BizHawk log only has the one line with exactly
	// three separators
	records = converter.Extract(src, converter.BizHawk)
	test.ExpectEquality(t, fmt.Sprintf("%q", records), `[".L.."]`)
}

func TestDecodeFCEUXUnknownCharacters(t *testing.T) {
	clean := converter.Decode("AUB", converter.FCEUX)
	noisy := converter.Decode("xA.U?1Bz", converter.FCEUX)
	test.ExpectEquality(t, fmt.Sprint(noisy), fmt.Sprint(clean))
	test.ExpectEquality(t, fmt.Sprint(clean), "[KEY_A KEY_DUP KEY_B]")

	// lower case characters are not button characters
	test.ExpectEquality(t, len(converter.Decode("abstudlr", converter.FCEUX)), 0)
}

func TestDecodeDuplicates(t *testing.T) {
	// duplicates are passed through as they are found
	test.ExpectEquality(t, fmt.Sprint(converter.Decode("AA", converter.FCEUX)), "[KEY_A KEY_A]")
}

func TestDecodeBizHawk(t *testing.T) {
	test.ExpectEquality(t, len(converter.Decode("........", converter.BizHawk)), 0)
	test.ExpectEquality(t, len(converter.Decode("", converter.BizHawk)), 0)

	// columns beyond the eighth have no button
	test.ExpectEquality(t, fmt.Sprint(converter.Decode(".......AXXXX", converter.BizHawk)), "[KEY_A]")

	// columns are counted in characters
	test.ExpectEquality(t, fmt.Sprint(converter.Decode("é......A", converter.BizHawk)), "[KEY_DUP KEY_A]")
}

func TestFrameString(t *testing.T) {
	f := converter.Frame{Index: 7}
	test.ExpectEquality(t, f.String(), "007 NONE 0;0 0;0")

	f = converter.Frame{Index: 12345, Buttons: []converter.Button{converter.KeyStart, converter.KeySelect}}
	test.ExpectEquality(t, f.String(), "12345 KEY_START;KEY_SELECT 0;0 0;0")
}
