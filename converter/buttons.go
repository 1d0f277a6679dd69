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

// Button is the name of a button in the target script.
type Button string

// The target button vocabulary.
const (
	KeyUp     Button = "KEY_DUP"
	KeyDown   Button = "KEY_DDOWN"
	KeyLeft   Button = "KEY_DLEFT"
	KeyRight  Button = "KEY_DRIGHT"
	KeyStart  Button = "KEY_START"
	KeySelect Button = "KEY_SELECT"
	KeyB      Button = "KEY_B"
	KeyA      Button = "KEY_A"
)

// KeyConfirm is the button pressed on the first lead-in frame.
const KeyConfirm = KeyA

// the column layout of a BizHawk NES input log.
var bizhawkColumns = map[int]Button{
	0: KeyUp,
	1: KeyDown,
	2: KeyLeft,
	3: KeyRight,
	4: KeyStart,
	5: KeySelect,
	6: KeyB,
	7: KeyA,
}

// the button characters of an FCEUX movie.
var fceuxCharacters = map[rune]Button{
	'A': KeyA,
	'B': KeyB,
	'S': KeySelect,
	'T': KeyStart,
	'U': KeyUp,
	'D': KeyDown,
	'L': KeyLeft,
	'R': KeyRight,
}

// unpressed column in a BizHawk input log.
const bizhawkUnpressed = '.'

// Decode the payload of a single frame record. Buttons are returned in the
// order they appear in the payload. Nothing is de-duplicated and characters
// that have no meaning in the format are ignored.
func Decode(payload string, format Format) []Button {
	buttons := make([]Button, 0, len(bizhawkColumns))

	switch format {
	case FCEUX:
		for _, c := range payload {
			if b, ok := fceuxCharacters[c]; ok {
				buttons = append(buttons, b)
			}
		}

	default:
		// position is counted in characters, not bytes
		var col int
		for _, c := range payload {
			if c != bizhawkUnpressed {
				if b, ok := bizhawkColumns[col]; ok {
					buttons = append(buttons, b)
				}
			}
			col++
		}
	}

	return buttons
}
