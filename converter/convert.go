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
	"fmt"
	"strings"
)

// the analog sticks are never moved.
const sticks = "0;0 0;0"

// noButtons is written in place of an empty button list.
const noButtons = "NONE"

// Frame is a single line of the target script.
type Frame struct {
	Index   int
	Buttons []Button
}

// String renders the frame in the Yuzu script format:
//
//	<index> <buttons> 0;0 0;0
//
// The index is padded to at least three digits.
func (f Frame) String() string {
	btns := noButtons
	if len(f.Buttons) > 0 {
		s := make([]string, len(f.Buttons))
		for i, b := range f.Buttons {
			s[i] = string(b)
		}
		btns = strings.Join(s, ";")
	}
	return fmt.Sprintf("%03d %s %s", f.Index, btns, sticks)
}

// Result of a call to Convert().
type Result struct {
	Frames []Frame

	// number of frame records extracted from the source
	Records int

	// number of sync correction frames inserted into the body
	Inserted int
}

// Lines returns every frame rendered as a line of the target script.
func (res Result) Lines() []string {
	l := make([]string, len(res.Frames))
	for i, f := range res.Frames {
		l[i] = f.String()
	}
	return l
}

// String returns the complete script. Lines are separated by a single newline
// and there is no newline after the final line.
func (res Result) String() string {
	return strings.Join(res.Lines(), "\n")
}

// Convert the source text into a Yuzu script.
func Convert(text string, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	records := Extract(text, cfg.Format)

	res := Result{
		Frames:  make([]Frame, 0, cfg.Delay+len(records)),
		Records: len(records),
	}

	// lead-in
	for i := 0; i < cfg.Delay; i++ {
		f := Frame{Index: i}
		if i == 0 && cfg.confirmFirstFrame() {
			f.Buttons = []Button{KeyConfirm}
		}
		res.Frames = append(res.Frames, f)
	}

	idx := cfg.Delay
	inserted := 0

	for _, rec := range records {
		if cfg.SyncCorrection && (inserted+1)%cfg.SyncInterval == 0 {
			res.Frames = append(res.Frames, Frame{Index: idx})
			res.Inserted++
			idx++
			inserted = 0
		}
		inserted++

		res.Frames = append(res.Frames, Frame{
			Index:   idx,
			Buttons: Decode(rec, cfg.Format),
		})
		idx++
	}

	return res, nil
}
