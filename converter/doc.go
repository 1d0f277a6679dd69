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

// Package converter turns the frame-by-frame input recordings of BizHawk and
// FCEUX into the plain-text TAS script format read by the Yuzu emulator.
//
// Conversion is a pure function of the source text and a Config value:
//
//	cfg := converter.DefaultConfig()
//	cfg.Format = converter.FCEUX
//	res, err := converter.Convert(text, cfg)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res)
//
// The Result contains one Frame for every line of the script. The script
// begins with a lead-in of Config.Delay idle frames. The first lead-in frame
// is a KEY_A press if the delay is exactly DefaultDelay or if
// Config.FirstFrameConfirm is set.
//
// When Config.SyncCorrection is set an extra idle frame is inserted before
// every SyncInterval'th frame record. The body of the script is shifted by
// one frame each time this happens.
//
// Reading the source file and writing the script are not the concern of this
// package. See the tasfile package for that.
package converter
