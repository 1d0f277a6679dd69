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

// Package tasfile reads input recordings from disk and writes converted
// scripts back to disk. It is the boundary between the converter package,
// which does no I/O, and the outside world.
//
// Source recordings can be:
//
//	plain text files (BizHawk "Input Log.txt" or FCEUX .fm2)
//	BizHawk .bk2 movies, which are zip archives containing an input log
//	http:// or https:// URLs of either of the above
//
// Text is decoded according to its byte order mark. Files without a BOM are
// assumed to be UTF-8.
//
// Scripts are written to a temporary file in the destination directory which
// is then renamed. A failed write never leaves a partial script behind.
//
// ConvertFile() is the usual entry point:
//
//	sum, err := tasfile.ConvertFile("smb.fm2", "script0-1.txt", cfg)
//	if err != nil {
//		if curated.Is(err, tasfile.MissingPath) {
//			...
//		}
//		return err
//	}
//	fmt.Println(sum)
package tasfile
