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


// Package watcher converts a source recording every time it changes on disk.
// This allows a TAS to be edited in the recording tool while the converted
// script is kept up to date.
//
// The directory containing the source is watched rather than the file itself.
// Many editors save a file by writing a new file and renaming it over the old
// one, which a watch on the file alone would not survive.
//
// Events arriving in quick succession are treated as one change. Conversions
// are run serially in the goroutine that called Watch().
package watcher
