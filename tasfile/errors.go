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

package tasfile

// Sentinel error patterns returned by the tasfile package.
const (
	// a source or destination path is empty. the argument is either "source"
	// or "destination"
	MissingPath = "missing path: %s path not specified"

	// the source cannot be read or the destination cannot be written. the
	// argument is the underlying error, which can be reached with errors.Is()
	IOError = "io error: %v"
)
