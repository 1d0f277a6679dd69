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

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/logger"
)

// permissions of a newly written script
const scriptPerm = 0o644

// Write text to the destination. The destination is either completely
// replaced or left untouched.
func Write(destination string, text string) (rerr error) {
	dir := filepath.Dir(destination)

	f, err := os.CreateTemp(dir, ".tasconvert-*")
	if err != nil {
		return curated.Errorf(IOError, err)
	}

	// remove the temporary file on any failure
	defer func() {
		if rerr != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return curated.Errorf(IOError, err)
	}

	if err := f.Chmod(scriptPerm); err != nil {
		return curated.Errorf(IOError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(IOError, err)
	}

	if err := os.Rename(f.Name(), destination); err != nil {
		return curated.Errorf(IOError, err)
	}

	logger.Logf(logger.Allow, "tasfile", "wrote %d bytes to %s", len(text), destination)

	return nil
}
