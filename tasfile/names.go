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
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// DefaultScript is the name of the script file when there is nothing better
// to suggest. It is the name Yuzu uses for the first script of player one.
const DefaultScript = "script0-1.txt"

// the suffix added to the source name to make the destination name
const convertedSuffix = "_converted.txt"

// DefaultOutput returns a suggested destination for the source. The
// suggestion is in the same directory as the source, with the extension
// replaced by "_converted.txt". A URL source results in a filename for the
// current directory.
func DefaultOutput(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return DefaultScript
	}

	if isURL(source) {
		u, err := url.Parse(source)
		if err != nil {
			return DefaultScript
		}
		base := path.Base(u.Path)
		if base == "/" || base == "." {
			return DefaultScript
		}
		return strings.TrimSuffix(base, path.Ext(base)) + convertedSuffix
	}

	return strings.TrimSuffix(source, filepath.Ext(source)) + convertedSuffix
}

// ShortName returns the name of the source without any directories or
// extension.
func ShortName(source string) string {
	if isURL(source) {
		if u, err := url.Parse(source); err == nil {
			source = u.Path
		}
		source = path.Base(source)
	} else {
		source = filepath.Base(source)
	}
	return strings.TrimSuffix(source, path.Ext(source))
}
