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


// Package version reports the application name, the version number and the
// VCS revision that the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used in the version string and in the name of the
// resource directory.
const ApplicationName = "tasconvert"

// number is set with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/tasconvert/version.number=v0.1.0"
var number string

var revision string
var version string

// Version returns the version string and the VCS revision. The boolean is
// true if this is a numbered release.
//
// A version of "unreleased" means the binary was built from a VCS checkout
// without a version number. "local" means there is no VCS information either,
// as happens with go run.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the full version line printed by VERSION mode.
func String() string {
	v, r, _ := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
