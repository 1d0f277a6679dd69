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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tasconvert/paths"
	"github.com/jetsetilly/tasconvert/test"
)

func TestLocalPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".tasconvert", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".tasconvert", "foo", "bar", "baz"))

	// sub-path has been created
	fi, err := os.Stat(filepath.Join(".tasconvert", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".tasconvert", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".tasconvert")
}

func TestConfigPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	cnf := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cnf)
	t.Setenv("HOME", cnf)
	t.Setenv("AppData", cnf)

	base, err := os.UserConfigDir()
	test.DemandSuccess(t, err)

	pth, err := paths.ResourcePath("", "preferences.json")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "tasconvert", "preferences.json"))

	fi, err := os.Stat(filepath.Join(base, "tasconvert"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}
