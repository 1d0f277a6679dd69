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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/prefs"
	"github.com/jetsetilly/tasconvert/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "{\n  \"test\": true,\n  \"testB\": false,\n  \"testC\": true\n}\n")

	test.ExpectFailure(t, v.Set(1))
}

func TestInt(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "{\n  \"number\": 10,\n  \"numberB\": 99\n}\n")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestNested(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var delay prefs.Int
	var sync prefs.Bool
	var format prefs.String
	test.ExpectSuccess(t, dsk.Add("converter.delay", &delay))
	test.ExpectSuccess(t, dsk.Add("converter.sync", &sync))
	test.ExpectSuccess(t, dsk.Add("converter.format", &format))

	test.ExpectSuccess(t, delay.Set(202))
	test.ExpectSuccess(t, sync.Set(true))
	test.ExpectSuccess(t, format.Set("FCEUX"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "{\n  \"converter\": {\n    \"delay\": 202,\n    \"format\": \"FCEUX\",\n    \"sync\": true\n  }\n}\n")

	// saving twice results in the same file
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "{\n  \"converter\": {\n    \"delay\": 202,\n    \"format\": \"FCEUX\",\n    \"sync\": true\n  }\n}\n")

	// reset values and reload them from disk
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, delay.Get().(int), 0)
	test.ExpectEquality(t, sync.Get().(bool), false)
	test.ExpectEquality(t, format.String(), "")

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, delay.Get().(int), 202)
	test.ExpectEquality(t, sync.Get().(bool), true)
	test.ExpectEquality(t, format.String(), "FCEUX")

	test.ExpectEquality(t, dsk.String(), "converter.delay :: 202\nconverter.format :: FCEUX\nconverter.sync :: true\n")
}

// write a bool and then a string from a different prefs.Disk instance. tests
// that the second write doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain the values set by both disk instances
	cmpPrefsFile(t, fn, "{\n  \"test\": true,\n  \"foo\": \"bar\"\n}\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	err = dsk.Add("number", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(5))

	// the missing file is reported but values are left alone
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, v.Get().(int), 5)
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("number :: 10\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Load(), prefs.InvalidFile))
	test.ExpectSuccess(t, curated.Is(dsk.Save(), prefs.InvalidFile))
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`{"converter":{"delay":202,"sync":true}}`), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var delay prefs.Int
	var sync prefs.Bool
	test.ExpectSuccess(t, dsk.Add("converter.delay", &delay))
	test.ExpectSuccess(t, dsk.Add("converter.sync", &sync))

	prefs.PushCommandLineStack("converter.delay::180; unknown::value")

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, delay.Get().(int), 180)
	test.ExpectEquality(t, sync.Get().(bool), true)

	// the unused command line value remains on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::value")
}
