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

// Package prefs facilitates the storage of preferential values on disk. The
// Disk type keeps a list of named values and will load and save them to a
// JSON file. Keys with dots are stored as nested objects, so the keys
// "converter.delay" and "converter.sync" are saved as:
//
//	{
//	  "converter": {
//	    "delay": 202,
//	    "sync": true
//	  }
//	}
//
// Values in the file that are not known to the Disk instance are preserved
// when the file is saved. This means that more than one Disk instance can use
// the same file without clobbering the values of the other.
//
// The Bool, Int and String types are the supported preference values. They
// can be set from their native Go type or from a string.
//
// Values can also be specified on the command line. PushCommandLineStack()
// takes a string of key/value pairs:
//
//	prefs.PushCommandLineStack("converter.delay::180; converter.sync::false")
//
// These values take precedence over the values in the file the next time
// Disk.Load() is called.
package prefs
