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


// Package modalflag wraps the flag package from the standard library. It adds
// program modes, each mode having its own set of flags.
//
// Arguments are given with NewArgs() and then processed with Parse(). Unlike
// flag.FlagSet.Parse(), the Parse() function takes no arguments because the
// same argument list is consumed in stages, once for each mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CONVERT", "BATCH", "WATCH", "VERSION")
//	p, err := md.Parse()
//
// After Parse(), Mode() is the selected mode. If the first argument is not a
// mode name, or if there are flags that are not recognised at this level, then
// the first sub-mode is selected. Mode names are not case sensitive.
//
// Once the mode is known, call NewMode(), add the flags for that mode and call
// Parse() again:
//
//	switch md.Mode() {
//	case "CONVERT":
//		md.NewMode()
//		delay := md.AddInt("delay", 202, "number of lead-in frames")
//		p, err := md.Parse()
//		...
//		convert(md.GetArg(0), *delay)
//	}
//
// ParseHelp is returned when -help has been requested. The help message has
// been written to the Output field by then and the caller has nothing more to
// do.
//
// The Visit() function reports which flags were set explicitly. This allows a
// flag to take precedence over a preference value only when the user has asked
// for it.
package modalflag
