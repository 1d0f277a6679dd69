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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Sentinel patterns are
// stored as const strings by the package that returns them, for example:
//
//	const MissingPath = "missing path: %s path not specified"
//
//	err := curated.Errorf(MissingPath, "source")
//	if curated.Is(err, MissingPath) {
//		fmt.Println("true")
//	}
//
// Has() checks if a pattern occurs anywhere in the chain of curated errors.
// IsAny() returns true if the error was created by Errorf() at all. In
// practice we treat curated errors as "expected" and uncurated errors as
// "unexpected".
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. Parts are separated by the sub-string ": " as suggested
// on p239 of "The Go Programming Language" (Donovan, Kernighan). This means
// that a function can prefix an error with its package name without worrying
// if the callee has done the same:
//
//	curated.Errorf("tasfile: %v", curated.Errorf("tasfile: not found"))
//
// will result in the message:
//
//	tasfile: not found
//
// Errors from other packages that are used as placeholder values can be
// reached with errors.Is() and errors.As() from the standard library.
package curated
