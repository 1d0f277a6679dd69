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

// Package logger is the central log for the application. Log entries are
// short messages, tagged by the package or subsystem that created them:
//
//	logger.Logf(logger.Allow, "tasfile", "read %d bytes from %s", n, path)
//
// The central log keeps only the most recent entries. An entry that is
// identical to the previous entry is not added again. Instead, the repeat
// count of the previous entry is increased.
//
// Entries can be echoed to an io.Writer as they are created with SetEcho().
// The tasconvert -log flag uses this to echo to stdout.
//
// The Permission interface allows a caller to decide at the moment of logging
// whether the message should be logged at all. The Allow value always
// permits logging.
package logger
