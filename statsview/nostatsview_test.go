//go:build !statsview

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


package statsview_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/tasconvert/statsview"
	"github.com/jetsetilly/tasconvert/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())

	tw := &test.CompareWriter{}
	statsview.Launch(tw)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "stats server not available"))
}
