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
	"fmt"
	"strings"

	"github.com/jetsetilly/tasconvert/converter"
	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/logger"
)

// Summary of a successful call to ConvertFile().
type Summary struct {
	Source      string
	Destination string

	// number of frame records found in the source
	Records int

	// number of lead-in frames
	Delay int

	// number of sync correction frames
	Inserted int

	// number of lines in the script
	Lines int
}

func (sum Summary) String() string {
	return fmt.Sprintf("converted %d frames with %d delay frames", sum.Records, sum.Delay)
}

// ConvertFile reads the source recording, converts it and writes the script
// to the destination. The destination is not touched if any part of the
// conversion fails.
func ConvertFile(source string, destination string, cfg converter.Config) (Summary, error) {
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)

	if source == "" {
		return Summary{}, curated.Errorf(MissingPath, "source")
	}
	if destination == "" {
		return Summary{}, curated.Errorf(MissingPath, "destination")
	}

	// Read() and Write() errors are already curated IOErrors
	text, err := Read(source)
	if err != nil {
		return Summary{}, err
	}

	res, err := converter.Convert(text, cfg)
	if err != nil {
		return Summary{}, curated.Errorf("tasfile: %v", err)
	}

	err = Write(destination, res.String())
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Source:      source,
		Destination: destination,
		Records:     res.Records,
		Delay:       cfg.Delay,
		Inserted:    res.Inserted,
		Lines:       len(res.Frames),
	}

	logger.Logf(logger.Allow, "tasfile", "%s: %s (%s)", source, sum, cfg)

	return sum, nil
}
