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

package converter

import (
	"fmt"

	"github.com/jetsetilly/tasconvert/curated"
)

// DefaultDelay is the number of lead-in frames known to work with the
// reference Yuzu setup. A delay of exactly this value also forces a confirm
// press on the first frame.
const DefaultDelay = 202

// DefaultSyncInterval is the number of frame records between sync correction
// frames.
const DefaultSyncInterval = 606

// InvalidConfig is the error pattern returned when a Config cannot be used.
const InvalidConfig = "invalid config: %s"

// Config specifies how a conversion should be performed. A Config is a value
// type and is not retained by the converter.
type Config struct {
	Format Format

	// number of idle frames before the first frame record
	Delay int

	// insert an idle frame before every SyncInterval'th frame record
	SyncCorrection bool
	SyncInterval   int

	// the first lead-in frame presses KeyConfirm. this is implied if Delay is
	// DefaultDelay
	FirstFrameConfirm bool
}

// DefaultConfig returns the Config used when no other preference has been
// expressed.
func DefaultConfig() Config {
	return Config{
		Format:         BizHawk,
		Delay:          DefaultDelay,
		SyncCorrection: true,
		SyncInterval:   DefaultSyncInterval,
	}
}

func (cfg Config) String() string {
	s := fmt.Sprintf("%s delay=%d", cfg.Format, cfg.Delay)
	if cfg.SyncCorrection {
		s = fmt.Sprintf("%s sync=%d", s, cfg.SyncInterval)
	}
	if cfg.confirmFirstFrame() {
		s = fmt.Sprintf("%s confirm", s)
	}
	return s
}

// Validate returns an InvalidConfig error if the Config cannot be used for
// conversion.
func (cfg Config) Validate() error {
	if cfg.Delay < 0 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("delay frames cannot be negative (%d)", cfg.Delay))
	}
	if cfg.SyncCorrection && cfg.SyncInterval <= 0 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("sync interval must be positive (%d)", cfg.SyncInterval))
	}
	return nil
}

func (cfg Config) confirmFirstFrame() bool {
	return cfg.Delay == DefaultDelay || cfg.FirstFrameConfirm
}
