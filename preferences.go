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


package main

import (
	"github.com/jetsetilly/tasconvert/converter"
	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/logger"
	"github.com/jetsetilly/tasconvert/paths"
	"github.com/jetsetilly/tasconvert/prefs"
)

// preferences that can be persisted between runs of the program.
type preferences struct {
	dsk *prefs.Disk

	format    prefs.String
	delay     prefs.Int
	sync      prefs.Bool
	confirm   prefs.Bool
	outputDir prefs.String
}

// newPreferences loads the preferences file, creating the resource directory
// if necessary. A missing preferences file is not an error.
func newPreferences() (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for key, pref := range map[string]prefs.Pref{
		"converter.format":  &p.format,
		"converter.delay":   &p.delay,
		"converter.sync":    &p.sync,
		"converter.confirm": &p.confirm,
		"files.outputdir":   &p.outputDir,
	} {
		if err := p.dsk.Add(key, pref); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
		logger.Log(logger.Allow, "tasconvert", err)
	}

	return p, nil
}

func (p *preferences) setDefaults() {
	def := converter.DefaultConfig()
	_ = p.format.Set(converter.AutoFormat)
	_ = p.delay.Set(def.Delay)
	_ = p.sync.Set(def.SyncCorrection)
	_ = p.confirm.Set(def.FirstFrameConfirm)
	_ = p.outputDir.Set("")
}

// save the current values to the preferences file.
func (p *preferences) save() error {
	return p.dsk.Save()
}

// config returns the conversion configuration for the source file. The
// format preference is resolved using the filename of the source.
func (p *preferences) config(source string) (converter.Config, error) {
	cfg := converter.DefaultConfig()

	var err error
	cfg.Format, err = converter.FormatFromFilename(source, p.format.String())
	if err != nil {
		return cfg, err
	}

	cfg.Delay = p.delay.Get().(int)
	cfg.SyncCorrection = p.sync.Get().(bool)
	cfg.FirstFrameConfirm = p.confirm.Get().(bool)

	return cfg, cfg.Validate()
}
