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


package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jetsetilly/tasconvert/converter"
	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/logger"
	"github.com/jetsetilly/tasconvert/tasfile"
)

// NotLocal is returned when the source is not a file on the local filesystem.
const NotLocal = "watcher: source must be a local file (%s)"

// DefaultDebounce is the quiet period after a change before the source is
// converted.
const DefaultDebounce = 100 * time.Millisecond

// Report is called with the result of every conversion.
type Report func(tasfile.Summary, error)

// Watcher converts Source to Destination whenever Source changes.
type Watcher struct {
	Source      string
	Destination string
	Config      converter.Config

	// zero value is DefaultDebounce
	Debounce time.Duration

	// may be nil
	Report Report
}

// Watch is a convenience function for Watcher.Run() with DefaultDebounce.
func Watch(ctx context.Context, source string, destination string, cfg converter.Config, report Report) error {
	w := Watcher{
		Source:      source,
		Destination: destination,
		Config:      cfg,
		Report:      report,
	}
	return w.Run(ctx)
}

// Run converts the source immediately and then again after every change. It
// returns nil when the context is cancelled.
//
// Conversion errors are passed to Report and do not stop the watch. An error
// is only returned if the watch could not be started.
func (w *Watcher) Run(ctx context.Context) error {
	if strings.HasPrefix(w.Source, "http://") || strings.HasPrefix(w.Source, "https://") {
		return curated.Errorf(NotLocal, w.Source)
	}
	if strings.TrimSpace(w.Source) == "" {
		return curated.Errorf(tasfile.MissingPath, "source")
	}

	source, err := filepath.Abs(w.Source)
	if err != nil {
		return curated.Errorf("watcher: %v", err)
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return curated.Errorf("watcher: %v", err)
	}
	defer fsw.Close()

	err = fsw.Add(filepath.Dir(source))
	if err != nil {
		return curated.Errorf("watcher: %v", err)
	}

	logger.Logf(logger.Allow, "watcher", "watching %s", source)

	w.convert()

	// nil until a change has been seen. a new change replaces the channel so
	// only the most recent one fires
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "watcher", "stopped watching %s", source)
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != source {
				continue // for loop
			}
			switch {
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
				pending = time.After(debounce)
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				logger.Logf(logger.Allow, "watcher", "%s has been removed", source)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.report(tasfile.Summary{}, curated.Errorf("watcher: %v", err))

		case <-pending:
			pending = nil
			w.convert()
		}
	}
}

func (w *Watcher) convert() {
	sum, err := tasfile.ConvertFile(w.Source, w.Destination, w.Config)
	w.report(sum, err)
}

func (w *Watcher) report(sum tasfile.Summary, err error) {
	if err != nil {
		logger.Log(logger.Allow, "watcher", err)
	}
	if w.Report != nil {
		w.Report(sum, err)
	}
}
