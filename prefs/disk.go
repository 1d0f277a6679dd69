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

package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.json"

// Sentinel error patterns returned by the Disk type.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
	InvalidFile  = "prefs: preferences file is not valid JSON (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]Pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]Pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(" :: ")
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference value to the disk. The key is a gjson path, which for our
// purposes means a series of names separated by dots.
func (dsk *Disk) Add(key string, p Pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Load preference values from disk. Values in the command line stack are
// applied afterwards and take precedence.
//
// If the preferences file does not exist the command line values are still
// applied but a NoPrefsFile error is returned. Callers will often want to
// ignore this error.
func (dsk *Disk) Load() error {
	data, err := os.ReadFile(dsk.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf("prefs: %v", err)
	}
	missing := err != nil

	if !missing {
		if !gjson.ValidBytes(data) {
			return curated.Errorf(InvalidFile, dsk.path)
		}

		for _, k := range dsk.keys() {
			res := gjson.GetBytes(data, k)
			if !res.Exists() {
				continue
			}
			if err := dsk.entries[k].Set(res.String()); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set from command line (%v)", k, v)
		}
	}

	if missing {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// Save current preference values to disk. Values already in the file that
// have not been added to the Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf("prefs: %v", err)
		}
		data = []byte("{}")
	}

	if !gjson.ValidBytes(data) {
		return curated.Errorf(InvalidFile, dsk.path)
	}

	for _, k := range dsk.keys() {
		data, err = sjson.SetBytes(data, k, dsk.entries[k].Get())
		if err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	buf.WriteString("\n")

	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}
