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
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jetsetilly/tasconvert/curated"
	"github.com/jetsetilly/tasconvert/logger"
)

// InputLog is the name of the archive member in a BizHawk .bk2 movie that
// contains the frame records.
const InputLog = "Input Log.txt"

// Read the source recording and return it as text.
func Read(source string) (string, error) {
	var data []byte
	var err error

	if isURL(source) {
		data, err = fetch(source)
	} else {
		data, err = load(source)
	}
	if err != nil {
		return "", curated.Errorf(IOError, err)
	}

	text, err := decode(data)
	if err != nil {
		return "", curated.Errorf(IOError, err)
	}

	logger.Logf(logger.Allow, "tasfile", "read %d bytes from %s", len(data), source)

	return text, nil
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return true
	}
	return false
}

func fetch(source string) ([]byte, error) {
	resp, err := http.Get(source)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", source, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// a fetched .bk2 is still an archive
	if zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		return inputLog(zr)
	}

	return data, nil
}

func load(source string) ([]byte, error) {
	zf, err := zip.OpenReader(source)
	if err == nil {
		defer zf.Close()
		return inputLog(&zf.Reader)
	}
	if !errors.Is(err, zip.ErrFormat) {
		return nil, err
	}

	return os.ReadFile(source)
}

// inputLog returns the contents of the InputLog member of the archive.
func inputLog(zr *zip.Reader) ([]byte, error) {
	f, err := zr.Open(InputLog)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// decode data to a UTF-8 string. a UTF-8 or UTF-16 byte order mark selects
// the encoding and is removed.
func decode(data []byte) (string, error) {
	t := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
