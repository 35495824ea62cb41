// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/NishiOwO/86Box/curated"
)

// DefaultPrefsFile is the name of the prefs file in the resource directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the top of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand. use the preferences commands instead ***"

// NoPrefsFile is returned by Load() when the prefs file does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// keys and values are separated by this string in the prefs file.
const separator = " :: "

// Disk binds preference values to keys and loads/saves them to a file.
// Entries in the file that have not been added to the Disk instance are
// preserved when the file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the location of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to the disk with the specified key. Keys cannot
// contain the separator sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) || strings.TrimSpace(key) != key || key == "" {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preferences added to the disk to their zero value. Hooks are
// called for every value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the prefs file and return it as a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line should be the boilerplate warning
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}

// Load preferences from the file. If saveOnMissing is true then a missing
// file is created with the current values. Values on the command line stack
// take precedence over values in the file.
func (dsk *Disk) Load(saveOnMissing bool) error {
	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if saveOnMissing {
			if err := dsk.Save(); err != nil {
				return err
			}
		} else {
			err = curated.Errorf(NoPrefsFile, dsk.path)
		}
		dsk.commandLine()
		return err
	}

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return dsk.commandLine()
}

// apply any values found on the top of the command line stack.
func (dsk *Disk) commandLine() error {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(data[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}
