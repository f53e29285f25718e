// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// Sentinel error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	DuplicateKey   = "prefs: duplicate key (%s)"
	MalformedEntry = "prefs: malformed entry in %s (line %d)"
)

// the string separating the key from the value in the prefs file
const keySep = " :: "

// Disk represents preference values as stored on disk. Preference values are
// added to the Disk instance with the Add() function and can then be loaded
// and saved as a group.
//
// A prefs file can be shared by more than one Disk instance. Entries that are
// not added to an instance are preserved when that instance is saved.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that have been overridden by the command line. these values are
	// not written to disk by Save()
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// keys returns the keys of the entries map in sorted order.
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add preference value to the Disk instance. If the key has been specified
// in the current command line group (see PushCommandLineStack()) then the
// value is set to the command line value immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// Reset all preference values to their zero value. Command line overrides
// are reapplied.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return dsk.applyOverrides()
}

func (dsk *Disk) applyOverrides() error {
	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// read the prefs file and return the key/value pairs found in it. a missing
// file is not an error, the returned map is empty and exists is false.
func (dsk *Disk) read() (values map[string]string, exists bool, rerr error) {
	values = make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, false, nil
		}
		return nil, false, curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if len(strings.TrimSpace(s)) == 0 || s == WarningBoilerPlate {
			continue
		}
		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			return nil, true, curated.Errorf(MalformedEntry, dsk.path, line)
		}
		values[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, true, curated.Errorf("prefs: %v", err)
	}

	return values, true, nil
}

// Load preference values from disk. If saveOnMissing is true then a missing
// prefs file will be created with the current values and no error is
// returned. Otherwise a missing file results in a NoPrefsFile error.
//
// Entries in the file that have not been added to the Disk instance are
// ignored.
func (dsk *Disk) Load(saveOnMissing bool) error {
	values, exists, err := dsk.read()
	if err != nil {
		return err
	}

	if !exists {
		if saveOnMissing {
			return dsk.Save()
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	for k, p := range dsk.entries {
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return dsk.applyOverrides()
}

// Save current preference values to disk. Values in the existing file that
// are not part of the Disk instance are preserved. Values set from the
// command line are not saved.
func (dsk *Disk) Save() (rerr error) {
	values, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.overrides[k]; ok {
			continue
		}
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, values[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
