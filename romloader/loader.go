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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/quirks"
)

// Sentinel error patterns.
const (
	EmptyROM       = "romloader: empty ROM (%s)"
	UnexpectedHash = "romloader: unexpected hash value (%s)"
)

// Loader is used to specify the ROM to use with the emulation.
type Loader struct {
	// filename of ROM to load. can be a HTTP URL
	Filename string

	// profile selected by the file extension or by the caller. an empty
	// string indicates that the profile is unknown and the emulator's
	// preferences should be used
	Profile quirks.Profile

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// the profile associated with each file extension. file extensions are
// compared in upper case
var extensions = map[string]quirks.Profile{
	".CH8": quirks.Classic,
	".C8":  quirks.Classic,
	".SC8": quirks.SuperChip,
	".XO8": quirks.XOChip,
}

// FileExtensions is the list of file extensions that are recognised by the
// romloader package.
var FileExtensions = [...]string{".CH8", ".C8", ".SC8", ".XO8"}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The profile argument will be used to set the Profile field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, profile string) (Loader, error) {
	cl := Loader{
		Filename: filename,
	}

	profile = strings.TrimSpace(profile)
	if strings.ToUpper(profile) != "AUTO" && profile != "" {
		p, err := quirks.ParseProfile(profile)
		if err != nil {
			return Loader{}, curated.Errorf("romloader: %v", err)
		}
		cl.Profile = p
	} else if p, ok := extensions[strings.ToUpper(path.Ext(filename))]; ok {
		cl.Profile = p
	}

	return cl, nil
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyROM, cl.Filename)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, cl.Filename)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
