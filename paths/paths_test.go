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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/test"
)

func TestResourcePath(t *testing.T) {
	// run the test from a temporary directory containing a local resource
	// directory. ResourcePath() should prefer it to the user config directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	pth, err := paths.ResourcePath("audio", "out.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "audio", "out.wav"))

	// the sub-directory has been created
	fi, err := os.Stat(filepath.Join(".gopher8", "audio"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("audio", "breakout")
	test.ExpectSuccess(t, regexp.MustCompile(`^audio_breakout_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("audio", "  ")
	test.ExpectSuccess(t, regexp.MustCompile(`^audio_\d{8}_\d{6}$`).MatchString(fn))
}
