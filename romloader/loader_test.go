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

package romloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestProfile(t *testing.T) {
	cl, err := romloader.NewLoader("games/Breakout.ch8", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cl.Profile, quirks.Classic)
	test.ExpectEquality(t, cl.ShortName(), "Breakout")

	cl, err = romloader.NewLoader("games/Car.SC8", "auto")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cl.Profile, quirks.SuperChip)

	cl, err = romloader.NewLoader("games/Silicon8.xo8", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cl.Profile, quirks.XOChip)

	// the profile argument overrides the file extension
	cl, err = romloader.NewLoader("games/Breakout.ch8", "XOCHIP")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cl.Profile, quirks.XOChip)

	cl, err = romloader.NewLoader("games/Breakout.bin", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cl.Profile, quirks.Profile(""))

	_, err = romloader.NewLoader("games/Breakout.bin", "foo")
	test.ExpectFailure(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xe0}, 0o600))

	cl, err := romloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 2)
	test.ExpectEquality(t, len(cl.Hash), 40)

	// a second loader with the correct hash
	cl2, err := romloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	cl2.Hash = cl.Hash
	test.ExpectSuccess(t, cl2.Load())

	// and with the wrong hash
	cl3, err := romloader.NewLoader(fn, "")
	test.DemandSuccess(t, err)
	cl3.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(cl3.Load(), romloader.UnexpectedHash))
	test.ExpectFailure(t, cl3.HasLoaded())

	// empty files are rejected
	empty := filepath.Join(dir, "empty.ch8")
	test.DemandSuccess(t, os.WriteFile(empty, []byte{}, 0o600))
	cl4, err := romloader.NewLoader(empty, "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(cl4.Load(), romloader.EmptyROM))

	cl5, err := romloader.NewLoader(filepath.Join(dir, "missing.ch8"), "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl5.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x00, 0xe0, 0x12, 0x02})
	}))
	defer srv.Close()

	cl, err := romloader.NewLoader(srv.URL+"/test.ch8", "")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 4)

	cl, err = romloader.NewLoader(srv.URL+"/missing.ch8", "")
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.Load())
}
