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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func tempPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.Get().(int), 20)
	test.ExpectFailure(t, v.Set("twenty"))
	test.ExpectEquality(t, v.Get().(int), 20)
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0")
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("classic"))
	test.ExpectEquality(t, v.String(), "classic")

	v.SetMaxLen(4)
	test.ExpectEquality(t, v.String(), "clas")
	test.ExpectSuccess(t, v.Set("superchip"))
	test.ExpectEquality(t, v.String(), "supe")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 1 {
			return fmt.Errorf("too small")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the value being stored
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestGeneric(t *testing.T) {
	var w, h int
	g := prefs.NewGeneric(
		func(v prefs.Value) error {
			_, err := fmt.Sscanf(v.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, g.Set("64,32"))
	test.ExpectEquality(t, w, 64)
	test.ExpectEquality(t, h, 32)
	test.ExpectEquality(t, g.String(), "64,32")
	test.ExpectFailure(t, g.Set("wide"))
}

func TestDiskSaveAndLoad(t *testing.T) {
	pth := tempPrefsFile(t)

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var clip prefs.Bool
	var cpf prefs.Int
	var profile prefs.String
	test.ExpectSuccess(t, dsk.Add("quirks.clip", &clip))
	test.ExpectSuccess(t, dsk.Add("cpu.cyclesperframe", &cpf))
	test.ExpectSuccess(t, dsk.Add("quirks.profile", &profile))

	// keys must be unique
	test.ExpectFailure(t, dsk.Add("quirks.clip", &clip))

	test.ExpectSuccess(t, clip.Set(true))
	test.ExpectSuccess(t, cpf.Set(20))
	test.ExpectSuccess(t, profile.Set("xochip"))
	test.ExpectSuccess(t, dsk.Save())

	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), fmt.Sprintf("%s\ncpu.cyclesperframe :: 20\nquirks.clip :: true\nquirks.profile :: xochip\n",
		prefs.WarningBoilerPlate))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, cpf.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, clip.Get().(bool), true)
	test.ExpectEquality(t, cpf.Get().(int), 20)
	test.ExpectEquality(t, profile.String(), "xochip")
}

func TestDiskMissingFile(t *testing.T) {
	pth := tempPrefsFile(t)

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var cpf prefs.Int
	test.ExpectSuccess(t, dsk.Add("cpu.cyclesperframe", &cpf))

	err = dsk.Load(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// file is created if requested
	test.ExpectSuccess(t, dsk.Load(true))
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)
}

func TestDiskPreservesForeignEntries(t *testing.T) {
	pth := tempPrefsFile(t)

	a, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var clip prefs.Bool
	test.ExpectSuccess(t, a.Add("quirks.clip", &clip))
	test.ExpectSuccess(t, clip.Set(true))
	test.ExpectSuccess(t, a.Save())

	b, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var scale prefs.Int
	test.ExpectSuccess(t, b.Add("sdl.scale", &scale))
	test.ExpectSuccess(t, scale.Set(10))
	test.ExpectSuccess(t, b.Save())

	// the entry owned by the first Disk survives the save of the second
	test.ExpectSuccess(t, clip.Set(false))
	test.ExpectSuccess(t, a.Load(false))
	test.ExpectEquality(t, clip.Get().(bool), true)
}

func TestDiskMalformed(t *testing.T) {
	pth := tempPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(pth, []byte("quirks.clip true\n"), 0o600))

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var clip prefs.Bool
	test.ExpectSuccess(t, dsk.Add("quirks.clip", &clip))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.MalformedEntry))
}

func TestDiskCommandLineOverride(t *testing.T) {
	pth := tempPrefsFile(t)

	prefs.PushCommandLineStack("cpu.cyclesperframe::50")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var cpf prefs.Int
	test.ExpectSuccess(t, dsk.Add("cpu.cyclesperframe", &cpf))
	test.ExpectEquality(t, cpf.Get().(int), 50)

	// overridden values are not saved and survive a load
	test.DemandSuccess(t, os.WriteFile(pth, []byte("cpu.cyclesperframe :: 15\n"), 0o600))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, cpf.Get().(int), 50)

	test.ExpectSuccess(t, dsk.Save())
	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), fmt.Sprintf("%s\ncpu.cyclesperframe :: 15\n", prefs.WarningBoilerPlate))
}
