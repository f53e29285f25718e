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

package quirks

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error patterns.
const (
	UnknownProfile = "quirks: unknown profile (%s)"
	UnknownQuirk   = "quirks: unknown quirk (%s)"
)

// Quirk identifies a single behavioural toggle.
type Quirk int

// List of quirks.
const (
	// 8XY1, 8XY2 and 8XY3 set VF to zero after the operation
	VFReset Quirk = iota

	// FX55 and FX65 leave I incremented by X+1
	MemoryIncrement

	// a draw instruction ends the current cycle batch
	DisplayWait

	// sprites are clipped at the edges of the screen rather than wrapped
	Clip

	// 8XY6 and 8XYE shift VY and store the result in VX. otherwise VX is
	// shifted in place and VY is ignored
	ShiftLegacy

	// BXNN jumps to XNN plus VX rather than NNN plus V0
	JumpWithOffsetRegister

	// DXY0 in low resolution mode draws an 8x8 sprite rather than 16x16
	ZeroHeightSpriteFallback

	NumQuirks
)

var names = [NumQuirks]string{
	VFReset:                  "vfreset",
	MemoryIncrement:          "memoryincrement",
	DisplayWait:              "displaywait",
	Clip:                     "clip",
	ShiftLegacy:              "shiftlegacy",
	JumpWithOffsetRegister:   "jumpwithoffset",
	ZeroHeightSpriteFallback: "zeroheightfallback",
}

func (q Quirk) String() string {
	if q < 0 || q >= NumQuirks {
		return fmt.Sprintf("quirk(%d)", int(q))
	}
	return names[q]
}

// Quirks is the complete table of quirk settings.
type Quirks [NumQuirks]bool

// Has returns true if the quirk is enabled.
func (qs Quirks) Has(q Quirk) bool {
	return qs[q]
}

// Set the value of a single quirk.
func (qs *Quirks) Set(q Quirk, v bool) {
	qs[q] = v
}

// String returns a comma separated list of the enabled quirks. The string
// "none" is returned if no quirks are enabled.
func (qs Quirks) String() string {
	s := make([]string, 0, NumQuirks)
	for q := Quirk(0); q < NumQuirks; q++ {
		if qs[q] {
			s = append(s, q.String())
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ",")
}

// Profile names a preset collection of quirks.
type Profile string

// List of profiles.
const (
	Classic   Profile = "classic"
	SuperChip Profile = "superchip"
	XOChip    Profile = "xochip"
)

// Profiles lists every profile in a fixed order.
var Profiles = []Profile{Classic, SuperChip, XOChip}

// the quirks enabled by each profile. quirks not listed are disabled
var presets = map[Profile][]Quirk{
	Classic:   {VFReset, MemoryIncrement, DisplayWait, Clip, ShiftLegacy, ZeroHeightSpriteFallback},
	SuperChip: {Clip, JumpWithOffsetRegister, ZeroHeightSpriteFallback},
	XOChip:    {MemoryIncrement, ShiftLegacy},
}

// Preset returns the quirks for the profile.
func Preset(p Profile) (Quirks, error) {
	l, ok := presets[p]
	if !ok {
		return Quirks{}, curated.Errorf(UnknownProfile, p)
	}
	var qs Quirks
	for _, q := range l {
		qs[q] = true
	}
	return qs, nil
}

// ParseProfile converts a string to a Profile. The comparison is case
// insensitive and ignores surrounding whitespace.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", curated.Errorf(UnknownProfile, s)
	}
	return p, nil
}

// ParseQuirk converts the name of a quirk (as returned by the String() function)
// to its Quirk value.
func ParseQuirk(s string) (Quirk, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for q := Quirk(0); q < NumQuirks; q++ {
		if names[q] == s {
			return q, nil
		}
	}
	return 0, curated.Errorf(UnknownQuirk, s)
}
