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

// Package version reports the name and version of the application. The version
// number is set at link time by the makefile. For example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.3.0"
//
// Without a version number the vcs information embedded by the Go toolchain is
// used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
//
// A version string of "unreleased" means the program was built from a vcs
// checkout. A version string of "local" means no vcs information was available,
// which happens with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name and version in a form suitable for a
// window title or a banner.
func Title() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return ApplicationName
}

func init() {
	revision = "no revision information"
	version = "local"

	if info, ok := debug.ReadBuildInfo(); ok {
		var modified bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				version = "unreleased"
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if modified && revision != "no revision information" {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number != "" {
		version = number
	}
}
