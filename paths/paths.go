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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the name of the resource directory when it is found in the current working
// directory. in the user config directory the leading period is dropped
const localResourcePath = ".gopher8"

// ResourcePath returns the path to file in the resource sub-directory subPth.
// The sub-directory (and the base path) is created if necessary. Either
// argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cfg, strings.TrimPrefix(localResourcePath, ".")), nil
}

// UniqueFilename returns a filename made from the prepend string, the name of
// the program (if any) and a timestamp. For example:
//
//	audio_breakout_20240214_103012
//
// The existence of the file is not checked.
func UniqueFilename(prepend string, programName string) string {
	ts := time.Now().Format("20060102_150405")

	name := strings.TrimSpace(programName)
	if name == "" {
		return fmt.Sprintf("%s_%s", prepend, ts)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, name, ts)
}
