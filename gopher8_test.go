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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

// run launch() and return the request it sends to the main thread
func launchRequest(t *testing.T, args ...string) stateRequest {
	t.Helper()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	go launch(sync, args)

	return <-sync.state
}

func TestDisasmMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0xe0, 0x12, 0x00}, 0o600))

	req := launchRequest(t, "DISASM", fn)
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectSuccess(t, req.args == nil)
}

func TestMissingROM(t *testing.T) {
	req := launchRequest(t, "DISASM")
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args.(int), 20)

	req = launchRequest(t, "DISASM", filepath.Join(t.TempDir(), "missing.ch8"))
	test.ExpectEquality(t, req.args.(int), 20)
}

func TestUnknownFlag(t *testing.T) {
	req := launchRequest(t, "-foo")
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args.(int), 10)
}
