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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/test"
)

func TestURL(t *testing.T) {
	url, err := statsview.URL("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, url, "http://localhost:12800/debug/statsview")

	url, err = statsview.URL("127.0.0.1:9000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, url, "http://127.0.0.1:9000/debug/statsview")

	// a missing host is served on every interface but viewed through localhost
	url, err = statsview.URL(":8080")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, url, "http://localhost:8080/debug/statsview")

	for _, addr := range []string{"localhost", "localhost:http", "localhost:0", "localhost:70000"} {
		_, err = statsview.URL(addr)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, curated.Is(err, statsview.InvalidAddress))
	}
}

func TestLaunchInvalidAddress(t *testing.T) {
	w := &test.CompareWriter{}
	err := statsview.Launch(w, "nonsense")
	test.ExpectSuccess(t, curated.Is(err, statsview.InvalidAddress))
	test.ExpectSuccess(t, w.Compare(""))
}
