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

package statsview

import (
	"net"
	"strconv"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error patterns for the statsview package.
const (
	InvalidAddress = "statsview: invalid address (%s)"
	NotAvailable   = "statsview: not available in this build"
)

// DefaultAddress is used when the emulator is given no address for the
// statistics server.
const DefaultAddress = "localhost:12800"

const path = "/debug/statsview"

// URL returns the address at which the statistics page can be viewed once a
// server has been launched on addr. An empty addr is treated as
// DefaultAddress.
func URL(addr string) (string, error) {
	if addr == "" {
		addr = DefaultAddress
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", curated.Errorf(InvalidAddress, addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 || n > 65535 {
		return "", curated.Errorf(InvalidAddress, addr)
	}

	if host == "" {
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, port) + path, nil
}
