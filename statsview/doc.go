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

// Package statsview launches an optional HTTP server offering runtime
// statistics for the emulator. The server is only built when the statsview
// build constraint is present. Without it Launch() returns the NotAvailable
// error and Available() returns false.
//
// The server listens on the address given to Launch(), or on DefaultAddress
// if no address is given. URL() reports where the graphs can be viewed:
//
//	http://localhost:12800/debug/statsview
//
// The standard Go pprof pages are served alongside under /debug/pprof/.
package statsview
