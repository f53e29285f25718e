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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Launch starts the statistics server on addr in a new goroutine and writes
// the page URL to output. An empty addr is treated as DefaultAddress.
func Launch(output io.Writer, addr string) error {
	url, err := URL(addr)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))

	go func() {
		statsview.New().Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", url)

	return nil
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
