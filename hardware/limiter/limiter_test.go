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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestLimit(t *testing.T) {
	lmtr := limiter.NewLimiter(60)
	defer lmtr.Stop()
	test.ExpectEquality(t, lmtr.Rate(), float32(60))

	// thirty frames at 60Hz should take close to half a second. the lower
	// bound is generous to allow for the first pulse arriving early
	start := time.Now()
	for i := 0; i < 30; i++ {
		lmtr.CheckFrame()
		lmtr.MeasureActual()
	}
	test.ExpectSuccess(t, time.Since(start) >= 350*time.Millisecond)
}

func TestInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(1)
	defer lmtr.Stop()
	lmtr.Active = false

	start := time.Now()
	for i := 0; i < 1000; i++ {
		lmtr.CheckFrame()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}

func TestDefaultRate(t *testing.T) {
	lmtr := limiter.NewLimiter(0)
	defer lmtr.Stop()
	test.ExpectEquality(t, lmtr.Rate(), limiter.DefaultRate)

	lmtr.SetLimit(30)
	test.ExpectEquality(t, lmtr.Rate(), float32(30))
}
