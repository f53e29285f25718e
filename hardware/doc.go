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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the sub-components of the virtual machine.
//
// The Cycle() function runs one frame of emulation: a batch of instructions
// followed by a single decrement of the timers. The Run() function calls
// Cycle() repeatedly, paced by a limiter, until told to stop by the
// continueCheck() function supplied by the caller.
//
//	m, _ := hardware.NewMachine(hardware.DefaultConfig(), renderer, generator)
//	_ = m.Load(rom)
//	_ = m.Run(limiter.NewLimiter(limiter.DefaultRate), continueCheck)
//
// The renderer is called after a cycle only if the framebuffer has changed.
// The tone generator is started and stopped as the sound timer changes. Either
// can be nil.
package hardware
