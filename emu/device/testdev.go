/*
 * DCPU16 - Loopback test device.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package device

import (
	"github.com/nchashch/dcpu16/emu/cpu"
	"github.com/nchashch/dcpu16/emu/event"
	"github.com/nchashch/dcpu16/emu/opcode"
)

// TestDev is a loopback device for exercising the hardware
// instructions. A hardware interrupt reads a command from register B:
//
//	0: copy register X into register Y.
//	1: post register X back as a guest interrupt after delay cycles.
type TestDev struct {
	Delay int // Cycles before a posted interrupt fires, default 100.
}

const (
	testDevID           = 0x74657674
	testDevVersion      = 0x0001
	testDevManufacturer = 0x6e636873
)

func (d *TestDev) ID() uint32 {
	return testDevID
}

func (d *TestDev) Version() uint16 {
	return testDevVersion
}

func (d *TestDev) Manufacturer() uint32 {
	return testDevManufacturer
}

func (d *TestDev) Interrupt(m *cpu.Machine) error {
	switch m.Reg(opcode.B) {
	case 0:
		m.SetReg(opcode.Y, m.Reg(opcode.X))
	case 1:
		delay := d.Delay
		if delay == 0 {
			delay = 100
		}
		msg := int(m.Reg(opcode.X))
		event.AddEvent(d, func(iarg int) {
			// Posting can only fail on queue overflow; the guest
			// asked for the interrupt, drop it on fire.
			_ = m.Interrupt(uint16(iarg))
		}, delay, msg)
	}
	return nil
}
