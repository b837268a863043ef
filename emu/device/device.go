/*
 * DCPU16 - Hardware device table.
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
)

/*
   The DCPU-16 enumerates connected hardware with the HWN, HWQ and HWI
   instructions. A device answers HWQ with a 32 bit hardware ID in
   A+(B<<16), a version in C and a 32 bit manufacturer in X+(Y<<16).
   What a hardware interrupt does is entirely up to the device; it may
   read and modify any register or memory word. Devices must not touch
   machine state before the first HWI aimed at them.
*/

// Device is one connected piece of hardware.
type Device interface {
	ID() uint32           // Hardware identifier.
	Version() uint16      // Hardware version.
	Manufacturer() uint32 // Manufacturer identifier.
	// Interrupt handles one HWI aimed at the device.
	Interrupt(m *cpu.Machine) error
}

// Table is the standard device table, indexed in attachment order.
// It satisfies the machine's DeviceTable hook.
type Table struct {
	devices []Device
}

// NewTable returns an empty device table.
func NewTable() *Table {
	return &Table{}
}

// Add connects a device. The machine does not support hot swapping;
// attach everything before execution starts.
func (t *Table) Add(d Device) {
	t.devices = append(t.devices, d)
}

// Count returns the number of connected devices.
func (t *Table) Count() uint16 {
	return uint16(len(t.devices))
}

// Query returns the identity of the device at index.
func (t *Table) Query(index uint16) (uint32, uint16, uint32, error) {
	if int(index) >= len(t.devices) {
		return 0, 0, 0, &cpu.DeviceError{Index: index}
	}
	d := t.devices[index]
	return d.ID(), d.Version(), d.Manufacturer(), nil
}

// Interrupt forwards a hardware interrupt to the device at index.
func (t *Table) Interrupt(index uint16, m *cpu.Machine) error {
	if int(index) >= len(t.devices) {
		return &cpu.DeviceError{Index: index}
	}
	return t.devices[index].Interrupt(m)
}
