/*
   CPU: DCPU-16 machine state, instruction fetch and execute.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

package cpu

import (
	"errors"
	"fmt"

	op "github.com/nchashch/dcpu16/emu/opcode"
)

/*
   The DCPU-16 is a 16 bit word addressed machine: eight general purpose
   registers, PC, SP, EX and IA, and 65536 words of memory. Instructions
   are one to three words; operand modes that take a next word consume it
   from the stream behind the instruction word, operand a first then b.

   SP grows downward: PUSH is a pre-decrement write, POP a post-increment
   read. All address and register arithmetic wraps modulo 2^16.

   Interrupts are cooperative. They are triggered by the INT instruction
   or posted from outside through Interrupt(), and are only ever examined
   at instruction boundaries. While the queueing flag is set new messages
   collect in a bounded FIFO; past 256 entries the hardware is specified
   to catch fire, which Step surfaces as a fatal error.
*/

const (
	// MemSize is the word count of guest memory.
	MemSize = 0x10000

	// MaxIntQueue is the interrupt queue capacity. One more catches fire.
	MaxIntQueue = 256
)

// ErrQueueOverflow is returned once the interrupt queue exceeds its
// capacity. It is fatal; the machine state is no longer coherent.
var ErrQueueOverflow = errors.New("interrupt queue overflow, processor on fire")

// DeviceError reports HWQ or HWI aimed at a missing device index.
type DeviceError struct {
	Index uint16
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("no device at index %d", e.Index)
}

// DeviceTable is the hardware enumeration hook used by the HWN, HWQ and
// HWI instructions. Devices are free to read and modify machine state
// from their interrupt handler.
type DeviceTable interface {
	// Count returns the number of connected devices.
	Count() uint16
	// Query returns the identity of device index. A+(B<<16) receives the
	// hardware ID, C the version and X+(Y<<16) the manufacturer.
	Query(index uint16) (id uint32, version uint16, manufacturer uint32, err error)
	// Interrupt sends a hardware interrupt to device index.
	Interrupt(index uint16, m *Machine) error
}

// Machine is a single DCPU-16. The zero value is a powered on machine
// with cleared registers and memory.
type Machine struct {
	reg    [op.NumRegisters]uint16
	pc     uint16
	sp     uint16
	ex     uint16
	ia     uint16
	cycles uint64

	intQueueing bool
	intQueue    []uint16

	mem [MemSize]uint16

	devices DeviceTable
}

// New returns a zeroed machine on the heap.
func New() *Machine {
	return &Machine{
		intQueue: make([]uint16, 0, MaxIntQueue),
	}
}

// Load installs a memory image. The image may be shorter than memory;
// the remainder is cleared. Word 0 is the initial PC target.
func (m *Machine) Load(rom []uint16) {
	if len(rom) > MemSize {
		rom = rom[:MemSize]
	}
	n := copy(m.mem[:], rom)
	for i := n; i < MemSize; i++ {
		m.mem[i] = 0
	}
}

// Attach connects a device table. Passing nil detaches all hardware.
func (m *Machine) Attach(devices DeviceTable) {
	m.devices = devices
}

// Interrupt posts an interrupt message from outside the guest. It is
// queued and delivered at the next instruction boundary.
func (m *Machine) Interrupt(msg uint16) error {
	return m.enqueue(msg)
}

// Step executes one instruction and returns the new PC. Before the
// fetch, a pending queued interrupt is delivered if queueing is off.
// Errors are fatal: an undecodable word, a missing device, or interrupt
// queue overflow.
func (m *Machine) Step() (uint16, error) {
	if !m.intQueueing && len(m.intQueue) > 0 {
		msg := m.intQueue[0]
		m.intQueue = m.intQueue[1:]
		m.deliver(msg)
	}

	addr := m.pc
	word := m.nextWord()
	cmd, err := op.Decode(word, m.nextWord)
	if err != nil {
		return m.pc, fmt.Errorf("at %04x: %w", addr, err)
	}
	m.cycles += uint64(cmd.Cycles())

	switch c := cmd.(type) {
	case op.Basic:
		m.execBasic(c)
	case op.Special:
		err = m.execSpecial(c)
	}
	return m.pc, err
}

// nextWord fetches the word at PC and advances PC.
func (m *Machine) nextWord() uint16 {
	word := m.mem[m.pc]
	m.pc++
	return word
}

func (m *Machine) push(val uint16) {
	m.sp--
	m.mem[m.sp] = val
}

func (m *Machine) pop() uint16 {
	val := m.mem[m.sp]
	m.sp++
	return val
}

// Reg returns the value of a general purpose register.
func (m *Machine) Reg(r op.Register) uint16 {
	return m.reg[r]
}

// SetReg sets a general purpose register.
func (m *Machine) SetReg(r op.Register, val uint16) {
	m.reg[r] = val
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SetPC sets the program counter.
func (m *Machine) SetPC(val uint16) {
	m.pc = val
}

// SP returns the stack pointer.
func (m *Machine) SP() uint16 {
	return m.sp
}

// SetSP sets the stack pointer.
func (m *Machine) SetSP(val uint16) {
	m.sp = val
}

// EX returns the excess register.
func (m *Machine) EX() uint16 {
	return m.ex
}

// IA returns the interrupt address register.
func (m *Machine) IA() uint16 {
	return m.ia
}

// Cycles returns the cumulative executed cycle count.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Queueing reports whether interrupt queueing is on.
func (m *Machine) Queueing() bool {
	return m.intQueueing
}

// ReadMem returns one memory word.
func (m *Machine) ReadMem(addr uint16) uint16 {
	return m.mem[addr]
}

// WriteMem sets one memory word.
func (m *Machine) WriteMem(addr uint16, val uint16) {
	m.mem[addr] = val
}

// Read copies n words of memory starting at addr, wrapping at the top
// of the address space.
func (m *Machine) Read(addr uint16, n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = m.mem[addr+uint16(i)]
	}
	return out
}
