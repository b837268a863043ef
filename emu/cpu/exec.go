/*
 * DCPU16 - Instruction semantics.
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

package cpu

import (
	op "github.com/nchashch/dcpu16/emu/opcode"
)

// execBasic runs one two operand instruction. Operand a is read first;
// reading a may move SP, which the b destination must observe. EX is
// snapshotted before the op for ADX/SBX.
func (m *Machine) execBasic(c op.Basic) {
	aval := m.readValue(c.A)
	oldEX := m.ex
	t := m.writeTarget(c.B)
	bval := m.readTarget(t)

	switch c.Op {
	case op.SET:
		m.writeBack(t, aval)

	case op.ADD:
		sum := uint32(bval) + uint32(aval)
		m.writeBack(t, uint16(sum))
		if sum > 0xffff {
			m.ex = 0x0001
		} else {
			m.ex = 0x0000
		}

	case op.SUB:
		m.writeBack(t, bval-aval)
		if aval > bval {
			m.ex = 0xffff
		} else {
			m.ex = 0x0000
		}

	case op.MUL:
		prod := uint32(bval) * uint32(aval)
		m.writeBack(t, uint16(prod))
		m.ex = uint16(prod >> 16)

	case op.MLI:
		prod := int32(int16(bval)) * int32(int16(aval))
		m.writeBack(t, uint16(prod))
		m.ex = uint16(uint32(prod) >> 16)

	case op.DIV:
		if aval == 0 {
			m.writeBack(t, 0)
			m.ex = 0
		} else {
			m.ex = uint16((uint32(bval) << 16) / uint32(aval))
			m.writeBack(t, bval/aval)
		}

	case op.DVI:
		if aval == 0 {
			m.writeBack(t, 0)
			m.ex = 0
		} else {
			// Quotient truncates toward zero.
			bs, as := int32(int16(bval)), int32(int16(aval))
			m.ex = uint16((bs << 16) / as)
			m.writeBack(t, uint16(bs/as))
		}

	case op.MOD:
		if aval == 0 {
			m.writeBack(t, 0)
		} else {
			m.writeBack(t, bval%aval)
		}

	case op.MDI:
		if aval == 0 {
			m.writeBack(t, 0)
		} else {
			// Sign of the result follows the dividend.
			m.writeBack(t, uint16(int16(bval)%int16(aval)))
		}

	case op.AND:
		m.writeBack(t, bval&aval)

	case op.BOR:
		m.writeBack(t, bval|aval)

	case op.XOR:
		m.writeBack(t, bval^aval)

	case op.SHR:
		m.writeBack(t, bval>>aval)
		m.ex = uint16((uint32(bval) << 16) >> aval)

	case op.ASR:
		m.writeBack(t, uint16(int16(bval)>>aval))
		m.ex = uint16((int32(int16(bval)) << 16) >> aval)

	case op.SHL:
		m.writeBack(t, bval<<aval)
		m.ex = uint16((uint64(bval) << aval) >> 16)

	case op.IFB:
		m.branch(bval&aval != 0)
	case op.IFC:
		m.branch(bval&aval == 0)
	case op.IFE:
		m.branch(bval == aval)
	case op.IFN:
		m.branch(bval != aval)
	case op.IFG:
		m.branch(bval > aval)
	case op.IFA:
		m.branch(int16(bval) > int16(aval))
	case op.IFL:
		m.branch(bval < aval)
	case op.IFU:
		m.branch(int16(bval) < int16(aval))

	case op.ADX:
		sum := uint32(bval) + uint32(aval) + uint32(oldEX)
		m.writeBack(t, uint16(sum))
		if sum > 0xffff {
			m.ex = 0x0001
		} else {
			m.ex = 0x0000
		}

	case op.SBX:
		res := int32(bval) - int32(aval) + int32(oldEX)
		m.writeBack(t, uint16(res))
		if res < 0 || res > 0xffff {
			m.ex = 0xffff
		} else {
			m.ex = 0x0000
		}

	case op.STI:
		m.writeBack(t, aval)
		m.reg[op.I]++
		m.reg[op.J]++

	case op.STD:
		m.writeBack(t, aval)
		m.reg[op.I]--
		m.reg[op.J]--
	}
}

// branch skips the following instruction when the predicate is false.
// Each skipped instruction costs one extra cycle, and skipping continues
// across conditionals so chains fail as a unit.
func (m *Machine) branch(taken bool) {
	if taken {
		return
	}
	for {
		word := m.mem[m.pc]
		m.pc += op.WordSize(word)
		m.cycles++
		if !op.ConditionalWord(word) {
			return
		}
	}
}

// execSpecial runs one single operand instruction.
func (m *Machine) execSpecial(c op.Special) error {
	switch c.Op {
	case op.JSR:
		aval := m.readValue(c.A)
		m.push(m.pc)
		m.pc = aval

	case op.INT:
		msg := m.readValue(c.A)
		return m.trigger(msg)

	case op.IAG:
		ia := m.ia
		t := m.writeTarget(c.A)
		m.writeBack(t, ia)

	case op.IAS:
		m.ia = m.readValue(c.A)

	case op.RFI:
		// The operand is evaluated for its side effects and cycle cost,
		// the value is discarded.
		m.readValue(c.A)
		m.intQueueing = false
		m.reg[op.A] = m.pop()
		m.pc = m.pop()
		if len(m.intQueue) > 0 {
			msg := m.intQueue[0]
			m.intQueue = m.intQueue[1:]
			m.deliver(msg)
		}

	case op.IAQ:
		m.intQueueing = m.readValue(c.A) != 0

	case op.HWN:
		var count uint16
		if m.devices != nil {
			count = m.devices.Count()
		}
		t := m.writeTarget(c.A)
		m.writeBack(t, count)

	case op.HWQ:
		index := m.readValue(c.A)
		if m.devices == nil {
			return &DeviceError{Index: index}
		}
		id, version, manufacturer, err := m.devices.Query(index)
		if err != nil {
			return err
		}
		m.reg[op.A] = uint16(id)
		m.reg[op.B] = uint16(id >> 16)
		m.reg[op.C] = version
		m.reg[op.X] = uint16(manufacturer)
		m.reg[op.Y] = uint16(manufacturer >> 16)

	case op.HWI:
		index := m.readValue(c.A)
		if m.devices == nil {
			return &DeviceError{Index: index}
		}
		return m.devices.Interrupt(index, m)
	}
	return nil
}
