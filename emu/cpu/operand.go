/*
 * DCPU16 - Operand evaluation.
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

// readValue evaluates an operand for its value. In the a slot STACK
// means POP: read memory at SP, then increment SP. Next word values
// were captured into the operand at decode time, so PC does not move
// here.
func (m *Machine) readValue(v op.Value) uint16 {
	switch v.Kind {
	case op.ValReg:
		return m.reg[v.Reg]
	case op.ValDerefReg:
		return m.mem[m.reg[v.Reg]]
	case op.ValIndexReg:
		return m.mem[m.reg[v.Reg]+v.Word]
	case op.ValStack:
		return m.pop()
	case op.ValPeek:
		return m.mem[m.sp]
	case op.ValPick:
		return m.mem[m.sp+v.Word]
	case op.ValSP:
		return m.sp
	case op.ValPC:
		return m.pc
	case op.ValEX:
		return m.ex
	case op.ValDerefNext:
		return m.mem[v.Word]
	case op.ValNext, op.ValLiteral:
		return v.Word
	}
	return 0
}

type targetKind int

const (
	targetNone targetKind = iota // read-only operand, writes discard
	targetReg
	targetMem
	targetSP
	targetPC
	targetEX
)

// target is a resolved write destination. Resolving STACK in the b slot
// has the PUSH side effect on SP, so a target must be resolved exactly
// once and only after operand a has been read.
type target struct {
	kind targetKind
	reg  op.Register
	addr uint16
	val  uint16 // value for targetNone reads
}

// writeTarget resolves an operand as a destination. In the b slot STACK
// means PUSH: decrement SP, then address memory at SP. Literal and next
// word operands yield a discarding target holding their value.
func (m *Machine) writeTarget(v op.Value) target {
	switch v.Kind {
	case op.ValReg:
		return target{kind: targetReg, reg: v.Reg}
	case op.ValDerefReg:
		return target{kind: targetMem, addr: m.reg[v.Reg]}
	case op.ValIndexReg:
		return target{kind: targetMem, addr: m.reg[v.Reg] + v.Word}
	case op.ValStack:
		m.sp--
		return target{kind: targetMem, addr: m.sp}
	case op.ValPeek:
		return target{kind: targetMem, addr: m.sp}
	case op.ValPick:
		return target{kind: targetMem, addr: m.sp + v.Word}
	case op.ValSP:
		return target{kind: targetSP}
	case op.ValPC:
		return target{kind: targetPC}
	case op.ValEX:
		return target{kind: targetEX}
	case op.ValDerefNext:
		return target{kind: targetMem, addr: v.Word}
	case op.ValNext, op.ValLiteral:
		return target{kind: targetNone, val: v.Word}
	}
	return target{kind: targetNone}
}

// readTarget reads the current value at a resolved destination.
func (m *Machine) readTarget(t target) uint16 {
	switch t.kind {
	case targetReg:
		return m.reg[t.reg]
	case targetMem:
		return m.mem[t.addr]
	case targetSP:
		return m.sp
	case targetPC:
		return m.pc
	case targetEX:
		return m.ex
	}
	return t.val
}

// writeBack commits a value to a resolved destination. Writes to a
// read-only operand are silently discarded per the ISA.
func (m *Machine) writeBack(t target, val uint16) {
	switch t.kind {
	case targetReg:
		m.reg[t.reg] = val
	case targetMem:
		m.mem[t.addr] = val
	case targetSP:
		m.sp = val
	case targetPC:
		m.pc = val
	case targetEX:
		m.ex = val
	}
}
