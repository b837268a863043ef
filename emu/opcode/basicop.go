/*
 * DCPU16 - Basic two operand opcodes.
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

package opcode

// BasicOp is a two operand opcode. The numeric value is the 5-bit field
// encoding. Code 0x00 selects the special opcode space and codes
// 0x18-0x19 and 0x1c-0x1d are unassigned.
type BasicOp uint16

const (
	SET BasicOp = 0x01
	ADD BasicOp = 0x02
	SUB BasicOp = 0x03
	MUL BasicOp = 0x04
	MLI BasicOp = 0x05
	DIV BasicOp = 0x06
	DVI BasicOp = 0x07
	MOD BasicOp = 0x08
	MDI BasicOp = 0x09
	AND BasicOp = 0x0a
	BOR BasicOp = 0x0b
	XOR BasicOp = 0x0c
	SHR BasicOp = 0x0d
	ASR BasicOp = 0x0e
	SHL BasicOp = 0x0f
	IFB BasicOp = 0x10
	IFC BasicOp = 0x11
	IFE BasicOp = 0x12
	IFN BasicOp = 0x13
	IFG BasicOp = 0x14
	IFA BasicOp = 0x15
	IFL BasicOp = 0x16
	IFU BasicOp = 0x17
	ADX BasicOp = 0x1a
	SBX BasicOp = 0x1b
	STI BasicOp = 0x1e
	STD BasicOp = 0x1f
)

var basicNames = map[BasicOp]string{
	SET: "set", ADD: "add", SUB: "sub", MUL: "mul", MLI: "mli",
	DIV: "div", DVI: "dvi", MOD: "mod", MDI: "mdi", AND: "and",
	BOR: "bor", XOR: "xor", SHR: "shr", ASR: "asr", SHL: "shl",
	IFB: "ifb", IFC: "ifc", IFE: "ife", IFN: "ifn", IFG: "ifg",
	IFA: "ifa", IFL: "ifl", IFU: "ifu", ADX: "adx", SBX: "sbx",
	STI: "sti", STD: "std",
}

// Base cycle cost of each basic op, before operand next word charges and
// branch skip penalties.
var basicCycles = map[BasicOp]int{
	SET: 1, ADD: 2, SUB: 2, MUL: 2, MLI: 2,
	DIV: 3, DVI: 3, MOD: 3, MDI: 3,
	AND: 1, BOR: 1, XOR: 1, SHR: 1, ASR: 1, SHL: 1,
	IFB: 2, IFC: 2, IFE: 2, IFN: 2, IFG: 2, IFA: 2, IFL: 2, IFU: 2,
	ADX: 3, SBX: 3, STI: 2, STD: 2,
}

// NewBasicOp converts a 5-bit opcode field to a BasicOp.
func NewBasicOp(code uint16) (BasicOp, bool) {
	op := BasicOp(code)
	_, ok := basicNames[op]
	return op, ok
}

// BasicOpByName looks an op up by its lower case mnemonic.
func BasicOpByName(name string) (BasicOp, bool) {
	for op, n := range basicNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// Code returns the 5-bit opcode field value.
func (op BasicOp) Code() uint16 {
	return uint16(op)
}

// Cycles returns the base cycle cost of the op.
func (op BasicOp) Cycles() int {
	return basicCycles[op]
}

// Conditional reports whether the op is one of the IF family. A false
// predicate skips following instructions, chaining across conditionals.
func (op BasicOp) Conditional() bool {
	return op >= IFB && op <= IFU
}

func (op BasicOp) String() string {
	if name, ok := basicNames[op]; ok {
		return name
	}
	return "?"
}
