/*
 * DCPU16 - Special one operand opcodes.
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

// SpecialOp is a one operand opcode, selected when the basic opcode field
// is zero. The numeric value is the 5-bit encoding held in the b field.
type SpecialOp uint16

const (
	JSR SpecialOp = 0x01
	INT SpecialOp = 0x08
	IAG SpecialOp = 0x09
	IAS SpecialOp = 0x0a
	RFI SpecialOp = 0x0b
	IAQ SpecialOp = 0x0c
	HWN SpecialOp = 0x10
	HWQ SpecialOp = 0x11
	HWI SpecialOp = 0x12
)

var specialNames = map[SpecialOp]string{
	JSR: "jsr", INT: "int", IAG: "iag", IAS: "ias", RFI: "rfi",
	IAQ: "iaq", HWN: "hwn", HWQ: "hwq", HWI: "hwi",
}

var specialCycles = map[SpecialOp]int{
	JSR: 3, INT: 4, IAG: 1, IAS: 1, RFI: 3, IAQ: 2,
	HWN: 2, HWQ: 4, HWI: 4,
}

// NewSpecialOp converts a 5-bit special opcode field to a SpecialOp.
func NewSpecialOp(code uint16) (SpecialOp, bool) {
	op := SpecialOp(code)
	_, ok := specialNames[op]
	return op, ok
}

// SpecialOpByName looks an op up by its lower case mnemonic.
func SpecialOpByName(name string) (SpecialOp, bool) {
	for op, n := range specialNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// Code returns the 5-bit opcode field value.
func (op SpecialOp) Code() uint16 {
	return uint16(op)
}

// Cycles returns the base cycle cost of the op.
func (op SpecialOp) Cycles() int {
	return specialCycles[op]
}

func (op SpecialOp) String() string {
	if name, ok := specialNames[op]; ok {
		return name
	}
	return "?"
}
