/*
 * DCPU16 - General purpose register definitions.
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

// Register identifies one of the eight general purpose registers.
// The numeric value matches the 3-bit encoding used in operand fields.
type Register uint16

const (
	A Register = iota
	B
	C
	X
	Y
	Z
	I
	J

	NumRegisters = 8
)

var registerNames = [NumRegisters]string{"a", "b", "c", "x", "y", "z", "i", "j"}

// NewRegister converts an operand sub-code to a register.
func NewRegister(code uint16) (Register, bool) {
	if code >= NumRegisters {
		return 0, false
	}
	return Register(code), true
}

// Code returns the 3-bit encoding of the register.
func (r Register) Code() uint16 {
	return uint16(r)
}

func (r Register) String() string {
	if r >= NumRegisters {
		return "?"
	}
	return registerNames[r]
}
