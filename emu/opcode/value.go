/*
 * DCPU16 - Operand addressing modes.
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

import "fmt"

// ValueKind selects one of the eleven operand addressing modes.
type ValueKind int

const (
	ValReg       ValueKind = iota // register
	ValDerefReg                   // [register]
	ValIndexReg                   // [register + next word]
	ValStack                      // PUSH if in b, POP if in a
	ValPeek                       // [SP]
	ValPick                       // [SP + next word]
	ValSP                         // SP
	ValPC                         // PC
	ValEX                         // EX
	ValDerefNext                  // [next word]
	ValNext                       // next word (literal)
	ValLiteral                    // inline literal -1..30
)

// Operand sub-codes. Registers and literals occupy ranges, the rest are
// single codes.
const (
	codeDerefReg  = 0x08
	codeIndexReg  = 0x10
	CodeStack     = 0x18
	CodePeek      = 0x19
	CodePick      = 0x1a
	CodeSP        = 0x1b
	CodePC        = 0x1c
	CodeEX        = 0x1d
	CodeDerefNext = 0x1e
	CodeNext      = 0x1f
	codeLiteral   = 0x20
)

// Value is a decoded operand. Reg is meaningful for the register modes,
// Word holds the consumed next word for the modes that take one and the
// wrapped literal value for ValLiteral.
type Value struct {
	Kind ValueKind
	Reg  Register
	Word uint16
}

// decodeValue converts a 6-bit operand sub-code to a Value, pulling a next
// word through fetch when the mode consumes one.
func decodeValue(code uint16, fetch func() uint16) (Value, bool) {
	switch {
	case code < codeDerefReg:
		return Value{Kind: ValReg, Reg: Register(code)}, true
	case code < codeIndexReg:
		return Value{Kind: ValDerefReg, Reg: Register(code - codeDerefReg)}, true
	case code < CodeStack:
		return Value{Kind: ValIndexReg, Reg: Register(code - codeIndexReg), Word: fetch()}, true
	case code == CodeStack:
		return Value{Kind: ValStack}, true
	case code == CodePeek:
		return Value{Kind: ValPeek}, true
	case code == CodePick:
		return Value{Kind: ValPick, Word: fetch()}, true
	case code == CodeSP:
		return Value{Kind: ValSP}, true
	case code == CodePC:
		return Value{Kind: ValPC}, true
	case code == CodeEX:
		return Value{Kind: ValEX}, true
	case code == CodeDerefNext:
		return Value{Kind: ValDerefNext, Word: fetch()}, true
	case code == CodeNext:
		return Value{Kind: ValNext, Word: fetch()}, true
	case code <= 0x3f:
		// Inline literal -1..30, stored with two's complement wrap.
		return Value{Kind: ValLiteral, Word: (code - codeLiteral) - 1}, true
	default:
		return Value{}, false
	}
}

// Code returns the operand sub-code for the value.
func (v Value) Code() uint16 {
	switch v.Kind {
	case ValReg:
		return v.Reg.Code()
	case ValDerefReg:
		return codeDerefReg + v.Reg.Code()
	case ValIndexReg:
		return codeIndexReg + v.Reg.Code()
	case ValStack:
		return CodeStack
	case ValPeek:
		return CodePeek
	case ValPick:
		return CodePick
	case ValSP:
		return CodeSP
	case ValPC:
		return CodePC
	case ValEX:
		return CodeEX
	case ValDerefNext:
		return CodeDerefNext
	case ValNext:
		return CodeNext
	case ValLiteral:
		return (v.Word + 1 + codeLiteral) & 0x3f
	}
	return 0
}

// HasNextWord reports whether the mode consumes an extra instruction word.
func (v Value) HasNextWord() bool {
	switch v.Kind {
	case ValIndexReg, ValPick, ValDerefNext, ValNext:
		return true
	}
	return false
}

// Cycles returns the extra cycle cost of evaluating the operand. Modes that
// read a next word cost one cycle, all others are free.
func (v Value) Cycles() int {
	if v.HasNextWord() {
		return 1
	}
	return 0
}

// needsNextWord reports whether a raw operand sub-code consumes a next
// word. Usable on undecoded words while computing instruction length.
func needsNextWord(code uint16) bool {
	if code >= codeIndexReg && code < CodeStack {
		return true
	}
	return code == CodePick || code == CodeDerefNext || code == CodeNext
}

func (v Value) String() string {
	switch v.Kind {
	case ValReg:
		return v.Reg.String()
	case ValDerefReg:
		return "[" + v.Reg.String() + "]"
	case ValIndexReg:
		return fmt.Sprintf("[%s + %d]", v.Reg, v.Word)
	case ValStack:
		return "stack"
	case ValPeek:
		return "peek"
	case ValPick:
		return fmt.Sprintf("pick %d", v.Word)
	case ValSP:
		return "sp"
	case ValPC:
		return "pc"
	case ValEX:
		return "ex"
	case ValDerefNext:
		return fmt.Sprintf("[%d]", v.Word)
	case ValNext:
		return fmt.Sprintf("%d", v.Word)
	case ValLiteral:
		return fmt.Sprintf("%d", int16(v.Word))
	}
	return "?"
}
