/*
 * DCPU16 - Instruction codec tests.
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

import (
	"errors"
	"math/rand"
	"testing"
)

// fetch function returning words from a fixed stream.
func stream(words ...uint16) func() uint16 {
	i := 0
	return func() uint16 {
		w := words[i]
		i++
		return w
	}
}

func TestDecodeBasic(t *testing.T) {
	// set a, 0x30 is 0x7c01 followed by 0x0030.
	cmd, err := Decode(0x7c01, stream(0x0030))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := Basic{Op: SET, B: Value{Kind: ValReg, Reg: A}, A: Value{Kind: ValNext, Word: 0x30}}
	if cmd != want {
		t.Errorf("Decode got: %v expected: %v", cmd, want)
	}
	if cmd.Size() != 2 {
		t.Errorf("Size got: %d expected: 2", cmd.Size())
	}
	if cmd.Cycles() != 2 {
		t.Errorf("Cycles got: %d expected: 2", cmd.Cycles())
	}
}

func TestDecodeSpecial(t *testing.T) {
	// jsr 0x1000: a is next word, special op 0x01 in the b field.
	word := uint16(CodeNext<<10) | uint16(JSR)<<5
	cmd, err := Decode(word, stream(0x1000))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := Special{Op: JSR, A: Value{Kind: ValNext, Word: 0x1000}}
	if cmd != want {
		t.Errorf("Decode got: %v expected: %v", cmd, want)
	}
	if enc := cmd.Encode(); enc != word {
		t.Errorf("Encode got: %04x expected: %04x", enc, word)
	}
}

func TestDecodeUnassigned(t *testing.T) {
	// Basic opcodes 0x18, 0x19, 0x1c, 0x1d are unassigned.
	for _, w := range []uint16{0x0018, 0x0019, 0x001c, 0x001d} {
		word := w | 0x0020 // register b operand
		_, err := Decode(word, stream())
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("Decode %04x expected DecodeError got: %v", word, err)
		}
	}
	// Special opcodes 0x00, 0x02..0x07, 0x0d..0x0f, 0x13..0x1f unassigned.
	for _, sp := range []uint16{0x00, 0x02, 0x07, 0x0d, 0x0f, 0x13, 0x1f} {
		word := sp << 5
		_, err := Decode(word, stream())
		if err == nil {
			t.Errorf("Decode %04x expected error for special opcode %02x", word, sp)
		}
	}
}

func TestLiteralCodes(t *testing.T) {
	// Codes 0x20..0x3f carry literals -1..30.
	for code := uint16(0x20); code <= 0x3f; code++ {
		v, ok := decodeValue(code, nil)
		if !ok {
			t.Fatalf("decodeValue %02x failed", code)
		}
		want := (code - 0x21) & 0xffff
		if v.Kind != ValLiteral || v.Word != want {
			t.Errorf("literal %02x got: %04x expected: %04x", code, v.Word, want)
		}
		if v.Code() != code {
			t.Errorf("literal code got: %02x expected: %02x", v.Code(), code)
		}
	}
	v := Value{Kind: ValLiteral, Word: 0xffff}
	if v.Code() != 0x20 {
		t.Errorf("literal -1 code got: %02x expected: 20", v.Code())
	}
}

// Every word that decodes must encode back to itself.
func TestRoundTripWords(t *testing.T) {
	for w := 0; w <= 0xffff; w++ {
		word := uint16(w)
		cmd, err := Decode(word, stream(0, 0))
		if err != nil {
			continue
		}
		if enc := cmd.Encode(); enc != word {
			t.Fatalf("round trip %04x got: %04x", word, enc)
		}
	}
}

// random well formed operand for the given slot.
func randomValue(rng *rand.Rand, aSlot bool) Value {
	for {
		kind := ValueKind(rng.Intn(12))
		if kind == ValLiteral && !aSlot {
			// Literals are only encodable in the 6-bit a slot.
			continue
		}
		v := Value{Kind: kind}
		switch kind {
		case ValReg, ValDerefReg, ValIndexReg:
			v.Reg = Register(rng.Intn(8))
		}
		switch kind {
		case ValIndexReg, ValPick, ValDerefNext, ValNext:
			v.Word = uint16(rng.Intn(0x10000))
		}
		if kind == ValLiteral {
			v.Word = uint16(int16(rng.Intn(32) - 1))
		}
		return v
	}
}

var allBasicOps = []BasicOp{
	SET, ADD, SUB, MUL, MLI, DIV, DVI, MOD, MDI, AND, BOR, XOR,
	SHR, ASR, SHL, IFB, IFC, IFE, IFN, IFG, IFA, IFL, IFU,
	ADX, SBX, STI, STD,
}

var allSpecialOps = []SpecialOp{JSR, INT, IAG, IAS, RFI, IAQ, HWN, HWQ, HWI}

// 100 random well formed commands must survive encode then decode.
func TestRoundTripCommands(t *testing.T) {
	rng := rand.New(rand.NewSource(0x10c))
	for range 100 {
		var cmd Command
		if rng.Intn(4) == 0 {
			cmd = Special{Op: allSpecialOps[rng.Intn(len(allSpecialOps))], A: randomValue(rng, true)}
		} else {
			cmd = Basic{
				Op: allBasicOps[rng.Intn(len(allBasicOps))],
				B:  randomValue(rng, false),
				A:  randomValue(rng, true),
			}
		}
		words := cmd.Words()
		got, err := Decode(words[0], stream(words[1:]...))
		if err != nil {
			t.Fatalf("decode of %v failed: %v", cmd, err)
		}
		if got != cmd {
			t.Errorf("round trip got: %v expected: %v", got, cmd)
		}
	}
}

func TestWordSize(t *testing.T) {
	// set a, 0x30 takes two words.
	if s := WordSize(0x7c01); s != 2 {
		t.Errorf("WordSize 7c01 got: %d expected: 2", s)
	}
	// set [b + 2], [1000] takes three.
	cmd := Basic{Op: SET,
		B: Value{Kind: ValIndexReg, Reg: B, Word: 2},
		A: Value{Kind: ValDerefNext, Word: 1000}}
	if s := WordSize(cmd.Encode()); s != 3 {
		t.Errorf("WordSize got: %d expected: 3", s)
	}
	// set a, b takes one.
	cmd = Basic{Op: SET, B: Value{Kind: ValReg, Reg: A}, A: Value{Kind: ValReg, Reg: B}}
	if s := WordSize(cmd.Encode()); s != 1 {
		t.Errorf("WordSize got: %d expected: 1", s)
	}
	// Special commands never count a b operand.
	sp := Special{Op: JSR, A: Value{Kind: ValNext, Word: 5}}
	if s := WordSize(sp.Encode()); s != 2 {
		t.Errorf("WordSize special got: %d expected: 2", s)
	}
}

func TestConditionalWord(t *testing.T) {
	cond := Basic{Op: IFE, B: Value{Kind: ValReg, Reg: A}, A: Value{Kind: ValReg, Reg: B}}
	if !ConditionalWord(cond.Encode()) {
		t.Error("ife not recognized as conditional")
	}
	norm := Basic{Op: SET, B: Value{Kind: ValReg, Reg: A}, A: Value{Kind: ValReg, Reg: B}}
	if ConditionalWord(norm.Encode()) {
		t.Error("set recognized as conditional")
	}
}
