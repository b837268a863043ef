/*
 * DCPU16 - Instruction word codec.
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

/*
   An instruction word packs three fields, high bits to low:

     aaaaaabbbbbooooo

   o is the 5-bit basic opcode, b the 5-bit second operand and a the
   6-bit first operand. When o is zero the b field holds the special
   opcode and a is its single operand. Operand modes that consume a
   next word take it from the word stream after the instruction word,
   a first, then b.
*/

const (
	opMask  = 0x001f
	bShift  = 5
	bMask   = 0x001f << bShift
	aShift  = 10
	aMask   = 0x003f << aShift
)

// DecodeError reports an instruction word with an unassigned opcode or
// operand sub-field.
type DecodeError struct {
	Word  uint16
	Field string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %04x: unassigned %s", e.Word, e.Field)
}

// Command is a decoded instruction, either Basic or Special.
type Command interface {
	// Encode packs the command back into its instruction word.
	Encode() uint16
	// Size is the full encoded length in words, next words included.
	Size() uint16
	// Cycles is the base cost: op cycles plus one per next word operand.
	Cycles() int
	// Words is the full word stream: instruction word, then the next
	// words of a and b in that order.
	Words() []uint16
}

// Basic is a two operand command. B is the destination slot, A the source.
type Basic struct {
	Op BasicOp
	B  Value
	A  Value
}

// Special is a one operand command.
type Special struct {
	Op SpecialOp
	A  Value
}

// Decode converts an instruction word to a Command. fetch supplies
// successive next words; it is called once per operand that needs one,
// a before b.
func Decode(word uint16, fetch func() uint16) (Command, error) {
	opCode := word & opMask
	bCode := (word & bMask) >> bShift
	aCode := (word & aMask) >> aShift

	if opCode == 0 {
		op, ok := NewSpecialOp(bCode)
		if !ok {
			return nil, &DecodeError{Word: word, Field: "special opcode"}
		}
		a, ok := decodeValue(aCode, fetch)
		if !ok {
			return nil, &DecodeError{Word: word, Field: "operand a"}
		}
		return Special{Op: op, A: a}, nil
	}

	op, ok := NewBasicOp(opCode)
	if !ok {
		return nil, &DecodeError{Word: word, Field: "opcode"}
	}
	a, ok := decodeValue(aCode, fetch)
	if !ok {
		return nil, &DecodeError{Word: word, Field: "operand a"}
	}
	b, ok := decodeValue(bCode, fetch)
	if !ok {
		return nil, &DecodeError{Word: word, Field: "operand b"}
	}
	return Basic{Op: op, B: b, A: a}, nil
}

// WordSize computes the encoded length of the instruction starting with
// word without validating the opcode. Usable on arbitrary words, which
// branch skipping needs.
func WordSize(word uint16) uint16 {
	size := uint16(1)
	if needsNextWord((word & aMask) >> aShift) {
		size++
	}
	if word&opMask != 0 && needsNextWord((word&bMask)>>bShift) {
		size++
	}
	return size
}

// ConditionalWord reports whether a raw instruction word holds one of the
// IF family ops.
func ConditionalWord(word uint16) bool {
	return BasicOp(word & opMask).Conditional()
}

func (c Basic) Encode() uint16 {
	return (c.A.Code() << aShift) | (c.B.Code() << bShift) | c.Op.Code()
}

func (c Basic) Size() uint16 {
	size := uint16(1)
	if c.A.HasNextWord() {
		size++
	}
	if c.B.HasNextWord() {
		size++
	}
	return size
}

func (c Basic) Cycles() int {
	return c.Op.Cycles() + c.A.Cycles() + c.B.Cycles()
}

func (c Basic) Words() []uint16 {
	words := []uint16{c.Encode()}
	if c.A.HasNextWord() {
		words = append(words, c.A.Word)
	}
	if c.B.HasNextWord() {
		words = append(words, c.B.Word)
	}
	return words
}

func (c Basic) String() string {
	return fmt.Sprintf("%s %s, %s", c.Op, c.B, c.A)
}

func (c Special) Encode() uint16 {
	// The special opcode occupies the b field, bits 5..9.
	return (c.A.Code() << aShift) | (c.Op.Code() << bShift)
}

func (c Special) Size() uint16 {
	if c.A.HasNextWord() {
		return 2
	}
	return 1
}

func (c Special) Cycles() int {
	return c.Op.Cycles() + c.A.Cycles()
}

func (c Special) Words() []uint16 {
	words := []uint16{c.Encode()}
	if c.A.HasNextWord() {
		words = append(words, c.A.Word)
	}
	return words
}

func (c Special) String() string {
	return fmt.Sprintf("%s %s", c.Op, c.A)
}
