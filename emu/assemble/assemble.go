/*
	   DCPU-16 Assembler

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
package assemble

import (
	"fmt"
	"unicode"

	op "github.com/nchashch/dcpu16/emu/opcode"
)

/*
   Grammar. Statements end in a semicolon, whitespace is free, the
   mnemonics are lower case and numbers are decimal:

     program  := command*
     command  := (basic | special) ';'
     basic    := basic_op value ',' value
     special  := special_op value
     value    := simple | register | number | '[' register ']'
               | '[' register '+' number ']' | '[' number ']'
     simple   := 'stack' | 'peek' | 'pick' number? | 'sp' | 'pc' | 'ex'
     register := 'a'|'b'|'c'|'x'|'y'|'z'|'i'|'j'
     number   := decimal digits, 16 bit

   Numbers always assemble as next word operands; the code generator
   never packs them into inline literals.
*/

// ParseError reports where assembly failed and what was expected there.
type ParseError struct {
	Pos      int // Byte offset in the source.
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: expected %s", e.Pos, e.Expected)
}

// Assemble parses source text into a command list.
func Assemble(src string) ([]op.Command, error) {
	s := scanner{src: src}
	cmds := []op.Command{}
	for {
		s.skipSpace()
		if s.eof() {
			return cmds, nil
		}
		cmd, err := s.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}

// GenerateCode serializes a command list to its word stream: per
// command the instruction word, then the next words of operand a and b
// in that order.
func GenerateCode(cmds []op.Command) []uint16 {
	words := []uint16{}
	for _, cmd := range cmds {
		words = append(words, cmd.Words()...)
	}
	return words
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// Skip forward until a non whitespace character is found.
func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(rune(s.src[s.pos])) {
		s.pos++
	}
}

// accept consumes ch if it is next, after whitespace.
func (s *scanner) accept(ch byte) bool {
	s.skipSpace()
	if !s.eof() && s.src[s.pos] == ch {
		s.pos++
		return true
	}
	return false
}

// name consumes a run of lower case letters.
func (s *scanner) name() string {
	s.skipSpace()
	start := s.pos
	for !s.eof() && s.src[s.pos] >= 'a' && s.src[s.pos] <= 'z' {
		s.pos++
	}
	return s.src[start:s.pos]
}

func (s *scanner) digitNext() bool {
	s.skipSpace()
	return !s.eof() && unicode.IsDigit(rune(s.src[s.pos]))
}

// number consumes a decimal number that fits in 16 bits.
func (s *scanner) number() (uint16, error) {
	s.skipSpace()
	start := s.pos
	num := 0
	for !s.eof() && unicode.IsDigit(rune(s.src[s.pos])) {
		num = num*10 + int(s.src[s.pos]-'0')
		if num > 0xffff {
			return 0, &ParseError{Pos: start, Expected: "16 bit number"}
		}
		s.pos++
	}
	if s.pos == start {
		return 0, &ParseError{Pos: start, Expected: "number"}
	}
	return uint16(num), nil
}

// command parses one statement up to and including its semicolon.
func (s *scanner) command() (op.Command, error) {
	start := s.pos
	mnemonic := s.name()

	if basicOp, ok := op.BasicOpByName(mnemonic); ok {
		b, err := s.value()
		if err != nil {
			return nil, err
		}
		if !s.accept(',') {
			return nil, &ParseError{Pos: s.pos, Expected: "','"}
		}
		a, err := s.value()
		if err != nil {
			return nil, err
		}
		if !s.accept(';') {
			return nil, &ParseError{Pos: s.pos, Expected: "';'"}
		}
		return op.Basic{Op: basicOp, B: b, A: a}, nil
	}

	if specialOp, ok := op.SpecialOpByName(mnemonic); ok {
		a, err := s.value()
		if err != nil {
			return nil, err
		}
		if !s.accept(';') {
			return nil, &ParseError{Pos: s.pos, Expected: "';'"}
		}
		return op.Special{Op: specialOp, A: a}, nil
	}

	return nil, &ParseError{Pos: start, Expected: "mnemonic"}
}

// value parses one operand.
func (s *scanner) value() (op.Value, error) {
	if s.digitNext() {
		num, err := s.number()
		if err != nil {
			return op.Value{}, err
		}
		return op.Value{Kind: op.ValNext, Word: num}, nil
	}

	if s.accept('[') {
		return s.deref()
	}

	start := s.pos
	word := s.name()
	switch word {
	case "stack":
		return op.Value{Kind: op.ValStack}, nil
	case "peek":
		return op.Value{Kind: op.ValPeek}, nil
	case "pick":
		// Optional displacement, zero when absent.
		if s.digitNext() {
			num, err := s.number()
			if err != nil {
				return op.Value{}, err
			}
			return op.Value{Kind: op.ValPick, Word: num}, nil
		}
		return op.Value{Kind: op.ValPick}, nil
	case "sp":
		return op.Value{Kind: op.ValSP}, nil
	case "pc":
		return op.Value{Kind: op.ValPC}, nil
	case "ex":
		return op.Value{Kind: op.ValEX}, nil
	}
	if reg, ok := registerByName(word); ok {
		return op.Value{Kind: op.ValReg, Reg: reg}, nil
	}
	return op.Value{}, &ParseError{Pos: start, Expected: "operand"}
}

// deref parses the bracketed forms after the opening bracket.
func (s *scanner) deref() (op.Value, error) {
	if s.digitNext() {
		num, err := s.number()
		if err != nil {
			return op.Value{}, err
		}
		if !s.accept(']') {
			return op.Value{}, &ParseError{Pos: s.pos, Expected: "']'"}
		}
		return op.Value{Kind: op.ValDerefNext, Word: num}, nil
	}

	start := s.pos
	word := s.name()
	reg, ok := registerByName(word)
	if !ok {
		return op.Value{}, &ParseError{Pos: start, Expected: "register"}
	}
	if s.accept('+') {
		num, err := s.number()
		if err != nil {
			return op.Value{}, err
		}
		if !s.accept(']') {
			return op.Value{}, &ParseError{Pos: s.pos, Expected: "']'"}
		}
		return op.Value{Kind: op.ValIndexReg, Reg: reg, Word: num}, nil
	}
	if !s.accept(']') {
		return op.Value{}, &ParseError{Pos: s.pos, Expected: "']'"}
	}
	return op.Value{Kind: op.ValDerefReg, Reg: reg}, nil
}

var registerNames = map[string]op.Register{
	"a": op.A, "b": op.B, "c": op.C, "x": op.X,
	"y": op.Y, "z": op.Z, "i": op.I, "j": op.J,
}

func registerByName(name string) (op.Register, bool) {
	reg, ok := registerNames[name]
	return reg, ok
}
