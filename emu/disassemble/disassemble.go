/*
 * DCPU16 - Disassembler.
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

package disassemble

import (
	"fmt"

	op "github.com/nchashch/dcpu16/emu/opcode"
)

// Disassemble decodes the instruction at the start of words and returns
// its mnemonic text and length. Operands print in the assembler's
// grammar so output can be fed back through it. A word that does not
// decode comes back as a plain word dump of length one.
func Disassemble(words []uint16) (string, uint16) {
	if len(words) == 0 {
		return "", 0
	}
	pos := 0
	fetch := func() uint16 {
		pos++
		if pos >= len(words) {
			return 0
		}
		return words[pos]
	}
	cmd, err := op.Decode(words[0], fetch)
	if err != nil {
		return fmt.Sprintf("word %d", words[0]), 1
	}
	return fmt.Sprintf("%v;", cmd), cmd.Size()
}
