/*
 * DCPU16 - Disassembler tests.
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
	"testing"

	"github.com/nchashch/dcpu16/emu/assemble"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		words []uint16
		text  string
		size  uint16
	}{
		{[]uint16{0x7c01, 0x0030}, "set a, 48;", 2},
		{[]uint16{(0x09 << 10) | (0x00 << 5) | 0x02}, "add a, [b];", 1},
		{[]uint16{(0x1f << 10) | (0x01 << 5)}, "jsr 4096;", 2},
	}
	cases[2].words = append(cases[2].words, 4096)
	for _, tc := range cases {
		text, size := Disassemble(tc.words)
		if text != tc.text {
			t.Errorf("text got: %q expected: %q", text, tc.text)
		}
		if size != tc.size {
			t.Errorf("size got: %d expected: %d", size, tc.size)
		}
	}
}

func TestDisassembleBadWord(t *testing.T) {
	text, size := Disassemble([]uint16{0x0000})
	if size != 1 {
		t.Errorf("size got: %d expected: 1", size)
	}
	if text != "word 0" {
		t.Errorf("text got: %q expected: %q", text, "word 0")
	}
}

// Disassembled text reassembles to the same words.
func TestDisassembleRoundTrip(t *testing.T) {
	src := "set b, 1001; add a, [b]; ifl b, c; jsr 512; set [b + 3], peek;"
	cmds, err := assemble.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	words := assemble.GenerateCode(cmds)

	text := ""
	for pos := 0; pos < len(words); {
		line, size := Disassemble(words[pos:])
		text += line + " "
		pos += int(size)
	}

	again, err := assemble.Assemble(text)
	if err != nil {
		t.Fatalf("reassembly failed: %v", err)
	}
	regen := assemble.GenerateCode(again)
	if len(regen) != len(words) {
		t.Fatalf("word count got: %d expected: %d", len(regen), len(words))
	}
	for i, w := range regen {
		if w != words[i] {
			t.Errorf("word %d got: %04x expected: %04x", i, w, words[i])
		}
	}
}
