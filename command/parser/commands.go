/*
 * DCPU16 - Monitor commands.
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

package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nchashch/dcpu16/emu/assemble"
	core "github.com/nchashch/dcpu16/emu/core"
	dis "github.com/nchashch/dcpu16/emu/disassemble"
	"github.com/nchashch/dcpu16/emu/loader"
	"github.com/nchashch/dcpu16/util/hex"
)

var errRunning = errors.New("stop the machine first")

func quit(_ *cmdLine, _ *core.Core) (bool, error) {
	return true, nil
}

// step [count] - execute instructions one at a time.
func step(line *cmdLine, c *core.Core) (bool, error) {
	if c.Running() {
		return false, errRunning
	}
	count := line.getHex()
	if count < 0 {
		count = 1
	}
	for range count {
		pc, err := c.StepOne()
		if err != nil {
			return false, err
		}
		text, _ := dis.Disassemble(c.Machine().Read(pc, 3))
		fmt.Printf("%04x: %s\n", pc, text)
	}
	return false, nil
}

// start [addr] - begin free running, optionally from an address.
func start(line *cmdLine, c *core.Core) (bool, error) {
	if addr := line.getHex(); addr >= 0 {
		if c.Running() {
			return false, errRunning
		}
		c.Machine().SetPC(uint16(addr))
	}
	c.Run()
	return false, nil
}

// continue - resume free running where the machine stopped.
func cont(_ *cmdLine, c *core.Core) (bool, error) {
	c.Run()
	return false, nil
}

// stop - halt the machine.
func stop(_ *cmdLine, c *core.Core) (bool, error) {
	c.Halt()
	return false, nil
}

// registers - show machine state.
func registers(_ *cmdLine, c *core.Core) (bool, error) {
	fmt.Println(c.Registers())
	return false, nil
}

// examine addr [count] - disassemble instructions with their words.
func examine(line *cmdLine, c *core.Core) (bool, error) {
	if c.Running() {
		return false, errRunning
	}
	addr := line.getHex()
	if addr < 0 {
		return false, errors.New("examine needs an address")
	}
	count := line.getHex()
	if count < 0 {
		count = 1
	}
	pos := uint16(addr)
	for range count {
		words := c.Machine().Read(pos, 3)
		text, size := dis.Disassemble(words)
		var str strings.Builder
		hex.FormatWords(&str, words[:size])
		fmt.Printf("%04x: %-14s  %s\n", pos, str.String(), text)
		pos += size
	}
	return false, nil
}

// deposit addr word... - write words to memory.
func deposit(line *cmdLine, c *core.Core) (bool, error) {
	if c.Running() {
		return false, errRunning
	}
	addr := line.getHex()
	if addr < 0 {
		return false, errors.New("deposit needs an address")
	}
	pos := uint16(addr)
	n := 0
	for {
		word := line.getHex()
		if word < 0 {
			break
		}
		c.Machine().WriteMem(pos, uint16(word))
		pos++
		n++
	}
	if n == 0 {
		return false, errors.New("deposit needs at least one word")
	}
	return false, nil
}

// asm addr statements - assemble source into memory.
func asm(line *cmdLine, c *core.Core) (bool, error) {
	if c.Running() {
		return false, errRunning
	}
	addr := line.getHex()
	if addr < 0 {
		return false, errors.New("asm needs an address")
	}
	cmds, err := assemble.Assemble(line.rest())
	if err != nil {
		return false, err
	}
	words := assemble.GenerateCode(cmds)
	pos := uint16(addr)
	for _, word := range words {
		c.Machine().WriteMem(pos, word)
		pos++
	}
	fmt.Printf("%d words at %04x\n", len(words), addr)
	return false, nil
}

// load file - install a ROM image.
func load(line *cmdLine, c *core.Core) (bool, error) {
	if c.Running() {
		return false, errRunning
	}
	fileName := line.rest()
	if fileName == "" {
		return false, errors.New("load needs a file name")
	}
	rom, err := loader.ReadROM(fileName, false)
	if err != nil {
		return false, err
	}
	c.Machine().Load(rom)
	c.Machine().SetPC(0)
	return false, nil
}
