/*
 * DCPU16 - Command parser.
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
	"strings"
	"unicode"

	core "github.com/nchashch/dcpu16/emu/core"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum match size.
	process func(*cmdLine, *core.Core) (bool, error)
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

var cmdList = []cmd{
	{name: "asm", min: 1, process: asm},
	{name: "continue", min: 1, process: cont},
	{name: "deposit", min: 1, process: deposit},
	{name: "examine", min: 1, process: examine},
	{name: "load", min: 1, process: load},
	{name: "quit", min: 1, process: quit},
	{name: "registers", min: 1, process: registers},
	{name: "start", min: 3, process: start},
	{name: "step", min: 3, process: step},
	{name: "stop", min: 3, process: stop},
}

// Execute the command line given. Returns true when the monitor should
// exit.
func ProcessCommand(commandLine string, core *core.Core) (bool, error) {
	line := cmdLine{line: commandLine}
	command := line.getWord()
	if command == "" {
		return false, nil
	}

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}
	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}

	return match[0].process(&line, core)
}

// Called to complete a command name during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()
	if !line.isEOL() {
		return nil
	}
	matches := []string{}
	for _, m := range matchList(name) {
		matches = append(matches, m.name)
	}
	return matches
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) < match.min || len(command) > len(match.name) {
		return false
	}
	return strings.HasPrefix(match.name, command)
}

func matchList(command string) []cmd {
	matches := []cmd{}
	for _, m := range cmdList {
		if matchCommand(m, command) {
			matches = append(matches, m)
		}
	}
	return matches
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) skipSpace() {
	for !l.isEOL() && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// getWord returns the next whitespace delimited token, lower cased.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

// rest returns everything left on the line.
func (l *cmdLine) rest() string {
	l.skipSpace()
	return l.line[l.pos:]
}

// getHex returns the next hex number, or -1 when there is none.
func (l *cmdLine) getHex() int {
	l.skipSpace()
	num := -1
	for !l.isEOL() {
		by := l.line[l.pos]
		var digit int
		switch {
		case by >= '0' && by <= '9':
			digit = int(by - '0')
		case by >= 'a' && by <= 'f':
			digit = int(by-'a') + 10
		case by >= 'A' && by <= 'F':
			digit = int(by-'A') + 10
		default:
			return num
		}
		if num < 0 {
			num = 0
		}
		num = num*16 + digit
		if num > 0xffff {
			return -1
		}
		l.pos++
	}
	return num
}
