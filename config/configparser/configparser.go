/*
 * DCPU16 - Configuration file parser.
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

package configparser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line>    := <keyword> <value> *(<option>)
 * <keyword> := <string>
 * <value>   := <string> | '"' *(<character>) '"'
 * <option>  := <string> [ '=' <value> ]
 *
 * Keywords are registered by the packages that own them and matched
 * case insensitively.
 */

// Option is one NAME or NAME=VALUE token after the keyword value.
type Option struct {
	Name     string
	EqualOpt string // Value after =, empty for bare options.
}

// Handler receives the keyword's value and trailing options.
type Handler func(value string, options []Option) error

var handlers = map[string]Handler{}

// Register installs a keyword handler. Call from package init.
func Register(keyword string, fn Handler) {
	handlers[strings.ToUpper(keyword)] = fn
}

// RegisterFile installs a handler for a keyword whose value is a file
// name. Identical to Register, the name records intent at call sites.
func RegisterFile(keyword string, fn Handler) {
	Register(keyword, fn)
}

// LoadConfigFile parses the named file, dispatching each line to its
// keyword's handler.
func LoadConfigFile(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber := 0
	scan := bufio.NewScanner(file)
	for scan.Scan() {
		lineNumber++
		if err := parseLine(scan.Text()); err != nil {
			return fmt.Errorf("%s line %d: %w", fileName, lineNumber, err)
		}
	}
	return scan.Err()
}

type optionLine struct {
	line string
	pos  int
}

func parseLine(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	line := optionLine{line: text}

	keyword := line.getWord()
	if keyword == "" {
		return nil
	}
	handler, ok := handlers[strings.ToUpper(keyword)]
	if !ok {
		return fmt.Errorf("unknown keyword: %s", keyword)
	}

	value := line.getWord()
	var options []Option
	for {
		name := line.getWord()
		if name == "" {
			break
		}
		opt := Option{Name: name}
		if line.peek() == '=' {
			line.pos++
			opt.EqualOpt = line.getWord()
		}
		options = append(options, opt)
	}
	return handler(value, options)
}

func (l *optionLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *optionLine) peek() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// getWord returns the next token: a quoted string or a run of
// characters up to whitespace or '='.
func (l *optionLine) getWord() string {
	l.skipSpace()
	if l.pos >= len(l.line) {
		return ""
	}
	if l.line[l.pos] == '"' {
		l.pos++
		start := l.pos
		for l.pos < len(l.line) && l.line[l.pos] != '"' {
			l.pos++
		}
		word := l.line[start:l.pos]
		if l.pos < len(l.line) {
			l.pos++
		}
		return word
	}
	start := l.pos
	for l.pos < len(l.line) {
		ch := rune(l.line[l.pos])
		if unicode.IsSpace(ch) || ch == '=' {
			break
		}
		l.pos++
	}
	return l.line[start:l.pos]
}
