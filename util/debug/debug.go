/*
 * DCPU16 - Log debug data to a file
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

package debug

import (
	"fmt"
	"os"

	config "github.com/nchashch/dcpu16/config/configparser"
)

// Trace masks. Options on the DEBUGFILE config line select them.
const (
	TraceCPU = 1 << iota // One line per executed instruction
	TraceInt             // Interrupt delivery and queueing
	TraceDev             // Hardware instruction traffic
)

var (
	logFile *os.File
	mask    int
)

// Enabled reports whether a trace level is on.
func Enabled(level int) bool {
	return logFile != nil && (mask&level) != 0
}

// Debugf writes a trace message when its level is enabled.
func Debugf(module string, level int, format string, a ...interface{}) {
	if Enabled(level) {
		fmt.Fprintf(logFile, module+": "+format+"\n", a...)
	}
}

// register the DEBUGFILE keyword on initialize.
func init() {
	config.RegisterFile("DEBUGFILE", create)
}

// Create the debug output file. Options name trace levels, all of them
// when none are given.
func create(fileName string, options []config.Option) error {
	if logFile != nil {
		return fmt.Errorf("can't have more than one debug file, previous: %s", logFile.Name())
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s", fileName)
	}

	mask = 0
	for _, opt := range options {
		switch opt.Name {
		case "CPU":
			mask |= TraceCPU
		case "INT":
			mask |= TraceInt
		case "DEV":
			mask |= TraceDev
		default:
			file.Close()
			return fmt.Errorf("unknown debug option: %s", opt.Name)
		}
	}
	if mask == 0 {
		mask = TraceCPU | TraceInt | TraceDev
	}

	logFile = file
	return nil
}
