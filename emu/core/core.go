/*
   Core DCPU-16 emulator loop.

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

package core

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nchashch/dcpu16/emu/cpu"
	dis "github.com/nchashch/dcpu16/emu/disassemble"
	"github.com/nchashch/dcpu16/emu/event"
	op "github.com/nchashch/dcpu16/emu/opcode"
	"github.com/nchashch/dcpu16/util/debug"
	"github.com/nchashch/dcpu16/util/hex"
)

// Core drives one machine: it pumps Step, advances the event list by
// the cycles each instruction took, and records the error that halted
// a run. The monitor goes through a Core and reaches the machine itself
// through Machine() only while the core is not running, so machine state
// is only touched at instruction boundaries.
type Core struct {
	mach    *cpu.Machine
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	done    chan struct{} // Signal to shut down the loop.
	haltErr error
}

// NewCore wraps a machine in a run loop.
func NewCore(mach *cpu.Machine) *Core {
	return &Core{
		mach: mach,
		done: make(chan struct{}),
	}
}

// Machine returns the wrapped machine. Callers must hold the core
// stopped while inspecting or changing state.
func (core *Core) Machine() *cpu.Machine {
	return core.mach
}

// Start runs the loop until Stop. Run in its own goroutine.
func (core *Core) Start() {
	core.wg.Add(1)
	defer core.wg.Done()
	for {
		core.mu.Lock()
		if core.running {
			if err := core.step(); err != nil {
				core.haltErr = err
				core.running = false
				slog.Info("CPU halted: " + err.Error())
			}
			core.mu.Unlock()
		} else {
			if event.AnyEvent() {
				event.Advance(1)
			}
			core.mu.Unlock()
			time.Sleep(time.Millisecond)
		}
		select {
		case <-core.done:
			slog.Info("Shutdown CPU core")
			return
		default:
		}
	}
}

// Stop shuts the loop down.
func (core *Core) Stop() {
	close(core.done)
	done := make(chan struct{})
	go func() {
		core.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(time.Second):
		slog.Warn("Timed out waiting for CPU to finish.")
		return
	}
}

// Run lets the loop execute freely.
func (core *Core) Run() {
	core.mu.Lock()
	core.running = true
	core.haltErr = nil
	core.mu.Unlock()
}

// Halt pauses execution.
func (core *Core) Halt() {
	core.mu.Lock()
	core.running = false
	core.mu.Unlock()
}

// Running reports whether the loop is executing.
func (core *Core) Running() bool {
	core.mu.Lock()
	defer core.mu.Unlock()
	return core.running
}

// HaltError returns the error that stopped the last run, if any.
func (core *Core) HaltError() error {
	core.mu.Lock()
	defer core.mu.Unlock()
	return core.haltErr
}

// StepOne executes a single instruction while halted.
func (core *Core) StepOne() (uint16, error) {
	core.mu.Lock()
	defer core.mu.Unlock()
	err := core.step()
	if err != nil {
		core.haltErr = err
	}
	return core.mach.PC(), err
}

// RunToHalt executes until an error stops the machine. Batch mode.
func (core *Core) RunToHalt() error {
	core.mu.Lock()
	defer core.mu.Unlock()
	for {
		if err := core.step(); err != nil {
			core.haltErr = err
			return err
		}
	}
}

// step executes one instruction and advances device events by however
// many cycles it consumed. Caller holds the lock.
func (core *Core) step() error {
	if debug.Enabled(debug.TraceCPU) {
		pc := core.mach.PC()
		text, _ := dis.Disassemble(core.mach.Read(pc, 3))
		debug.Debugf("CPU", debug.TraceCPU, "%04x %s", pc, text)
	}
	before := core.mach.Cycles()
	_, err := core.mach.Step()
	event.Advance(int(core.mach.Cycles() - before))
	return err
}

// Registers formats the machine state for the monitor.
func (core *Core) Registers() string {
	core.mu.Lock()
	defer core.mu.Unlock()
	m := core.mach
	var str strings.Builder
	for r := op.A; r <= op.J; r++ {
		str.WriteString(strings.ToUpper(r.String()) + "=")
		hex.FormatWord(&str, m.Reg(r))
		str.WriteByte(' ')
	}
	str.WriteString("\nPC=")
	hex.FormatWord(&str, m.PC())
	str.WriteString(" SP=")
	hex.FormatWord(&str, m.SP())
	str.WriteString(" EX=")
	hex.FormatWord(&str, m.EX())
	str.WriteString(" IA=")
	hex.FormatWord(&str, m.IA())
	fmt.Fprintf(&str, " cycles=%d", m.Cycles())
	return str.String()
}
