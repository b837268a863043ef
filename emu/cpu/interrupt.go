/*
 * DCPU16 - Interrupt controller.
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

package cpu

import (
	op "github.com/nchashch/dcpu16/emu/opcode"
)

// trigger raises an interrupt with the given message. With IA zero
// interrupts are disabled and the message is dropped. While queueing is
// on the message joins the queue instead of preempting.
func (m *Machine) trigger(msg uint16) error {
	if m.ia == 0 {
		return nil
	}
	if m.intQueueing {
		return m.enqueue(msg)
	}
	m.deliver(msg)
	return nil
}

// deliver transfers control to the interrupt handler: push PC, push A,
// jump to IA with the message in A, and turn queueing on so the handler
// runs without reentry.
func (m *Machine) deliver(msg uint16) {
	if m.ia == 0 {
		return
	}
	m.push(m.pc)
	m.push(m.reg[op.A])
	m.pc = m.ia
	m.reg[op.A] = msg
	m.intQueueing = true
}

// enqueue appends a message to the interrupt queue. Past the capacity
// the DCPU-16 is specified to catch fire; that is surfaced as a fatal
// error.
func (m *Machine) enqueue(msg uint16) error {
	if len(m.intQueue) >= MaxIntQueue {
		return ErrQueueOverflow
	}
	m.intQueue = append(m.intQueue, msg)
	return nil
}

// PendingInterrupts returns the current queue depth.
func (m *Machine) PendingInterrupts() int {
	return len(m.intQueue)
}
