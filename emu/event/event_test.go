package event

/*
 * DCPU16 - Cycle event scheduler tests
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

import "testing"

type recorder struct {
	fired []int
}

func (r *recorder) cb(iarg int) {
	r.fired = append(r.fired, iarg)
}

func clear() {
	el.head = nil
	el.tail = nil
}

func TestImmediateEvent(t *testing.T) {
	clear()
	r := &recorder{}
	AddEvent(r, r.cb, 0, 7)
	if len(r.fired) != 1 || r.fired[0] != 7 {
		t.Errorf("immediate event got: %v expected: [7]", r.fired)
	}
	if AnyEvent() {
		t.Error("immediate event left something scheduled")
	}
}

func TestEventOrder(t *testing.T) {
	clear()
	r := &recorder{}
	AddEvent(r, r.cb, 30, 3)
	AddEvent(r, r.cb, 10, 1)
	AddEvent(r, r.cb, 20, 2)

	Advance(10)
	if len(r.fired) != 1 || r.fired[0] != 1 {
		t.Errorf("after 10 got: %v expected: [1]", r.fired)
	}
	Advance(10)
	if len(r.fired) != 2 || r.fired[1] != 2 {
		t.Errorf("after 20 got: %v expected: [1 2]", r.fired)
	}
	Advance(10)
	if len(r.fired) != 3 || r.fired[2] != 3 {
		t.Errorf("after 30 got: %v expected: [1 2 3]", r.fired)
	}
	if AnyEvent() {
		t.Error("events left after all fired")
	}
}

func TestOvershoot(t *testing.T) {
	clear()
	r := &recorder{}
	AddEvent(r, r.cb, 5, 1)
	AddEvent(r, r.cb, 8, 2)
	// One large step fires both.
	Advance(50)
	if len(r.fired) != 2 {
		t.Errorf("overshoot got: %v expected: [1 2]", r.fired)
	}
}

func TestCancelEvent(t *testing.T) {
	clear()
	r := &recorder{}
	AddEvent(r, r.cb, 10, 1)
	AddEvent(r, r.cb, 20, 2)
	AddEvent(r, r.cb, 30, 3)
	CancelEvent(r, 2)
	Advance(30)
	if len(r.fired) != 2 || r.fired[0] != 1 || r.fired[1] != 3 {
		t.Errorf("after cancel got: %v expected: [1 3]", r.fired)
	}
}

func TestRescheduleFromCallback(t *testing.T) {
	clear()
	r := &recorder{}
	var again Callback
	again = func(iarg int) {
		r.cb(iarg)
		if iarg > 0 {
			AddEvent(r, again, 5, iarg-1)
		}
	}
	AddEvent(r, again, 5, 2)
	for range 3 {
		Advance(5)
	}
	if len(r.fired) != 3 {
		t.Errorf("reschedule got: %v expected: [2 1 0]", r.fired)
	}
}
