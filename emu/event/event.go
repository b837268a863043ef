package event

/*
 * DCPU16 - Cycle event scheduler
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

// Callbacks fire after a number of executed guest cycles. The list keeps
// relative times: each entry stores the delay past the entry before it,
// so advancing only touches the head.

type Callback = func(iarg int)

type event struct {
	time  int      // Cycles to event, relative to the previous entry
	owner any      // Who scheduled the event, for cancellation
	cb    Callback // Function to call back
	iarg  int      // Integer argument
	prev  *event
	next  *event
}

type eventList struct {
	head *event
	tail *event
}

var el eventList

// AddEvent schedules a callback after time cycles. A zero time fires the
// callback immediately.
func AddEvent(owner any, cb Callback, time int, iarg int) {
	if time == 0 {
		cb(iarg)
		return
	}

	ev := &event{owner: owner, cb: cb, time: time, iarg: iarg}

	evptr := el.head
	// Empty list, new event is the whole list.
	if evptr == nil {
		el.head = ev
		el.tail = ev
		return
	}

	// Scan for the place to insert it.
	for evptr != nil {
		if ev.time <= evptr.time {
			// Following event keeps its absolute time.
			evptr.time -= ev.time
			ev.prev = evptr.prev
			ev.next = evptr
			evptr.prev = ev
			if ev.prev != nil {
				ev.prev.next = ev
			} else {
				el.head = ev
			}
			return
		}
		// Make the new event relative to this one and move on.
		ev.time -= evptr.time
		evptr = evptr.next
	}

	// Ran off the end, put it on the tail.
	ev.prev = el.tail
	el.tail.next = ev
	el.tail = ev
}

// CancelEvent removes a pending event identified by owner and argument.
func CancelEvent(owner any, iarg int) {
	evptr := el.head

	for evptr != nil {
		if evptr.owner == owner && evptr.iarg == iarg {
			// Give this entry's remaining time to the next one.
			nxt := evptr.next
			if nxt != nil {
				nxt.time += evptr.time
				nxt.prev = evptr.prev
			} else {
				el.tail = evptr.prev
			}
			if evptr.prev != nil {
				evptr.prev.next = evptr.next
			} else {
				el.head = evptr.next
			}
			return
		}
		evptr = evptr.next
	}
}

// AnyEvent reports whether anything is scheduled.
func AnyEvent() bool {
	return el.head != nil
}

// Advance moves time forward by t cycles, firing everything that comes
// due.
func Advance(t int) {
	evptr := el.head
	if evptr == nil {
		return
	}
	evptr.time -= t
	for evptr != nil && evptr.time <= 0 {
		carry := evptr.time
		el.head = evptr.next
		if el.head != nil {
			el.head.prev = nil
			el.head.time += carry
		} else {
			el.tail = nil
		}
		evptr.cb(evptr.iarg)
		evptr = el.head
	}
}
