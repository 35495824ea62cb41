// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"container/heap"
	"fmt"
	"strings"
)

// TickHandler is implemented by devices that are driven by virtual time.
type TickHandler interface {
	// Tick performs the work due at the current virtual time and returns the
	// virtual time of the next call.
	Tick() int64
}

// Event is the scheduler's record of a TickHandler.
type Event struct {
	label   string
	handler TickHandler
	when    int64

	// position in the heap and insertion order
	index int
	seq   uint64
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.label)
	if label == "" {
		label = "[unlabelled event]"
	}
	return fmt.Sprintf("%s -> %d", label, ev.when)
}

// When returns the virtual time at which the event's handler is next called.
func (ev *Event) When() int64 {
	return ev.when
}

// Label returns the label given to the event when it was added.
func (ev *Event) Label() string {
	return ev.label
}

type queue []*Event

func (q queue) Len() int {
	return len(q)
}

func (q queue) Less(i, j int) bool {
	if q[i].when == q[j].when {
		return q[i].seq < q[j].seq
	}
	return q[i].when < q[j].when
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	ev := x.(*Event)
	ev.index = len(*q)
	*q = append(*q, ev)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	ev.index = -1
	*q = old[:n-1]
	return ev
}

// Scheduler calls TickHandlers in virtual time order.
type Scheduler struct {
	now    int64
	events queue
	seq    uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (sch *Scheduler) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("now: %d\n", sch.now))
	for _, ev := range sch.events {
		s.WriteString(ev.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Now returns the current virtual time.
func (sch *Scheduler) Now() int64 {
	return sch.now
}

// Add a TickHandler to the scheduler. The handler is first called at the
// virtual time indicated by when, or immediately if when is in the past.
func (sch *Scheduler) Add(label string, handler TickHandler, when int64) *Event {
	sch.seq++
	ev := &Event{
		label:   label,
		handler: handler,
		when:    max(when, sch.now),
		seq:     sch.seq,
	}
	heap.Push(&sch.events, ev)
	return ev
}

// Remove an event from the scheduler. Removing an event that is not in the
// scheduler has no effect.
func (sch *Scheduler) Remove(ev *Event) {
	if ev == nil || ev.index < 0 || ev.index >= len(sch.events) || sch.events[ev.index] != ev {
		return
	}
	heap.Remove(&sch.events, ev.index)
}

// Len returns the number of events in the scheduler.
func (sch *Scheduler) Len() int {
	return len(sch.events)
}

// Step calls the earliest TickHandler and advances the virtual time to the
// time of that call. Returns false if there are no events.
func (sch *Scheduler) Step() bool {
	if len(sch.events) == 0 {
		return false
	}

	ev := sch.events[0]
	sch.now = ev.when

	// a handler cannot ask to be called in the past
	ev.when = max(ev.handler.Tick(), sch.now)

	// the event may have been removed by the handler
	if ev.index >= 0 && ev.index < len(sch.events) && sch.events[ev.index] == ev {
		sch.seq++
		ev.seq = sch.seq
		heap.Fix(&sch.events, ev.index)
	}

	return true
}

// RunUntil calls every TickHandler due at or before the specified virtual
// time. The virtual time is then set to t.
func (sch *Scheduler) RunUntil(t int64) {
	for len(sch.events) > 0 && sch.events[0].when <= t {
		sch.Step()
	}
	sch.now = max(sch.now, t)
}

// RunWhile calls TickHandlers until the continueCheck function returns false
// or the scheduler is empty. The check is made before every call.
func (sch *Scheduler) RunWhile(continueCheck func() bool) {
	for continueCheck() && sch.Step() {
	}
}
