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

package scheduler_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/NishiOwO/86Box/hardware/scheduler"
	"github.com/NishiOwO/86Box/test"
)

// device is called at a fixed interval and records the time of each call
type device struct {
	name     string
	interval int64
	clock    int64
	log      *[]string
	calls    []int64
	now      func() int64
}

func (d *device) Tick() int64 {
	*d.log = append(*d.log, d.name)
	d.calls = append(d.calls, d.now())
	d.clock += d.interval
	return d.clock
}

func TestOrdering(t *testing.T) {
	sch := scheduler.NewScheduler()
	var log []string

	a := &device{name: "a", interval: 3, log: &log, now: sch.Now}
	b := &device{name: "b", interval: 2, log: &log, now: sch.Now}
	sch.Add("a", a, 0)
	sch.Add("b", b, 0)

	sch.RunUntil(6)

	// a at 0,3,6; b at 0,2,4,6. ties are resolved by the order in which
	// the events were last scheduled
	if diff := deep.Equal(log, []string{"a", "b", "b", "a", "b", "a", "b"}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(a.calls, []int64{0, 3, 6}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(b.calls, []int64{0, 2, 4, 6}); diff != nil {
		t.Error(diff)
	}
	test.ExpectEquality(t, sch.Now(), int64(6))
}

func TestRunUntilAdvancesTime(t *testing.T) {
	sch := scheduler.NewScheduler()
	sch.RunUntil(100)
	test.ExpectEquality(t, sch.Now(), int64(100))
	test.ExpectFailure(t, sch.Step())
}

// backwards returns a time in the past on every call
type backwards struct {
	calls int
}

func (b *backwards) Tick() int64 {
	b.calls++
	return -10
}

func TestNoTimeTravel(t *testing.T) {
	sch := scheduler.NewScheduler()
	var log []string
	d := &device{name: "d", interval: 5, clock: 5, log: &log, now: sch.Now}
	b := &backwards{}

	sch.Add("d", d, 5)
	ev := sch.Add("b", b, 0)

	// backwards is called at time zero repeatedly but time never decreases
	sch.Step()
	sch.Step()
	test.ExpectEquality(t, b.calls, 2)
	test.ExpectEquality(t, sch.Now(), int64(0))
	test.ExpectEquality(t, ev.When(), int64(0))

	sch.Remove(ev)
	sch.RunUntil(10)
	test.ExpectEquality(t, b.calls, 2)
	if diff := deep.Equal(d.calls, []int64{5, 10}); diff != nil {
		t.Error(diff)
	}
}

func TestRunWhile(t *testing.T) {
	sch := scheduler.NewScheduler()
	var log []string
	d := &device{name: "d", interval: 1, log: &log, now: sch.Now}
	sch.Add("d", d, 0)

	sch.RunWhile(func() bool { return len(log) < 4 })
	test.ExpectEquality(t, len(log), 4)
	test.ExpectEquality(t, sch.Len(), 1)
}
