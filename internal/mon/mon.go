// Package mon records timings of the operations that run under it.
package mon

import (
	"sync/atomic"
	"time"
)

const (
	ringShift = 6 // 64 entries
	ringElems = 1 << ringShift
	ringMask  = ringElems - 1
)

// Thunk times executions of a single operation. The zero value is
// ready to use: declare one next to the function it measures and wrap
// the body with Start and Stop.
type Thunk struct {
	total   int64
	current int64
	durs    [ringElems]int64
}

// Start begins timing an execution, counting it in flight until the
// returned Timer is stopped.
func (th *Thunk) Start() Timer {
	atomic.AddInt64(&th.current, 1)
	return Timer{thunk: th, start: time.Now()}
}

// Total returns how many executions have completed.
func (th *Thunk) Total() int64 { return atomic.LoadInt64(&th.total) }

// Current returns how many executions are in flight.
func (th *Thunk) Current() int64 { return atomic.LoadInt64(&th.current) }

// ringLen returns the number of valid entries in durs.
func (th *Thunk) ringLen() int {
	n := th.Total()
	if n >= ringElems {
		return ringElems
	}
	return int(n)
}

// Durations returns a copy of the most recently recorded durations in
// nanoseconds.
func (th *Thunk) Durations() []int64 {
	out := make([]int64, th.ringLen())
	for i := range out {
		out[i] = atomic.LoadInt64(&th.durs[i&ringMask])
	}
	return out
}

// Average returns the average recorded duration in nanoseconds.
func (th *Thunk) Average() float64 {
	total := int64(0)
	n := th.ringLen()
	for i := 0; i < n; i++ {
		total += atomic.LoadInt64(&th.durs[i])
	}
	return float64(total) / float64(n)
}

// Timer is one in-flight execution of the Thunk that started it.
type Timer struct {
	thunk *Thunk
	start time.Time
}

// Stop records the execution's duration in its Thunk.
func (t Timer) Stop() {
	dur := time.Since(t.start).Nanoseconds()
	loc := &t.thunk.durs[(atomic.AddInt64(&t.thunk.total, 1)-1)&ringMask]
	atomic.StoreInt64(loc, dur)
	atomic.AddInt64(&t.thunk.current, -1)
}
