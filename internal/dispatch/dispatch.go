// Package dispatch implements the single-threaded cooperative runtime
// the session manager pumps: a FIFO queue of runnable continuations
// plus a due-time-ordered timer heap.
package dispatch

import (
	"container/heap"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var handleSeq atomic.Uint64

// Handle identifies a queued runnable or an armed timer. Handles are
// monotonically assigned and never reused.
type Handle uint64

func nextHandle() Handle {
	return Handle(handleSeq.Add(1))
}

type timerEntry struct {
	handle   Handle
	due      time.Time
	period   time.Duration // zero for one-shot
	fn       func()
	seq      uint64 // insertion order, breaks due-time ties
	index    int    // heap.Interface bookkeeping
	cancelled bool
}

type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

type runnable struct {
	handle Handle
	fn     func()
}

// Dispatcher is the FIFO-queue-plus-timer-heap runtime. Not safe for
// concurrent use of PumpMessages from multiple goroutines; Post, Push
// and the timer methods may be called from any goroutine, guarded by
// an internal mutex.
type Dispatcher struct {
	logger *slog.Logger

	mu      sync.Mutex
	queue   []runnable
	timers  timerHeap
	timerSeq uint64
}

// New creates an empty dispatcher.
func New(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger}
}

// Post enqueues fn at the tail of the run queue.
func (d *Dispatcher) Post(fn func()) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := nextHandle()
	d.queue = append(d.queue, runnable{handle: h, fn: fn})
	return h
}

// Push enqueues fn at the head of the run queue, for inline
// continuations that must resume before anything already queued.
func (d *Dispatcher) Push(fn func()) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := nextHandle()
	d.queue = append([]runnable{{handle: h, fn: fn}}, d.queue...)
	return h
}

// AddTimer arms a one-shot timer that runs fn after delay.
func (d *Dispatcher) AddTimer(delay time.Duration, fn func()) Handle {
	return d.addTimer(delay, 0, fn)
}

// AddIntervalTimer arms a timer that runs fn every period, re-arming
// itself after each firing.
func (d *Dispatcher) AddIntervalTimer(period time.Duration, fn func()) Handle {
	return d.addTimer(period, period, fn)
}

func (d *Dispatcher) addTimer(delay, period time.Duration, fn func()) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := nextHandle()
	d.timerSeq++
	heap.Push(&d.timers, &timerEntry{
		handle: h,
		due:    time.Now().Add(delay),
		period: period,
		fn:     fn,
		seq:    d.timerSeq,
	})
	return h
}

// CancelTimer disarms the timer identified by h. No-op if h is not
// (or no longer) armed.
func (d *Dispatcher) CancelTimer(h Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.timers {
		if e.handle == h {
			e.cancelled = true
			return
		}
	}
}

// PumpMessages performs one iteration: fires all timers whose due
// time has passed (in due-time order, ties broken by insertion
// order), then resumes all queued handles in FIFO order. Returns true
// if any work was performed.
func (d *Dispatcher) PumpMessages() bool {
	did := false

	for {
		fn, ok := d.popDueTimer(time.Now())
		if !ok {
			break
		}
		did = true
		d.runGuarded(fn)
	}

	for {
		fn, ok := d.popQueued()
		if !ok {
			break
		}
		did = true
		d.runGuarded(fn)
	}

	return did
}

func (d *Dispatcher) popDueTimer(now time.Time) (func(), bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for d.timers.Len() > 0 {
		top := d.timers[0]
		if top.cancelled {
			heap.Pop(&d.timers)
			continue
		}
		if top.due.After(now) {
			return nil, false
		}
		heap.Pop(&d.timers)
		if top.period > 0 {
			d.timerSeq++
			heap.Push(&d.timers, &timerEntry{
				handle: top.handle,
				due:    now.Add(top.period),
				period: top.period,
				fn:     top.fn,
				seq:    d.timerSeq,
			})
		}
		return top.fn, true
	}
	return nil, false
}

func (d *Dispatcher) popQueued() (func(), bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		return nil, false
	}
	fn := d.queue[0].fn
	d.queue = d.queue[1:]
	return fn, true
}

// runGuarded invokes fn, catching a panic and logging it at Error
// rather than letting it crash the pump goroutine — a faulting task
// or timer callback must not bring down the dispatcher.
func (d *Dispatcher) runGuarded(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch: recovered panic in runnable", "panic", r)
		}
	}()
	fn()
}

// Quiescent reports whether the dispatcher currently has no queued
// runnables and no armed timers. It does not know about the
// transport; callers combine it with their own idle check.
func (d *Dispatcher) Quiescent() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue) == 0 && d.timers.Len() == 0
}
