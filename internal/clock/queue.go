// Package clock provides the timer service games use for periodic and delayed
// callbacks. A Queue is owned by whoever drives the frame loop: it never reads
// the wall clock, it only moves forward when Advance is called.
package clock

import (
	"container/heap"
	"time"
)

// Token identifies a scheduled timer so it can be cancelled.
// The zero Token never refers to a live timer.
type Token uint64

type timer struct {
	token  Token
	due    time.Duration // absolute queue time
	period time.Duration // 0 for one-shot timers
	seq    uint64        // insertion order, breaks ties between equal due times
	fn     func()
	index  int // heap index
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	t := old[len(old)-1]
	old[len(old)-1] = nil
	t.index = -1
	*h = old[:len(old)-1]
	return t
}

// Queue is a single ordered event queue of interval and one-shot timers.
// It is not safe for concurrent use; all calls happen on the frame loop.
type Queue struct {
	now     time.Duration
	timers  timerHeap
	byToken map[Token]*timer
	next    Token
	seq     uint64
}

// NewQueue creates an empty queue at time zero.
func NewQueue() *Queue {
	return &Queue{
		byToken: make(map[Token]*timer),
	}
}

// Now returns the queue's current time, i.e. the sum of all Advance calls.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Every schedules fn to run every period, first firing one period from now.
// A non-positive period is treated as one nanosecond.
func (q *Queue) Every(period time.Duration, fn func()) Token {
	if period <= 0 {
		period = time.Nanosecond
	}
	return q.add(period, period, fn)
}

// After schedules fn to run once, delay from now.
func (q *Queue) After(delay time.Duration, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	return q.add(delay, 0, fn)
}

func (q *Queue) add(delay, period time.Duration, fn func()) Token {
	q.next++
	q.seq++
	t := &timer{
		token:  q.next,
		due:    q.now + delay,
		period: period,
		seq:    q.seq,
		fn:     fn,
	}
	heap.Push(&q.timers, t)
	q.byToken[t.token] = t
	return t.token
}

// Cancel removes the timer for tok. Cancelling an unknown, fired or
// already-cancelled token is a no-op, and it is safe to call from inside
// a timer callback, including for the timer currently firing.
func (q *Queue) Cancel(tok Token) {
	t, ok := q.byToken[tok]
	if !ok {
		return
	}
	delete(q.byToken, tok)
	if t.index >= 0 {
		heap.Remove(&q.timers, t.index)
	}
}

// Active reports whether tok still refers to a pending timer.
func (q *Queue) Active(tok Token) bool {
	_, ok := q.byToken[tok]
	return ok
}

// Len returns the number of pending timers.
func (q *Queue) Len() int {
	return len(q.byToken)
}

// Advance moves the queue forward by d and fires every timer that becomes due,
// in due-time order. An interval timer that falls several periods behind fires
// once per elapsed period.
func (q *Queue) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := q.now + d

	for len(q.timers) > 0 && q.timers[0].due <= target {
		t := heap.Pop(&q.timers).(*timer)
		q.now = t.due

		if t.period > 0 {
			t.due += t.period
			q.seq++
			t.seq = q.seq
			heap.Push(&q.timers, t)
		} else {
			delete(q.byToken, t.token)
		}

		t.fn()
	}

	q.now = target
}

// Reset cancels every timer and rewinds the queue to time zero.
func (q *Queue) Reset() {
	q.timers = q.timers[:0]
	q.byToken = make(map[Token]*timer)
	q.now = 0
}
