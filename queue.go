// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shortq

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// MaxSize is the largest slot count a Queue can have.
// Cursors and lengths always fit in a single byte.
const MaxSize = 256

// Queue is a fixed-size single-producer single-consumer byte queue.
//
// Based on Lamport's ring buffer with one slot left unused, so that
// head == tail always means empty and never collides with full.
// A queue of n slots holds at most n-1 bytes.
//
// The zero value is an empty queue of MaxSize slots, ready to use
// without initialization. Smaller queues come from [New].
//
// Push is owned by the producer; Pop and Drain are owned by the
// consumer. Use [Queue.Split] to hand each side a view restricted to
// its own operations.
//
// A Queue must not be copied after first use.
type Queue struct {
	_    pad
	head atomix.Uint64 // Consumer writes, producer reads
	_    padShort
	tail atomix.Uint64 // Producer writes, consumer reads
	_    padShort
	wrap uint8 // Slot count mod 256; 0 means MaxSize
	buf  [MaxSize]byte
}

// New returns an empty queue with n slots and capacity n-1.
//
// New returns the queue by value so it can initialize a package-level
// variable shared between goroutines:
//
//	var uartRx = shortq.New(64)
//
// Panics with [ErrInvalidCapacity] if n < 1 or n > MaxSize.
func New(n int) Queue {
	if n < 1 || n > MaxSize {
		panic(fmt.Errorf("%w: got %d", ErrInvalidCapacity, n))
	}
	return Queue{wrap: uint8(n)}
}

// Cap returns the number of bytes the queue can hold, n-1.
func (q *Queue) Cap() int {
	return q.size() - 1
}

// Len returns the number of buffered bytes.
//
// Both cursors are read relaxed. The result is a snapshot for
// diagnostics and may be stale by the time the caller acts on it.
func (q *Queue) Len() int {
	head := int(q.head.LoadRelaxed())
	tail := int(q.tail.LoadRelaxed())
	if tail >= head {
		return tail - head
	}
	return tail + q.size() - head
}

// Push appends b to the queue (producer only).
// Returns false, leaving the queue unchanged, if the queue is full.
func (q *Queue) Push(b byte) bool {
	// tail is written only by this side.
	tail := uint8(q.tail.LoadRelaxed())
	next := q.next(tail)

	// Pairs with the release store of head in Pop and Drain: once the
	// slot is seen as vacated, the consumer has finished reading it.
	if uint64(next) == q.head.LoadAcquire() {
		return false
	}

	// A uint8 index into a [MaxSize]byte array is always in range.
	q.buf[tail] = b
	q.tail.StoreRelease(uint64(next))
	return true
}

// Pop removes and returns the oldest byte (consumer only).
// Returns (0, false), leaving the queue unchanged, if the queue is empty.
func (q *Queue) Pop() (byte, bool) {
	// head is written only by this side.
	head := uint8(q.head.LoadRelaxed())

	// Pairs with the release store of tail in Push.
	if uint64(head) == q.tail.LoadAcquire() {
		return 0, false
	}

	b := q.buf[head]
	q.head.StoreRelease(uint64(q.next(head)))
	return b, true
}

// Drain discards every buffered byte in one step (consumer only).
//
// Drain moves head to the current tail; it touches neither tail nor the
// slots. Bytes the producer publishes concurrently with Drain either are
// discarded or remain queued, never half of each.
func (q *Queue) Drain() {
	q.head.StoreRelease(q.tail.LoadAcquire())
}

// IsEmpty reports whether the queue holds no bytes.
// Advisory only: the other side may move its cursor before the caller
// acts on the result.
func (q *Queue) IsEmpty() bool {
	return q.head.LoadRelaxed() == q.tail.LoadRelaxed()
}

// IsFull reports whether the queue holds Cap bytes.
// Advisory only, like IsEmpty.
func (q *Queue) IsFull() bool {
	return uint64(q.next(uint8(q.tail.LoadRelaxed()))) == q.head.LoadRelaxed()
}

// Split returns the producer and consumer views of q.
//
// Both views alias q; neither copies state. Hand the Producer to the
// single writing context and the Consumer to the single reading context.
// The views must not outlive q.
func (q *Queue) Split() (Producer, Consumer) {
	return Producer{q: q}, Consumer{q: q}
}

// size returns the slot count n.
func (q *Queue) size() int {
	if q.wrap == 0 {
		return MaxSize
	}
	return int(q.wrap)
}

// next returns (x+1) mod n.
// For n == MaxSize, wrap is 0 and the uint8 increment overflows to 0.
func (q *Queue) next(x uint8) uint8 {
	x++
	if x == q.wrap {
		return 0
	}
	return x
}
