// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shortq

import "io"

var (
	_ io.Writer     = Producer{}
	_ io.ByteWriter = Producer{}
	_ io.Reader     = Consumer{}
	_ io.ByteReader = Consumer{}
)

// Producer is the write side of a [Queue].
//
// Producer exposes only the operations the producing context may call.
// Code holding just a Producer cannot Pop or Drain, which keeps the
// queue's single-writer discipline at the type level.
//
// Producer is a view: it holds no state of its own and must not outlive
// the Queue it was split from. Exactly one goroutine (or one interrupt
// context) should use it.
//
// Example:
//
//	q := shortq.New(64)
//	p, c := q.Split()
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for b := range input {
//	        for !p.Push(b) {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    for {
//	        if b, ok := c.Pop(); ok {
//	            handle(b)
//	        }
//	    }
//	}()
type Producer struct {
	q *Queue
}

// Push appends b to the queue.
// Returns false if the queue is full.
func (p Producer) Push(b byte) bool {
	return p.q.Push(b)
}

// IsEmpty reports whether the queue holds no bytes (advisory).
func (p Producer) IsEmpty() bool {
	return p.q.IsEmpty()
}

// IsFull reports whether the queue is full (advisory).
func (p Producer) IsFull() bool {
	return p.q.IsFull()
}

// Consumer is the read side of a [Queue].
//
// Consumer exposes only the operations the consuming context may call.
// Code holding just a Consumer cannot Push, which keeps the queue's
// single-reader discipline at the type level.
//
// Like Producer, Consumer is a view that must not outlive its Queue.
type Consumer struct {
	q *Queue
}

// Pop removes and returns the oldest byte.
// Returns (0, false) if the queue is empty.
func (c Consumer) Pop() (byte, bool) {
	return c.q.Pop()
}

// Drain discards every buffered byte in one step.
//
// Use Drain to recover from overflow when catching up is not worth it.
func (c Consumer) Drain() {
	c.q.Drain()
}

// IsEmpty reports whether the queue holds no bytes (advisory).
func (c Consumer) IsEmpty() bool {
	return c.q.IsEmpty()
}

// IsFull reports whether the queue is full (advisory).
func (c Consumer) IsFull() bool {
	return c.q.IsFull()
}
