// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shortq provides a fixed-size single-producer single-consumer
// byte queue.
//
// A [Queue] moves a stream of bytes from exactly one producing context to
// exactly one consuming context with no locks, no blocking, and no
// allocation after construction. It suits handoff between a goroutine
// pinned to a device and the rest of a program, UART-style byte streams,
// and other hot paths where a channel is too heavy.
//
// # Quick Start
//
//	q := shortq.New(64) // 64 slots, holds up to 63 bytes
//	p, c := q.Split()
//
//	p.Push('a')       // producer side
//	b, ok := c.Pop()  // consumer side
//
// # Static Queues
//
// The zero value is a ready-to-use queue of [MaxSize] slots, and [New]
// returns a queue by value, so a queue can be declared as package state
// with no runtime setup and no lock:
//
//	var rx shortq.Queue           // 256 slots, capacity 255
//	var tx = shortq.New(32)       // 32 slots, capacity 31
//
// # Capacity and Length
//
// A queue of n slots holds n-1 bytes. One slot is always left unused so
// that equal cursors mean empty and never full:
//
//	small := shortq.New(8)
//	small.Cap()            // 7
//	var full shortq.Queue
//	full.Cap()             // 255
//
// A single-slot queue is valid and always full; every Push fails.
//
// n must be in [1, 256]; [New] panics with [ErrInvalidCapacity] otherwise.
// Cursors and lengths always fit in a single byte.
//
// [Queue.Len], [Queue.IsEmpty] and [Queue.IsFull] read both cursors relaxed.
// They are snapshots for diagnostics, not synchronization.
//
// # Producer and Consumer Views
//
// [Queue.Split] returns a [Producer] and a [Consumer]. Both alias the same
// queue; each exposes only the operations its side may call:
//
//	Producer: Push, IsEmpty, IsFull, WriteByte, Write
//	Consumer: Pop, Drain, IsEmpty, IsFull, ReadByte, Read
//
// Give the Producer to the writing goroutine and the Consumer to the
// reading goroutine. Neither can call the other side's operations.
//
// # Error Handling
//
// A full queue on Push and an empty queue on Pop are ordinary outcomes,
// reported as false. The io adapters report the same conditions as
// [ErrWouldBlock], sourced from [code.hybscloud.com/iox]:
//
//	backoff := iox.Backoff{}
//	for {
//	    n, err := p.Write(frame)
//	    frame = frame[n:]
//	    if err == nil {
//	        break
//	    }
//	    if !shortq.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// [Consumer.Drain] discards everything buffered in one step, for overflow
// recovery when catching up is not worthwhile.
//
// # Thread Safety
//
// Exactly one goroutine may push and exactly one may pop. They may be the
// same goroutine. A second producer or consumer races on the cursor it
// shares and causes undefined behavior including data corruption.
//
// # Memory Ordering
//
// Push writes the slot, then stores tail with release ordering; Pop loads
// tail with acquire ordering before reading the slot. Pop stores head with
// release ordering after reading the slot; Push loads head with acquire
// ordering before reusing it. Each side reads its own cursor relaxed,
// since nothing else writes it.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established
// through atomix acquire/release operations on a separate variable, so it
// may report the slot accesses as racy. Concurrent tests skip themselves
// when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic cursors with
// explicit memory ordering and [code.hybscloud.com/iox] for semantic
// errors. Tests and benchmarks use [code.hybscloud.com/spin] for CPU pause
// loops.
package shortq
