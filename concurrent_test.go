// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shortq_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/shortq"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Concurrent Tests (1 Producer, 1 Consumer)
// =============================================================================

// TestConcurrentPushPop streams bytes from one producer goroutine to one
// consumer goroutine and verifies FIFO order.
func TestConcurrentPushPop(t *testing.T) {
	if shortq.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	const itemCount = 200000
	q := shortq.New(64)
	p, c := q.Split()

	var wg sync.WaitGroup
	var consumerErr error
	var consumed atomix.Int64

	// Producer
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := range itemCount {
			for !p.Push(byte(i)) {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	// Consumer: verify FIFO order
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 0; i < itemCount; {
			b, ok := c.Pop()
			if !ok {
				backoff.Wait()
				continue
			}
			if b != byte(i) {
				consumerErr = errors.New("FIFO violation")
				return
			}
			i++
			consumed.Add(1)
			backoff.Reset()
		}
	}()

	wg.Wait()

	if consumerErr != nil {
		t.Fatalf("consumer error: %v", consumerErr)
	}
	if got := consumed.Load(); got != itemCount {
		t.Fatalf("consumed %d, want %d", got, itemCount)
	}
	if !q.IsEmpty() {
		t.Fatalf("IsEmpty: got false, Len=%d", q.Len())
	}
}

// TestConcurrentWriteRead streams through the io adapters with a deadline.
func TestConcurrentWriteRead(t *testing.T) {
	if shortq.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	const (
		itemCount = 1 << 20
		timeout   = 10 * time.Second
	)
	var q shortq.Queue
	p, c := q.Split()

	src := make([]byte, itemCount)
	for i := range src {
		src[i] = byte(i*7 + i>>8)
	}

	var wg sync.WaitGroup
	var timedOut atomix.Bool
	var mismatch atomix.Int64
	mismatch.Store(-1)
	deadline := time.Now().Add(timeout)

	// Producer
	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		in := src
		for len(in) > 0 {
			if time.Now().After(deadline) {
				timedOut.Store(true)
				return
			}
			n, err := p.Write(in)
			in = in[n:]
			if err != nil {
				sw.Once()
			}
		}
	}()

	// Consumer
	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		buf := make([]byte, 100)
		off := 0
		for off < itemCount {
			if time.Now().After(deadline) {
				timedOut.Store(true)
				return
			}
			n, err := c.Read(buf)
			if err != nil {
				sw.Once()
				continue
			}
			for i := range n {
				if buf[i] != src[off+i] {
					mismatch.Store(int64(off + i))
					return
				}
			}
			off += n
		}
	}()

	wg.Wait()

	if timedOut.Load() {
		t.Fatal("timeout")
	}
	if at := mismatch.Load(); at >= 0 {
		t.Fatalf("stream mismatch at offset %d", at)
	}
}

// TestConcurrentDrain drains while the producer is still running, then
// checks the queue empties once the producer stops.
func TestConcurrentDrain(t *testing.T) {
	if shortq.RaceEnabled {
		t.Skip("skip: SPSC uses cross-variable memory ordering")
	}

	const itemCount = 100000
	q := shortq.New(32)
	p, c := q.Split()

	var wg sync.WaitGroup
	var producerDone atomix.Bool
	var pushed, popped atomix.Int64

	// Producer: count every accepted byte
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer producerDone.Store(true)
		for i := range itemCount {
			if p.Push(byte(i)) {
				pushed.Add(1)
			}
		}
	}()

	// Consumer: alternate between popping and draining
	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 0; !producerDone.Load(); round++ {
			if round%16 == 0 {
				c.Drain()
				continue
			}
			if _, ok := c.Pop(); ok {
				popped.Add(1)
			}
		}
		c.Drain()
	}()

	wg.Wait()

	if !c.IsEmpty() || q.Len() != 0 {
		t.Fatalf("after final Drain: IsEmpty=%v Len=%d", c.IsEmpty(), q.Len())
	}
	if popped.Load() > pushed.Load() {
		t.Fatalf("popped %d > pushed %d", popped.Load(), pushed.Load())
	}
}
