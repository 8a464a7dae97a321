// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shortq

// WriteByte appends c to the queue.
// Returns ErrWouldBlock if the queue is full.
func (p Producer) WriteByte(c byte) error {
	if !p.q.Push(c) {
		return ErrWouldBlock
	}
	return nil
}

// Write appends as many bytes of b as fit and returns how many were
// written. The bytes become visible to the consumer together, with a
// single release store of tail.
//
// Write never blocks. If the queue fills before b is exhausted, Write
// returns n < len(b) and ErrWouldBlock; the caller retries with b[n:].
func (p Producer) Write(b []byte) (n int, err error) {
	q := p.q
	tail := uint8(q.tail.LoadRelaxed())
	head := uint8(q.head.LoadAcquire())

	for n < len(b) {
		next := q.next(tail)
		if next == head {
			break
		}
		q.buf[tail] = b[n]
		tail = next
		n++
	}

	if n > 0 {
		q.tail.StoreRelease(uint64(tail))
	}
	if n < len(b) {
		return n, ErrWouldBlock
	}
	return n, nil
}

// ReadByte removes and returns the oldest byte.
// Returns (0, ErrWouldBlock) if the queue is empty.
func (c Consumer) ReadByte() (byte, error) {
	b, ok := c.q.Pop()
	if !ok {
		return 0, ErrWouldBlock
	}
	return b, nil
}

// Read moves up to len(b) buffered bytes into b and returns how many
// were read. The slots are released to the producer together, with a
// single release store of head.
//
// Read never blocks. It returns (0, ErrWouldBlock) when the queue is
// empty and b is not.
func (c Consumer) Read(b []byte) (n int, err error) {
	if len(b) == 0 {
		return 0, nil
	}

	q := c.q
	head := uint8(q.head.LoadRelaxed())
	tail := uint8(q.tail.LoadAcquire())

	for n < len(b) && head != tail {
		b[n] = q.buf[head]
		head = q.next(head)
		n++
	}

	if n == 0 {
		return 0, ErrWouldBlock
	}
	q.head.StoreRelease(uint64(head))
	return n, nil
}
