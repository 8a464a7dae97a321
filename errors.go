// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shortq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For WriteByte and Write: the queue is full (backpressure)
// For ReadByte and Read: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The queue is left
// unchanged by the byte that could not move, and the caller decides whether
// to retry, drop, or apply backpressure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := p.WriteByte(c)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if shortq.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidCapacity is the panic value of [New] when the slot count is
// outside [1, MaxSize]. It is a programming error, not a runtime condition.
var ErrInvalidCapacity = errors.New("shortq: slot count must be in [1, 256]")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
