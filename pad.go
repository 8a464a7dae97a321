// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shortq

// cacheLineSize is the assumed cache line size on supported targets.
const cacheLineSize = 64

// pad is cache line padding to prevent false sharing.
type pad [cacheLineSize]byte

// padShort fills the rest of a cache line after an 8-byte cursor.
type padShort [cacheLineSize - 8]byte
