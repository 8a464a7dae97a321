// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package shortq

// RaceEnabled is true when the race detector is active.
// Tests use it to skip producer/consumer goroutine pairs: the detector
// cannot see the acquire/release edge between a slot and its cursor.
const RaceEnabled = true
