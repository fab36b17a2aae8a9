//go:build !tinygo

package core

import "sync/atomic"

var tickCount uint32

// getTicks returns the tick counter (host implementation).
func getTicks() uint32 {
	return atomic.LoadUint32(&tickCount)
}

// setTicks stores the tick counter (host implementation).
func setTicks(t uint32) {
	atomic.StoreUint32(&tickCount, t)
}
