//go:build tinygo

package core

import "runtime/volatile"

// A volatile register so the spin in Delay re-reads the counter on every
// pass and the interrupt's store is a single word write.
var tickCount volatile.Register32

func getTicks() uint32 {
	return tickCount.Get()
}

func setTicks(t uint32) {
	tickCount.Set(t)
}
