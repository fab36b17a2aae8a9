// The millisecond tick clock. A single free-running uint32 counter,
// written only by TickHandler from the periodic interrupt and read from
// everywhere else. Every access is one aligned 32-bit load or store, so
// no lock is needed; all comparisons use wraparound-safe unsigned
// subtraction.
package core

// Ticks returns milliseconds since boot, modulo 2^32. Safe to call from
// any context once the target has started the tick interrupt.
func Ticks() uint32 {
	return getTicks()
}

// SetTicks overwrites the counter. For tests and target bring-up only;
// the counter is otherwise never reset after power-on.
func SetTicks(t uint32) {
	setTicks(t)
}

// TickHandler advances the counter by exactly one. It is invoked only by
// the periodic tick interrupt and must stay this small: no application
// work belongs in the handler.
func TickHandler() {
	setTicks(getTicks() + 1)
}

// Elapsed reports whether timeout milliseconds have passed since start.
// The unsigned subtraction yields the forward distance even after the
// counter wraps, as long as the true elapsed time fits in 32 bits.
func Elapsed(start, timeout uint32) bool {
	return Ticks()-start >= timeout
}
