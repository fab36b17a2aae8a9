package core

// Delay busy-waits for ms milliseconds. It blocks the calling context
// entirely and is not cancellable. Never call it from the tick interrupt
// handler: the counter cannot advance while its own handler is blocked.
func Delay(ms uint32) {
	start := Ticks()
	for !Elapsed(start, ms) {
	}
}
