//go:build !tinygo

package core

// State stands in for saved interrupt state on host builds.
type State uintptr

// disableInterrupts is a no-op on host builds, where tests run
// single-threaded and there is no interrupt preemption to mask.
func disableInterrupts() State {
	return 0
}

func restoreInterrupts(State) {
}
