//go:build tinygo

package core

import "runtime/volatile"

// Reg is one 32-bit hardware register. Under TinyGo every access compiles
// to a volatile load or store, so it cannot be reordered or elided and
// always reflects live hardware state.
type Reg = volatile.Register32
