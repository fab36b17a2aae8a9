//go:build !tinygo

package core

// Reg mirrors the method set of volatile.Register32 for host builds, so
// core and its tests compile without TinyGo. A zero Port value then works
// as a fake register block.
type Reg struct {
	reg uint32
}

// Get returns the register value.
func (r *Reg) Get() uint32 { return r.reg }

// Set writes the register value.
func (r *Reg) Set(v uint32) { r.reg = v }

// SetBits sets the bits in mask.
func (r *Reg) SetBits(mask uint32) { r.reg |= mask }

// ClearBits clears the bits in mask.
func (r *Reg) ClearBits(mask uint32) { r.reg &^= mask }

// HasBits reports whether any bit in mask is set.
func (r *Reg) HasBits(mask uint32) bool { return r.reg&mask != 0 }
