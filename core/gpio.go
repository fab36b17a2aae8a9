// GPIO pin configuration and IO over a Port register block.
package core

import "errors"

// ErrInvalidParam is returned when a pin index or port handle fails
// validation.
var ErrInvalidParam = errors.New("invalid parameter")

// PinMode selects the function of a GPIO pin.
type PinMode uint8

const (
	PinInput     PinMode = iota // floating input
	PinOutput                   // push-pull output, 2MHz
	PinAlternate                // alternate function push-pull, 50MHz
	PinAnalog                   // analog input
)

// PinState is the logic level of a pin.
type PinState uint8

const (
	PinLow PinState = iota
	PinHigh
)

// CNF and MODE field codes for the configuration registers.
const (
	modeInput       = 0x0
	modeOutput10MHz = 0x1
	modeOutput2MHz  = 0x2
	modeOutput50MHz = 0x3

	cnfInputAnalog   = 0x0
	cnfInputFloating = 0x1
	cnfInputPull     = 0x2

	cnfOutputPushPull  = 0x0
	cnfOutputOpenDrain = 0x1
	cnfAFPushPull      = 0x2
	cnfAFOpenDrain     = 0x3
)

// pinModeBits maps each PinMode to its packed 4-bit CNF<<2|MODE code. An
// explicit table rather than arithmetic, so every legal encoding is
// auditable.
var pinModeBits = [...]uint32{
	PinInput:     cnfInputFloating<<2 | modeInput,
	PinOutput:    cnfOutputPushPull<<2 | modeOutput2MHz,
	PinAlternate: cnfAFPushPull<<2 | modeOutput50MHz,
	PinAnalog:    cnfInputAnalog<<2 | modeInput,
}

// Configure sets the mode of one pin. pin must be 0-15 and port non-nil;
// violations return ErrInvalidParam and leave the hardware untouched. On
// success the new mode takes effect for all subsequent IO calls.
//
// The nibble update is composed locally and stored with a single register
// write. Nothing else reads the configuration registers concurrently, so
// the read-modify-write needs no interlock.
func Configure(port *Port, pin uint8, mode PinMode) error {
	if port == nil || pin > 15 || int(mode) >= len(pinModeBits) {
		return ErrInvalidParam
	}

	cr := &port.CRL
	if pin >= 8 {
		cr = &port.CRH
	}
	shift := uint32(pin%8) * 4
	cr.Set(cr.Get()&^(0xF<<shift) | pinModeBits[mode]<<shift)
	return nil
}

// Write drives one pin high or low through the set/reset registers. The
// hardware applies a BSRR/BRR write atomically, so there is no
// read-modify-write race against interrupt code touching other pins of
// the same port.
//
// pin must be 0-15; it is not checked, keeping the call interrupt-safe
// and branch-minimal.
func Write(port *Port, pin uint8, state PinState) {
	if state == PinHigh {
		port.BSRR.Set(1 << pin)
	} else {
		port.BRR.Set(1 << pin)
	}
}

// Read returns the current input level of one pin. pin must be 0-15 (not
// checked).
func Read(port *Port, pin uint8) PinState {
	if port.IDR.HasBits(1 << pin) {
		return PinHigh
	}
	return PinLow
}

// Toggle inverts the output latch of one pin with an ODR
// read-modify-write. Unlike Write this is not atomic: an interrupt that
// writes other pins of the same port between the read and the write has
// its update lost. Code sharing a port with interrupt handlers should
// pair Read with Write instead.
func Toggle(port *Port, pin uint8) {
	port.ODR.Set(port.ODR.Get() ^ 1<<pin)
}
