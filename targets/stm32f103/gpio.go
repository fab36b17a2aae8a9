//go:build stm32f103

package main

import (
	"runtime/volatile"
	"unsafe"

	"gopill/core"
)

// GPIO port register blocks at their fixed APB2 base addresses. These are
// the only valid core.Port handles on this target.
var (
	GPIOA = (*core.Port)(unsafe.Pointer(uintptr(0x40010800)))
	GPIOB = (*core.Port)(unsafe.Pointer(uintptr(0x40010C00)))
	GPIOC = (*core.Port)(unsafe.Pointer(uintptr(0x40011000)))
)

// RCC clock gating. Only the one register this firmware touches.
const rccAPB2ENR = 0x40021000 + 0x18

const (
	rccIOPAEN   = 1 << 2
	rccIOPBEN   = 1 << 3
	rccIOPCEN   = 1 << 4
	rccUSART1EN = 1 << 14
)

var apb2enr = (*volatile.Register32)(unsafe.Pointer(uintptr(rccAPB2ENR)))

// initClocks gates on the clocks of every APB2 peripheral this firmware
// touches: the three GPIO ports and the USART1 console. An unclocked F1
// peripheral reads as zero, so USART1 must be gated here or the TXE poll
// in the console would spin forever. The clock tree itself (HSE, PLL,
// sysclk at 72MHz) is assumed already configured by the boot path.
func initClocks() {
	apb2enr.SetBits(rccIOPAEN | rccIOPBEN | rccIOPCEN | rccUSART1EN)

	// A few dummy reads so the peripheral clock is live before the
	// first port access.
	for i := 0; i < 10; i++ {
		apb2enr.Get()
	}
}
