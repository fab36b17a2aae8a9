//go:build stm32f103

package main

import (
	"runtime/volatile"
	"unsafe"

	"gopill/core"
)

// USART1, TX only. This is a debug sink, not a UART driver: framing
// options stay at their reset defaults (8N1) and there is no receive
// path.
type usartRegs struct {
	SR   volatile.Register32
	DR   volatile.Register32
	BRR  volatile.Register32
	CR1  volatile.Register32
	CR2  volatile.Register32
	CR3  volatile.Register32
	GTPR volatile.Register32
}

var usart1 = (*usartRegs)(unsafe.Pointer(uintptr(0x40013800)))

const (
	usartSRTXE = 1 << 7

	usartCR1TE = 1 << 3
	usartCR1UE = 1 << 13
)

// initConsole brings up USART1 TX on PA9 and installs the debug writer.
func initConsole() {
	// PA9 carries USART1 TX and needs the alternate-function mode.
	if err := core.Configure(GPIOA, uartTxPin, core.PinAlternate); err != nil {
		fault()
	}

	usart1.BRR.Set((apb2Hz + consoleBaud/2) / consoleBaud)
	usart1.CR1.Set(usartCR1UE | usartCR1TE)

	core.SetDebugWriter(consoleWriteLine)
}

func consoleWriteByte(c byte) {
	for !usart1.SR.HasBits(usartSRTXE) {
	}
	usart1.DR.Set(uint32(c))
}

func consoleWriteLine(s string) {
	for i := 0; i < len(s); i++ {
		consoleWriteByte(s[i])
	}
	consoleWriteByte('\r')
	consoleWriteByte('\n')
}
