//go:build stm32f103

package main

import (
	"runtime/volatile"
	"unsafe"

	"gopill/core"
)

// SysTick register block in the Cortex-M3 system control space.
type sysTickRegs struct {
	CTRL  volatile.Register32
	LOAD  volatile.Register32
	VAL   volatile.Register32
	CALIB volatile.Register32
}

var syst = (*sysTickRegs)(unsafe.Pointer(uintptr(0xE000E010)))

const (
	systEnable    = 1 << 0
	systTickInt   = 1 << 1
	systClkSource = 1 << 2
)

// initSysTick programs a 1ms tick from the core clock and enables the
// SysTick interrupt. Call exactly once, before anything reads the tick
// clock.
func initSysTick() {
	syst.LOAD.Set(sysclkHz/1000 - 1)
	syst.VAL.Set(0) // any write clears the current count
	syst.CTRL.Set(systEnable | systTickInt | systClkSource)
}

// The SysTick exception vector. Advances the tick counter and nothing
// else; application work stays in the main loop.
//
//export SysTick_Handler
func sysTickHandler() {
	core.TickHandler()
}
