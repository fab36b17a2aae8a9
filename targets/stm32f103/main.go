//go:build stm32f103

package main

import (
	"runtime/interrupt"
	"runtime/volatile"

	"gopill/core"
)

func main() {
	initClocks()
	initSysTick()
	initConsole()

	if err := core.Configure(GPIOC, ledPin, core.PinOutput); err != nil {
		fault()
	}
	ledSet(false)

	core.Debugln("gopill started")
	startHeartbeat()

	ledOn := false
	lastToggle := core.Ticks()

	for {
		if core.Elapsed(lastToggle, blinkPeriodMS) {
			ledOn = !ledOn
			ledSet(ledOn)
			lastToggle = core.Ticks()
			core.Debugln(core.FormatStatus(lastToggle, ledOn))
		}

		core.Dispatch()
	}
}

// ledSet drives the LED, honoring the active-low wiring.
func ledSet(on bool) {
	level := core.PinHigh
	if on == ledActiveLow {
		level = core.PinLow
	}
	core.Write(GPIOC, ledPin, level)
}

var heartbeat core.Timer

func startHeartbeat() {
	heartbeat.WakeTime = core.Ticks() + heartbeatPeriodMS
	heartbeat.Handler = heartbeatEvent
	core.Schedule(&heartbeat)
}

// heartbeatEvent reports uptime every heartbeatPeriodMS, mostly as a sign
// of life when the LED is not visible.
func heartbeatEvent(t *core.Timer) uint8 {
	core.Debugln("uptime ms: " + core.Utoa(core.Ticks()))
	t.WakeTime += heartbeatPeriodMS
	return core.Reschedule
}

// fault parks the firmware with interrupts off and a fast LED blink, so a
// wedged board is visible on the bench. Toggle is safe here: nothing else
// can touch the port with interrupts masked.
func fault() {
	interrupt.Disable()

	var spin volatile.Register32
	for {
		core.Toggle(GPIOC, ledPin)
		for spin.Set(0); spin.Get() < 100000; spin.Set(spin.Get() + 1) {
		}
	}
}
