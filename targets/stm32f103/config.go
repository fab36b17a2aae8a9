//go:build stm32f103

package main

// Board configuration for the STM32F103C8 "blue pill".
const (
	// Core and APB2 clocks, fixed by the boot-time clock setup.
	sysclkHz = 72000000
	apb2Hz   = 72000000

	// Onboard LED on PC13, wired between VDD and the pin.
	ledPin       = 13
	ledActiveLow = true

	blinkPeriodMS     = 500
	heartbeatPeriodMS = 10000

	// USART1 console.
	consoleBaud = 115200
	uartTxPin   = 9
	uartRxPin   = 10
)
