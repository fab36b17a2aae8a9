package core

// Port is one GPIO bank's register block in the STM32F1 layout. The field
// order is the hardware byte layout: CRL@0x00 through LCKR@0x18, 32-bit
// words accessed whole.
//
// Hardware instances live at fixed peripheral base addresses and are
// created only by target code (GPIOA/GPIOB/GPIOC); core exposes no way to
// place a Port at an arbitrary address. A Port is never copied or freed.
// Passing anything other than a valid handle to the pin operations is a
// contract violation, not a reported error; this layer cannot validate
// hardware addresses at runtime.
type Port struct {
	CRL  Reg // configuration low, pins 0-7
	CRH  Reg // configuration high, pins 8-15
	IDR  Reg // input data
	ODR  Reg // output data
	BSRR Reg // bit set/reset, write-only
	BRR  Reg // bit reset, write-only
	LCKR Reg // configuration lock
}
