// Package serial abstracts the host side of the firmware console link.
package serial

import (
	"io"
)

// Port is a host serial connection to the board.
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock ports for testing
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3").
	Device string

	// Baud rate; must match the firmware console.
	Baud int

	// Read timeout in milliseconds (0 = blocking). The monitor uses
	// blocking reads and just waits for the next line.
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // USART1 console rate baked into the firmware
		ReadTimeout: 0,
	}
}
