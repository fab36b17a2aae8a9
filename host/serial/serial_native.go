package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// nativePort is the tarm/serial-backed Port used on a real tty.
type nativePort struct {
	port   *serial.Port
	device string
}

// Open connects to the board's console tty described by cfg.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil serial config")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}

	return &nativePort{port: port, device: cfg.Device}, nil
}

func (p *nativePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *nativePort) Write(b []byte) (int, error) { return p.port.Write(b) }

func (p *nativePort) Close() error {
	if p.port == nil {
		return nil
	}
	return p.port.Close()
}

// Flush is a no-op: tarm/serial exposes no buffer control and its Write
// hands data straight to the tty.
func (p *nativePort) Flush() error {
	return nil
}
