package core

import "testing"

// settle emulates the hardware's set/reset behavior on a fake register
// block: BSRR/BRR writes land on the output latch, and the latch is
// looped back to IDR the way an output pin reads back.
func settle(p *Port) {
	set := p.BSRR.Get()
	odr := p.ODR.Get()
	odr |= set & 0xFFFF
	odr &^= set >> 16
	odr &^= p.BRR.Get() & 0xFFFF
	p.ODR.Set(odr)
	p.IDR.Set(odr)
	p.BSRR.Set(0)
	p.BRR.Set(0)
}

func TestConfigurePacksModeNibble(t *testing.T) {
	want := map[PinMode]uint32{
		PinInput:     0x4,
		PinOutput:    0x2,
		PinAlternate: 0xB,
		PinAnalog:    0x0,
	}

	for mode, bits := range want {
		for pin := uint8(0); pin <= 15; pin++ {
			var p Port
			p.CRL.Set(0xAAAAAAAA)
			p.CRH.Set(0x55555555)

			if err := Configure(&p, pin, mode); err != nil {
				t.Fatalf("Configure(pin=%d, mode=%d) error: %v", pin, mode, err)
			}

			shift := uint32(pin%8) * 4
			if pin < 8 {
				wantCRL := uint32(0xAAAAAAAA)&^(0xF<<shift) | bits<<shift
				if got := p.CRL.Get(); got != wantCRL {
					t.Errorf("pin %d mode %d: CRL = %08X, want %08X", pin, mode, got, wantCRL)
				}
				if got := p.CRH.Get(); got != 0x55555555 {
					t.Errorf("pin %d mode %d: CRH changed to %08X", pin, mode, got)
				}
			} else {
				wantCRH := uint32(0x55555555)&^(0xF<<shift) | bits<<shift
				if got := p.CRH.Get(); got != wantCRH {
					t.Errorf("pin %d mode %d: CRH = %08X, want %08X", pin, mode, got, wantCRH)
				}
				if got := p.CRL.Get(); got != 0xAAAAAAAA {
					t.Errorf("pin %d mode %d: CRL changed to %08X", pin, mode, got)
				}
			}
		}
	}
}

func TestConfigureInvalidParams(t *testing.T) {
	var p Port

	for _, pin := range []uint8{16, 17, 255} {
		if err := Configure(&p, pin, PinOutput); err != ErrInvalidParam {
			t.Errorf("Configure(pin=%d): got %v, want ErrInvalidParam", pin, err)
		}
	}
	if err := Configure(nil, 0, PinOutput); err != ErrInvalidParam {
		t.Errorf("Configure(nil port): got %v, want ErrInvalidParam", err)
	}
	if err := Configure(&p, 0, PinMode(9)); err != ErrInvalidParam {
		t.Errorf("Configure(bad mode): got %v, want ErrInvalidParam", err)
	}

	// No register was touched by any of the rejected calls.
	if p.CRL.Get() != 0 || p.CRH.Get() != 0 {
		t.Errorf("rejected Configure mutated registers: CRL=%08X CRH=%08X",
			p.CRL.Get(), p.CRH.Get())
	}
}

func TestWriteThenRead(t *testing.T) {
	for pin := uint8(0); pin <= 15; pin++ {
		var p Port

		Write(&p, pin, PinHigh)
		if got := p.BSRR.Get(); got != 1<<pin {
			t.Fatalf("pin %d: Write(High) BSRR = %08X, want %08X", pin, got, uint32(1)<<pin)
		}
		settle(&p)
		if got := Read(&p, pin); got != PinHigh {
			t.Errorf("pin %d: Read after Write(High) = %v, want PinHigh", pin, got)
		}

		Write(&p, pin, PinLow)
		if got := p.BRR.Get(); got != 1<<pin {
			t.Fatalf("pin %d: Write(Low) BRR = %08X, want %08X", pin, got, uint32(1)<<pin)
		}
		settle(&p)
		if got := Read(&p, pin); got != PinLow {
			t.Errorf("pin %d: Read after Write(Low) = %v, want PinLow", pin, got)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	const pattern = 0x8421

	for pin := uint8(0); pin <= 15; pin++ {
		var p Port
		p.ODR.Set(pattern)

		Toggle(&p, pin)
		want := uint32(pattern) ^ 1<<pin
		if got := p.ODR.Get(); got != want {
			t.Errorf("pin %d: ODR after Toggle = %08X, want %08X", pin, got, want)
		}

		Toggle(&p, pin)
		if got := p.ODR.Get(); got != pattern {
			t.Errorf("pin %d: ODR after double Toggle = %08X, want %08X", pin, got, uint32(pattern))
		}
	}
}
