package core

import (
	"runtime"
	"testing"
	"time"
)

func TestDelayZeroReturnsImmediately(t *testing.T) {
	SetTicks(12345)
	Delay(0)
	if got := Ticks(); got != 12345 {
		t.Fatalf("Ticks() = %d, want 12345", got)
	}
}

func TestDelayReturnsOnceTicksAdvance(t *testing.T) {
	SetTicks(0)

	done := make(chan struct{})
	go func() {
		Delay(3)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-done:
			return
		case <-deadline:
			t.Fatal("Delay(3) did not return")
		default:
			TickHandler()
			runtime.Gosched()
		}
	}
}
