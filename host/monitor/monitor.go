// Package monitor interprets the firmware's console telemetry.
package monitor

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is one parsed "tick=<n> led=<0|1>" line. The firmware emits one
// on every LED transition.
type Status struct {
	Tick uint32 // firmware milliseconds since boot (wraps at 2^32)
	LED  bool
}

// ParseStatus parses one console line. Lines that are not status lines
// (boot banner, uptime reports) return an error and should be skipped.
func ParseStatus(line string) (Status, error) {
	var st Status
	var haveTick, haveLED bool

	for _, field := range strings.Fields(line) {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return Status{}, fmt.Errorf("malformed field %q", field)
		}
		switch key {
		case "tick":
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return Status{}, fmt.Errorf("bad tick %q: %w", val, err)
			}
			st.Tick = uint32(n)
			haveTick = true
		case "led":
			switch val {
			case "0":
				st.LED = false
			case "1":
				st.LED = true
			default:
				return Status{}, fmt.Errorf("bad led value %q", val)
			}
			haveLED = true
		default:
			return Status{}, fmt.Errorf("unknown field %q", field)
		}
	}

	if !haveTick || !haveLED {
		return Status{}, fmt.Errorf("incomplete status line %q", line)
	}
	return st, nil
}

// Tracker derives blink timing from a stream of status lines.
type Tracker struct {
	last     Status
	haveLast bool
	periods  []uint32
}

// Observe feeds one status into the tracker. Tick deltas are computed
// with unsigned subtraction, matching the firmware's wraparound-safe
// clock.
func (tr *Tracker) Observe(st Status) {
	if tr.haveLast && st.LED != tr.last.LED {
		tr.periods = append(tr.periods, st.Tick-tr.last.Tick)
	}
	tr.last = st
	tr.haveLast = true
}

// Last returns the most recent status, if any was observed.
func (tr *Tracker) Last() (Status, bool) {
	return tr.last, tr.haveLast
}

// Period returns the mean observed toggle interval in milliseconds, or 0
// until at least one transition has been seen.
func (tr *Tracker) Period() uint32 {
	if len(tr.periods) == 0 {
		return 0
	}
	var sum uint64
	for _, p := range tr.periods {
		sum += uint64(p)
	}
	return uint32(sum / uint64(len(tr.periods)))
}
