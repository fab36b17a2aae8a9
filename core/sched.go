package core

// Timer is one scheduled callback on the tick clock. The zero value is
// ready to fill in and Schedule.
type Timer struct {
	WakeTime uint32             // tick at which Handler runs
	Handler  func(*Timer) uint8 // returns Done or Reschedule
	Next     *Timer
}

// Timer handler results.
const (
	Done       = 0
	Reschedule = 1
)

var timerList *Timer

// ticksBefore orders two tick values across counter wrap: a is before b
// when the signed difference is negative, i.e. the forward distance from
// a to b is under half the counter range.
func ticksBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// Schedule inserts t into the timer list, ordered by WakeTime. Safe to
// call with interrupts enabled; the list mutation runs masked.
func Schedule(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	insertTimer(t)
}

func insertTimer(t *Timer) {
	if timerList == nil || ticksBefore(t.WakeTime, timerList.WakeTime) {
		t.Next = timerList
		timerList = t
		return
	}

	cur := timerList
	for cur.Next != nil && ticksBefore(cur.Next.WakeTime, t.WakeTime) {
		cur = cur.Next
	}
	t.Next = cur.Next
	cur.Next = t
}

// Dispatch runs every timer due at or before the current tick, in wake
// order. Call it from the main loop, never from interrupt context.
// Handlers run with interrupts enabled so a slow handler cannot starve
// the tick interrupt; only the list manipulation is masked. A handler
// returning Reschedule is reinserted at its updated WakeTime.
func Dispatch() {
	now := Ticks()

	for {
		state := disableInterrupts()
		t := timerList
		if t == nil || ticksBefore(now, t.WakeTime) {
			restoreInterrupts(state)
			return
		}
		timerList = t.Next
		t.Next = nil
		restoreInterrupts(state)

		if t.Handler(t) == Reschedule {
			Schedule(t)
		}
	}
}
