package core

// DebugWriter receives one debug/status line, without the newline.
type DebugWriter func(string)

// debugPrintln is the installed debug sink. No-op by default so host
// tests stay silent; the target installs its UART writer at boot.
var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter installs the sink for debug output.
func SetDebugWriter(w DebugWriter) {
	if w != nil {
		debugPrintln = w
	}
}

// Debugln emits one line through the installed writer.
func Debugln(s string) {
	debugPrintln(s)
}

// FormatStatus renders one telemetry line, e.g. "tick=1500 led=1". Built
// without fmt to keep the firmware image small; the host monitor parses
// this exact shape.
func FormatStatus(tick uint32, ledOn bool) string {
	s := "tick=" + Utoa(tick) + " led="
	if ledOn {
		return s + "1"
	}
	return s + "0"
}
