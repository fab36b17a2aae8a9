package core

// Utoa converts an unsigned integer to decimal without the fmt package,
// a lightweight alternative for firmware builds.
func Utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits.
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build the string from right to left.
	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}
