package transport

import "strconv"

// Encode renders a command in the actuator wire format: ASCII decimal, no
// leading zeros, terminated by a single '\n'.
func Encode(v int) []byte {
	b := make([]byte, 0, 8)
	b = strconv.AppendInt(b, int64(v), 10)
	return append(b, '\n')
}
