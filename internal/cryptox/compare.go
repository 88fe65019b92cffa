package cryptox

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b are equal without leaking the
// position of the first mismatch through timing. Strings of different
// lengths compare unequal immediately; the length itself is not protected,
// only the contents.
func ConstantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
