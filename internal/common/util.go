package common

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. Nil-safe.
//
// Only b itself is cleared. Request bodies and form values are built from
// strings, and those copies stay in memory until the garbage collector
// reclaims them.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
